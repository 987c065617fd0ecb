package repositories

import (
	"testing"
	"time"

	"tuneshop-backend/models"
)

func TestDashboardStatsEmptyDataSet(t *testing.T) {
	store := setupTestStore(t)
	repo := NewDashboardRepository(store)

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 0 || stats.CompletedOrders != 0 ||
		stats.PendingPayments != 0 || stats.TotalRevenue != 0 || stats.ActiveClients != 0 {
		t.Fatalf("empty data set should be all zeros, got %+v", stats)
	}
}

func TestDashboardStatsCountsAndRevenue(t *testing.T) {
	store := setupTestStore(t)
	client := seedClient(t, store, "Ewa", "Maj")
	orders := NewOrderRepository(store)

	seed := []models.Order{
		{ClientID: client.ID, Title: "a", Status: "completed", PaymentStatus: "paid", BaseCost: 1000, Margin: 20, TaxRate: 23},
		{ClientID: client.ID, Title: "b", Status: "completed", PaymentStatus: "pending", BaseCost: 500, Margin: 20, TaxRate: 23},
		{ClientID: client.ID, Title: "c", Status: "new", PaymentStatus: "pending", BaseCost: 9999, Margin: 20, TaxRate: 23},
	}
	for i := range seed {
		if err := orders.Create(&seed[i]); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	stats, err := NewDashboardRepository(store).Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 3 || stats.CompletedOrders != 2 || stats.PendingPayments != 2 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	// Revenue covers completed orders only: 1476.00 + 738.00.
	if stats.TotalRevenue != 2214.00 {
		t.Fatalf("totalRevenue = %v, want 2214.00", stats.TotalRevenue)
	}
	if stats.ActiveClients != 1 {
		t.Fatalf("activeClients = %d, want 1", stats.ActiveClients)
	}
}

func TestDashboardTopClientsRankingAndLimit(t *testing.T) {
	store := setupTestStore(t)
	orders := NewOrderRepository(store)

	// Three clients with spend 2x, 1x, 3x of the same order.
	spend := []int{2, 1, 3}
	clients := make([]models.Client, len(spend))
	for i, n := range spend {
		clients[i] = seedClient(t, store, "Client", string(rune('A'+i)))
		for j := 0; j < n; j++ {
			order := models.Order{
				ClientID: clients[i].ID, Title: "job", Status: "new",
				PaymentStatus: "pending", BaseCost: 100, Margin: 20, TaxRate: 23,
			}
			if err := orders.Create(&order); err != nil {
				t.Fatalf("create: %v", err)
			}
		}
	}

	top, err := NewDashboardRepository(store).TopClients(2)
	if err != nil {
		t.Fatalf("topClients: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].ClientID != clients[2].ID || top[1].ClientID != clients[0].ID {
		t.Fatalf("ranking wrong: %+v", top)
	}
	if top[0].TotalSpent < top[1].TotalSpent {
		t.Fatalf("not descending by totalSpent: %+v", top)
	}
	if top[0].OrderCount != 3 {
		t.Fatalf("orderCount = %d, want 3", top[0].OrderCount)
	}
	if top[0].ClientName != "Client C" {
		t.Fatalf("clientName = %q", top[0].ClientName)
	}
}

func TestDashboardRecentOrdersLimit(t *testing.T) {
	store := setupTestStore(t)
	client := seedClient(t, store, "Igor", "Bak")
	orders := NewOrderRepository(store)

	for i := 0; i < 4; i++ {
		order := models.Order{
			ClientID: client.ID, Title: "job", Status: "new",
			PaymentStatus: "pending", BaseCost: 100, Margin: 20, TaxRate: 23,
		}
		if err := orders.Create(&order); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	recent, err := NewDashboardRepository(store).RecentOrders(3)
	if err != nil {
		t.Fatalf("recentOrders: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d orders, want 3", len(recent))
	}
	// Newest first: ids descend when created in sequence.
	if recent[0].ID < recent[1].ID || recent[1].ID < recent[2].ID {
		t.Fatalf("not newest-first: %v %v %v", recent[0].ID, recent[1].ID, recent[2].ID)
	}
}

func TestDashboardRevenueChartBoundsWindow(t *testing.T) {
	store := setupTestStore(t)
	client := seedClient(t, store, "Ola", "Kot")
	db, _ := store.DB()

	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -90)
	seed := []models.Order{
		{ClientID: client.ID, Title: "a", Status: "completed", PaymentStatus: "paid", BaseCost: 100, Margin: 20, TaxRate: 23, TotalCost: 147.60, CompletionDate: &recent},
		{ClientID: client.ID, Title: "b", Status: "completed", PaymentStatus: "paid", BaseCost: 100, Margin: 20, TaxRate: 23, TotalCost: 147.60, CompletionDate: &recent},
		{ClientID: client.ID, Title: "c", Status: "completed", PaymentStatus: "paid", BaseCost: 100, Margin: 20, TaxRate: 23, TotalCost: 147.60, CompletionDate: &old},
		{ClientID: client.ID, Title: "d", Status: "new", PaymentStatus: "pending", BaseCost: 100, Margin: 20, TaxRate: 23, TotalCost: 147.60, CompletionDate: &recent},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	points, err := NewDashboardRepository(store).RevenueChart(30)
	if err != nil {
		t.Fatalf("revenueChart: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 (old and non-completed excluded): %+v", len(points), points)
	}
	if points[0].Date != recent.Format("2006-01-02") {
		t.Fatalf("date = %q", points[0].Date)
	}
	if points[0].Revenue != 295.20 {
		t.Fatalf("revenue = %v, want 295.20", points[0].Revenue)
	}
}

func TestDashboardRevenueChartEmpty(t *testing.T) {
	store := setupTestStore(t)

	points, err := NewDashboardRepository(store).RevenueChart(30)
	if err != nil {
		t.Fatalf("revenueChart: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected empty chart, got %+v", points)
	}
}
