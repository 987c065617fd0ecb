package repositories

import (
	"sort"
	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/utils"
)

type DashboardStats struct {
	TotalOrders     int64   `json:"totalOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	PendingPayments int64   `json:"pendingPayments"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveClients   int64   `json:"activeClients"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type TopClient struct {
	ClientID   uint    `json:"clientId"`
	ClientName string  `json:"clientName"`
	TotalSpent float64 `json:"totalSpent"`
	OrderCount int64   `json:"orderCount"`
}

// DashboardRepository serves the read-only reporting queries. Every query
// tolerates an empty data set and comes back zero-valued instead of failing.
type DashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) *DashboardRepository {
	return &DashboardRepository{store: store}
}

func (r *DashboardRepository) Stats() (*DashboardStats, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var stats DashboardStats

	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", "completed").
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("payment_status = ?", "pending").
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	// Revenue counts completed work only.
	if err := db.Model(&models.Order{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Client{}).
		Where("loyalty_status = ?", "active").
		Count(&stats.ActiveClients).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// RevenueChart sums completed-order revenue per completion date over the
// last N days, ascending by date.
func (r *DashboardRepository) RevenueChart(days int) ([]RevenuePoint, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 30
	}
	since := utils.BeginningOfDay(time.Now().AddDate(0, 0, -days))

	var rows []struct {
		CompletionDate time.Time
		TotalCost      float64
	}
	if err := db.Model(&models.Order{}).
		Select("completion_date, total_cost").
		Where("status = ? AND completion_date IS NOT NULL AND completion_date >= ?", "completed", since).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string]float64)
	for _, row := range rows {
		byDate[row.CompletionDate.Format("2006-01-02")] += row.TotalCost
	}

	points := make([]RevenuePoint, 0, len(byDate))
	for date, revenue := range byDate {
		points = append(points, RevenuePoint{Date: date, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// TopClients ranks clients by summed order total, descending, client id as
// the tie-break.
func (r *DashboardRepository) TopClients(limit int) ([]TopClient, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	var rows []struct {
		ClientID   uint
		FirstName  string
		LastName   string
		TotalSpent float64
		OrderCount int64
	}
	if err := db.Table("orders").
		Select("orders.client_id AS client_id, clients.first_name AS first_name, clients.last_name AS last_name, COALESCE(SUM(orders.total_cost), 0) AS total_spent, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN clients ON clients.id = orders.client_id").
		Group("orders.client_id, clients.first_name, clients.last_name").
		Order("total_spent DESC, client_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	top := make([]TopClient, 0, len(rows))
	for _, row := range rows {
		top = append(top, TopClient{
			ClientID:   row.ClientID,
			ClientName: row.FirstName + " " + row.LastName,
			TotalSpent: row.TotalSpent,
			OrderCount: row.OrderCount,
		})
	}
	return top, nil
}

// RecentOrders returns the newest orders by creation time, any status.
func (r *DashboardRepository) RecentOrders(limit int) ([]models.Order, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	orders := make([]models.Order, 0)
	err = db.Order("created_at DESC, id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
