package repositories

import (
	"errors"
	"math"
	"time"

	"tuneshop-backend/models"

	"gorm.io/gorm"
)

const (
	DefaultMargin  = 20.0
	DefaultTaxRate = 23.0
)

// CalculateTotalCost applies margin then tax on top of the base cost,
// rounded to currency precision. 1000 at 20% margin and 23% tax is 1476.00.
func CalculateTotalCost(baseCost, margin, taxRate float64) float64 {
	total := baseCost * (1 + margin/100) * (1 + taxRate/100)
	return math.Round(total*100) / 100
}

type OrderFilter struct {
	ClientID      uint
	Status        string
	PaymentStatus string
}

type OrderUpdate struct {
	Title          *string
	Description    *string
	Status         *string
	ServiceType    *string
	BaseCost       *float64
	Margin         *float64
	TaxRate        *float64
	PaymentStatus  *string
	StartDate      *time.Time
	CompletionDate *time.Time
	InternalNotes  *string
}

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create inserts the order with its total derived from the cost triple.
func (r *OrderRepository) Create(order *models.Order) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	order.TotalCost = CalculateTotalCost(order.BaseCost, order.Margin, order.TaxRate)
	return db.Create(order).Error
}

func (r *OrderRepository) List(filter OrderFilter) ([]models.Order, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	query := db.Model(&models.Order{})
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}

	orders := make([]models.Order, 0)
	err = query.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Update applies the provided fields. When any of baseCost, margin or
// taxRate changes, the total is recomputed over the complete triple, with
// missing members taken from the stored row. Returns (nil, nil) when the
// order does not exist.
func (r *OrderRepository) Update(id uint, upd OrderUpdate) (*models.Order, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	order, err := r.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}

	if upd.Title != nil {
		order.Title = *upd.Title
	}
	if upd.Description != nil {
		order.Description = *upd.Description
	}
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.ServiceType != nil {
		order.ServiceType = *upd.ServiceType
	}
	if upd.PaymentStatus != nil {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.StartDate != nil {
		order.StartDate = upd.StartDate
	}
	if upd.CompletionDate != nil {
		order.CompletionDate = upd.CompletionDate
	}
	if upd.InternalNotes != nil {
		order.InternalNotes = *upd.InternalNotes
	}

	if upd.BaseCost != nil || upd.Margin != nil || upd.TaxRate != nil {
		if upd.BaseCost != nil {
			order.BaseCost = *upd.BaseCost
		}
		if upd.Margin != nil {
			order.Margin = *upd.Margin
		}
		if upd.TaxRate != nil {
			order.TaxRate = *upd.TaxRate
		}
		order.TotalCost = CalculateTotalCost(order.BaseCost, order.Margin, order.TaxRate)
	}

	if err := db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
