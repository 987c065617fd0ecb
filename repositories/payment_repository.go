package repositories

import (
	"tuneshop-backend/models"
)

type PaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Create(payment *models.Payment) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.Create(payment).Error
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]models.Payment, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	payments := make([]models.Payment, 0)
	err = db.Where("order_id = ?", orderID).
		Order("payment_date DESC, id DESC").
		Find(&payments).Error
	return payments, err
}
