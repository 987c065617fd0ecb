package models

import (
	"time"
)

// Payment records money received against an order. Inserting a payment does
// not move the order's paymentStatus; that transition stays an explicit
// order update.
type Payment struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"orderId"`

	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50" json:"paymentMethod"`
	PaymentDate   time.Time `gorm:"autoCreateTime" json:"paymentDate"`
	Notes         string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
}
