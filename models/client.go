package models

import (
	"time"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string  `gorm:"size:100;not null" json:"firstName"`
	LastName  string  `gorm:"size:100;not null" json:"lastName"`
	Email     string  `gorm:"size:320" json:"email"`
	Phone     string  `gorm:"size:20;not null" json:"phone"`
	VIN       *string `gorm:"column:vin;size:17;uniqueIndex" json:"vin"`

	VehicleModel string `gorm:"size:100" json:"vehicleModel"`
	VehicleYear  *int   `json:"vehicleYear"`

	LoyaltyStatus string  `gorm:"size:20;not null;default:'active'" json:"loyaltyStatus"` // active, periodic, inactive
	TotalSpent    float64 `gorm:"type:decimal(10,2);default:0" json:"totalSpent"`
	Notes         string  `gorm:"type:text" json:"notes"`

	Orders []Order `gorm:"foreignKey:ClientID" json:"orders,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
