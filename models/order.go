package models

import (
	"time"
)

type Order struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"index;not null" json:"clientId"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:20;not null;default:'new'" json:"status"` // new, in_progress, waiting, completed, cancelled
	ServiceType string `gorm:"size:100" json:"serviceType"`

	BaseCost  float64 `gorm:"type:decimal(10,2);not null" json:"baseCost"`
	Margin    float64 `gorm:"type:decimal(5,2);default:20" json:"margin"`
	TaxRate   float64 `gorm:"type:decimal(5,2);default:23" json:"taxRate"`
	TotalCost float64 `gorm:"type:decimal(10,2)" json:"totalCost"`

	PaymentStatus string `gorm:"size:20;not null;default:'pending'" json:"paymentStatus"` // pending, paid, overdue

	StartDate      *time.Time `json:"startDate"`
	CompletionDate *time.Time `json:"completionDate"`
	InternalNotes  string     `gorm:"type:text" json:"internalNotes"`

	Files    []File          `gorm:"foreignKey:OrderID" json:"files,omitempty"`
	Payments []Payment       `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
	Timeline []TimelineEvent `gorm:"foreignKey:OrderID" json:"timeline,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
