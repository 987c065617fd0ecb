package models

import (
	"time"
)

// TimelineEvent is an append-only audit entry on an order: status changes,
// comments, payment reminders.
type TimelineEvent struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"orderId"`

	EventType string `gorm:"size:50;not null" json:"eventType"`
	Comment   string `gorm:"type:text" json:"comment"`
	CreatedBy *uint  `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
}

func (TimelineEvent) TableName() string {
	return "order_timeline_events"
}
