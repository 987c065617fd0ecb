package models

import (
	"time"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// External identity from the auth provider, unique per user.
	OpenID      string `gorm:"column:open_id;size:64;uniqueIndex;not null" json:"openId"`
	Name        string `json:"name"`
	Email       string `gorm:"size:320" json:"email"`
	LoginMethod string `gorm:"size:64" json:"loginMethod"`

	Role string `gorm:"size:20;not null;default:'user'" json:"role"` // 'user' or 'admin'

	LastSignedIn time.Time `json:"lastSignedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
