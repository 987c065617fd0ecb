package models

import (
	"time"
)

// Setting is the workshop configuration singleton. Reads take the first row,
// updates upsert it, so at most one row ever exists.
type Setting struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkshopName    string `gorm:"size:255" json:"workshopName"`
	WorkshopAddress string `gorm:"type:text" json:"workshopAddress"`
	WorkshopNIP     string `gorm:"column:workshop_nip;size:20" json:"workshopNIP"`
	WorkshopLogo    string `gorm:"type:text" json:"workshopLogo"`

	DefaultMargin  float64 `gorm:"type:decimal(5,2);default:20" json:"defaultMargin"`
	DefaultTaxRate float64 `gorm:"type:decimal(5,2);default:23" json:"defaultTaxRate"`

	DarkMode      bool       `gorm:"default:true" json:"darkMode"`
	LocalMode     bool       `gorm:"default:true" json:"localMode"`
	BackupEnabled bool       `gorm:"default:true" json:"backupEnabled"`
	LastBackup    *time.Time `json:"lastBackup"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
