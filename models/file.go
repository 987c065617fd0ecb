package models

import (
	"time"
)

// File is an uploaded ECU binary attached to an order. Rows are append-only;
// the delete endpoint reports success without reclaiming storage.
type File struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"orderId"`

	FileName string `gorm:"size:255;not null" json:"fileName"`
	FileType string `gorm:"size:20;not null" json:"fileType"` // original or modified
	FileKey  string `gorm:"size:255;not null" json:"fileKey"`
	FileURL  string `gorm:"column:file_url;type:text;not null" json:"fileUrl"`
	FileSize *int64 `json:"fileSize"`

	// sha256 hex digest of the raw bytes, for integrity verification.
	Checksum string `gorm:"size:64" json:"checksum"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`
}
