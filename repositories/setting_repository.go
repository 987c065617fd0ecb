package repositories

import (
	"errors"
	"time"

	"tuneshop-backend/models"

	"gorm.io/gorm"
)

type SettingUpdate struct {
	WorkshopName    *string
	WorkshopAddress *string
	WorkshopNIP     *string
	WorkshopLogo    *string
	DefaultMargin   *float64
	DefaultTaxRate  *float64
	DarkMode        *bool
	LocalMode       *bool
	BackupEnabled   *bool
	LastBackup      *time.Time
}

// SettingRepository manages the settings singleton: Get reads the first row,
// Update upserts it.
type SettingRepository struct {
	store *Store
}

func NewSettingRepository(store *Store) *SettingRepository {
	return &SettingRepository{store: store}
}

// Get returns (nil, nil) before the first update ever ran.
func (r *SettingRepository) Get() (*models.Setting, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var setting models.Setting
	if err := db.Order("id ASC").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Update applies the provided fields to the singleton row, inserting it when
// none exists yet.
func (r *SettingRepository) Update(upd SettingUpdate) (*models.Setting, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	setting, err := r.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &models.Setting{
			DefaultMargin:  DefaultMargin,
			DefaultTaxRate: DefaultTaxRate,
			DarkMode:       true,
			LocalMode:      true,
			BackupEnabled:  true,
		}
	}

	if upd.WorkshopName != nil {
		setting.WorkshopName = *upd.WorkshopName
	}
	if upd.WorkshopAddress != nil {
		setting.WorkshopAddress = *upd.WorkshopAddress
	}
	if upd.WorkshopNIP != nil {
		setting.WorkshopNIP = *upd.WorkshopNIP
	}
	if upd.WorkshopLogo != nil {
		setting.WorkshopLogo = *upd.WorkshopLogo
	}
	if upd.DefaultMargin != nil {
		setting.DefaultMargin = *upd.DefaultMargin
	}
	if upd.DefaultTaxRate != nil {
		setting.DefaultTaxRate = *upd.DefaultTaxRate
	}
	if upd.DarkMode != nil {
		setting.DarkMode = *upd.DarkMode
	}
	if upd.LocalMode != nil {
		setting.LocalMode = *upd.LocalMode
	}
	if upd.BackupEnabled != nil {
		setting.BackupEnabled = *upd.BackupEnabled
	}
	if upd.LastBackup != nil {
		setting.LastBackup = upd.LastBackup
	}

	if err := db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
