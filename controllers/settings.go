package controllers

import (
	"net/http"
	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateSettingsInput struct {
	WorkshopName    *string         `json:"workshopName"`
	WorkshopAddress *string         `json:"workshopAddress"`
	WorkshopNIP     *string         `json:"workshopNIP"`
	WorkshopLogo    *string         `json:"workshopLogo"`
	DefaultMargin   *models.Decimal `json:"defaultMargin"`
	DefaultTaxRate  *models.Decimal `json:"defaultTaxRate"`
	DarkMode        *bool           `json:"darkMode"`
	LocalMode       *bool           `json:"localMode"`
	BackupEnabled   *bool           `json:"backupEnabled"`
	LastBackup      *time.Time      `json:"lastBackup"`
}

type SettingsController struct {
	settings *repositories.SettingRepository
}

func NewSettingsController(settings *repositories.SettingRepository) *SettingsController {
	return &SettingsController{settings: settings}
}

// Get returns the workshop settings row, or null before first save.
func (sc *SettingsController) Get(c *gin.Context) {
	setting, err := sc.settings.Get()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if setting == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// Update upserts the settings singleton with the provided fields.
func (sc *SettingsController) Update(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	upd := repositories.SettingUpdate{
		WorkshopName:    input.WorkshopName,
		WorkshopAddress: input.WorkshopAddress,
		WorkshopNIP:     input.WorkshopNIP,
		WorkshopLogo:    input.WorkshopLogo,
		DarkMode:        input.DarkMode,
		LocalMode:       input.LocalMode,
		BackupEnabled:   input.BackupEnabled,
		LastBackup:      input.LastBackup,
	}
	if input.DefaultMargin != nil {
		v := input.DefaultMargin.Float64()
		upd.DefaultMargin = &v
	}
	if input.DefaultTaxRate != nil {
		v := input.DefaultTaxRate.Float64()
		upd.DefaultTaxRate = &v
	}

	if _, err := sc.settings.Update(upd); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
