package controllers

import (
	"net/http"
	"strings"

	"tuneshop-backend/models"
	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        string  `json:"phone" binding:"required"`
	VIN          *string `json:"vin" binding:"omitempty,max=17"`
	VehicleModel *string `json:"vehicleModel"`
	VehicleYear  *int    `json:"vehicleYear"`
	Notes        string  `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	VIN           *string `json:"vin" binding:"omitempty,max=17"`
	VehicleModel  *string `json:"vehicleModel"`
	VehicleYear   *int    `json:"vehicleYear"`
	LoyaltyStatus *string `json:"loyaltyStatus" binding:"omitempty,oneof=active periodic inactive"`
	Notes         *string `json:"notes"`
}

type ClientController struct {
	clients *repositories.ClientRepository
}

func NewClientController(clients *repositories.ClientRepository) *ClientController {
	return &ClientController{clients: clients}
}

// normalizeVIN uppercases and trims; returns nil for an empty value so the
// unique index sees NULL instead of "".
func normalizeVIN(vin *string) *string {
	if vin == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*vin))
	if v == "" {
		return nil
	}
	return &v
}

// Create registers a new client with their vehicle
func (cc *ClientController) Create(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	vin := normalizeVIN(input.VIN)
	if vin != nil {
		if !utils.ValidateVIN(*vin) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid VIN format")
			return
		}
		existing, err := cc.clients.GetByVIN(*vin)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if existing != nil {
			utils.RespondWithError(c, http.StatusConflict, "A client with this VIN already exists")
			return
		}
	}

	client := models.Client{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		VIN:           vin,
		Notes:         input.Notes,
		LoyaltyStatus: "active",
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.VehicleModel != nil {
		client.VehicleModel = *input.VehicleModel
	}
	client.VehicleYear = input.VehicleYear

	if err := cc.clients.Create(&client); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// List retrieves clients, optionally filtered by name search and loyalty
// status.
func (cc *ClientController) List(c *gin.Context) {
	filter := repositories.ClientFilter{
		Search:        c.Query("search"),
		LoyaltyStatus: c.Query("loyaltyStatus"),
	}

	clients, err := cc.clients.List(filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetByID retrieves a specific client
func (cc *ClientController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := cc.clients.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, client)
}

// Update applies a partial update to a client
func (cc *ClientController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	vin := normalizeVIN(input.VIN)
	input.VIN = vin
	if vin != nil {
		if !utils.ValidateVIN(*vin) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid VIN format")
			return
		}
		existing, err := cc.clients.GetByVIN(*vin)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		if existing != nil && existing.ID != id {
			utils.RespondWithError(c, http.StatusConflict, "Another client with this VIN already exists")
			return
		}
	}

	client, err := cc.clients.Update(id, repositories.ClientUpdate{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		VIN:           input.VIN,
		VehicleModel:  input.VehicleModel,
		VehicleYear:   input.VehicleYear,
		LoyaltyStatus: input.LoyaltyStatus,
		Notes:         input.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
