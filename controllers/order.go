package controllers

import (
	"net/http"
	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrderInput defines the expected JSON structure for creating an order.
// Cost fields accept a number or a numeric string.
type CreateOrderInput struct {
	ClientID    uint            `json:"clientId" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	ServiceType *string         `json:"serviceType"`
	BaseCost    *models.Decimal `json:"baseCost" binding:"required"`
	Margin      *models.Decimal `json:"margin"`
	TaxRate     *models.Decimal `json:"taxRate"`
}

// UpdateOrderInput defines the expected JSON structure for updating an order
type UpdateOrderInput struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Status         *string         `json:"status" binding:"omitempty,oneof=new in_progress waiting completed cancelled"`
	ServiceType    *string         `json:"serviceType"`
	BaseCost       *models.Decimal `json:"baseCost"`
	Margin         *models.Decimal `json:"margin"`
	TaxRate        *models.Decimal `json:"taxRate"`
	PaymentStatus  *string         `json:"paymentStatus" binding:"omitempty,oneof=pending paid overdue"`
	StartDate      *time.Time      `json:"startDate"`
	CompletionDate *time.Time      `json:"completionDate"`
	InternalNotes  *string         `json:"internalNotes"`
}

type AddTimelineEventInput struct {
	EventType string `json:"eventType" binding:"required"`
	Comment   string `json:"comment"`
}

type CreatePaymentInput struct {
	Amount        *models.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes"`
}

type OrderController struct {
	orders   *repositories.OrderRepository
	clients  *repositories.ClientRepository
	timeline *repositories.TimelineRepository
	payments *repositories.PaymentRepository
	files    *repositories.FileRepository
}

func NewOrderController(
	orders *repositories.OrderRepository,
	clients *repositories.ClientRepository,
	timeline *repositories.TimelineRepository,
	payments *repositories.PaymentRepository,
	files *repositories.FileRepository,
) *OrderController {
	return &OrderController{
		orders:   orders,
		clients:  clients,
		timeline: timeline,
		payments: payments,
		files:    files,
	}
}

func decimalOrDefault(d *models.Decimal, def float64) float64 {
	if d == nil {
		return def
	}
	return d.Float64()
}

// Create opens a service order for a client. Margin and tax rate default to
// the workshop standard when omitted.
func (oc *OrderController) Create(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.BaseCost.Float64() < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "baseCost must not be negative")
		return
	}

	client, err := oc.clients.GetByID(input.ClientID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		return
	}

	order := models.Order{
		ClientID:      input.ClientID,
		Title:         input.Title,
		Status:        "new",
		BaseCost:      input.BaseCost.Float64(),
		Margin:        decimalOrDefault(input.Margin, repositories.DefaultMargin),
		TaxRate:       decimalOrDefault(input.TaxRate, repositories.DefaultTaxRate),
		PaymentStatus: "pending",
	}
	if input.Description != nil {
		order.Description = *input.Description
	}
	if input.ServiceType != nil {
		order.ServiceType = *input.ServiceType
	}

	if err := oc.orders.Create(&order); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// List retrieves orders filtered by client, status and payment status.
func (oc *OrderController) List(c *gin.Context) {
	filter := repositories.OrderFilter{
		ClientID:      parseUintQuery(c, "clientId"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
	}

	orders, err := oc.orders.List(filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.GetByID(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if order == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, order)
}

// Update applies a partial update. Changing any cost input recomputes the
// total from the stored triple.
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.BaseCost != nil && input.BaseCost.Float64() < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "baseCost must not be negative")
		return
	}

	upd := repositories.OrderUpdate{
		Title:          input.Title,
		Description:    input.Description,
		Status:         input.Status,
		ServiceType:    input.ServiceType,
		PaymentStatus:  input.PaymentStatus,
		StartDate:      input.StartDate,
		CompletionDate: input.CompletionDate,
		InternalNotes:  input.InternalNotes,
	}
	if input.BaseCost != nil {
		v := input.BaseCost.Float64()
		upd.BaseCost = &v
	}
	if input.Margin != nil {
		v := input.Margin.Float64()
		upd.Margin = &v
	}
	if input.TaxRate != nil {
		v := input.TaxRate.Float64()
		upd.TaxRate = &v
	}

	order, err := oc.orders.Update(id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if order == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddTimelineEvent appends an audit entry to an order's timeline.
func (oc *OrderController) AddTimelineEvent(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input AddTimelineEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := oc.orders.GetByID(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if order == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	event := models.TimelineEvent{
		OrderID:   orderID,
		EventType: input.EventType,
		Comment:   input.Comment,
	}
	if userID, exists := c.Get("userId"); exists {
		if id, ok := userID.(uint); ok {
			event.CreatedBy = &id
		}
	}

	if err := oc.timeline.AddEvent(&event); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (oc *OrderController) GetTimeline(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := oc.timeline.ListByOrder(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (oc *OrderController) GetFiles(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	files, err := oc.files.ListByOrder(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

func (oc *OrderController) GetPayments(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := oc.payments.ListByOrder(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CreatePayment records money received against the order. The order's
// paymentStatus is left alone; marking it paid is an explicit order update.
func (oc *OrderController) CreatePayment(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Amount.Float64() <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "amount must be positive")
		return
	}

	order, err := oc.orders.GetByID(orderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if order == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		return
	}

	payment := models.Payment{
		OrderID:       orderID,
		Amount:        input.Amount.Float64(),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if err := oc.payments.Create(&payment); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
