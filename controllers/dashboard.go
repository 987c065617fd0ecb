package controllers

import (
	"net/http"

	"tuneshop-backend/repositories"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *repositories.DashboardRepository
}

func NewDashboardController(dashboard *repositories.DashboardRepository) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.dashboard.Stats()
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dc *DashboardController) RevenueChart(c *gin.Context) {
	days := parseLimitQuery(c, "days", 30)

	points, err := dc.dashboard.RevenueChart(days)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (dc *DashboardController) TopClients(c *gin.Context) {
	limit := parseLimitQuery(c, "limit", 5)

	top, err := dc.dashboard.TopClients(limit)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

func (dc *DashboardController) RecentOrders(c *gin.Context) {
	limit := parseLimitQuery(c, "limit", 10)

	orders, err := dc.dashboard.RecentOrders(limit)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
