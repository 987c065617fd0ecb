package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"tuneshop-backend/repositories"
	"tuneshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondStoreError maps repository failures onto the error taxonomy: a
// missing backing store is 503, a unique-index violation is 409 (covers
// writes that race past a pre-check), anything else from the store is a
// generic 500 with no detail leak.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, repositories.ErrStoreUnavailable) {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Backing store unavailable")
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.RespondWithError(c, http.StatusConflict, "Duplicate record")
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
}

// parseIDParam reads the :id path segment as an unsigned integer.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// parseUintQuery reads an optional unsigned integer query parameter, zero
// when absent or malformed.
func parseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// parseLimitQuery reads an optional positive integer query parameter,
// falling back to def.
func parseLimitQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
