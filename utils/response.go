package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes the JSON error envelope used across all handlers.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
