package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/models"
)

// errorResponse builds the standard error envelope.
func errorResponse(code, message string) gin.H {
	return gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// respondDomainError maps state machine errors onto HTTP statuses:
// validation failures are the caller's to fix (400), state conflicts mean the
// order moved on (409), anything else is a persistence problem (500).
func respondDomainError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var conflictErr *models.StateConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse(validationErr.Code, validationErr.Message))
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, errorResponse(conflictErr.Code, conflictErr.Message))
	default:
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to persist changes"))
	}
}
