package handlers

import (
	"errors"
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP statuses: validation
// failures are 400, missing rows 404, everything else is a 500
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err) || errors.Is(err, apperrors.ErrEmptySearchQuery):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// parseID reads and validates the :id path parameter, answering 400 on
// a malformed id. The bool reports whether the handler should continue.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id parameter"})
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID extracts the authenticated user id when one is set
func currentUserID(c *gin.Context) *string {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
