package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microcredit/internal/apperrors"
)

// respondError maps service errors onto the HTTP surface: validation
// failures become 422 with the offending fields, everything else a 500.
func respondError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}
	if errors.Is(err, apperrors.ErrStoreUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
