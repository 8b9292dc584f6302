package handlers

import (
	"errors"
	"net/http"

	"review-sentiment-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrMissingReviewText):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Pipeline failures stay generic so concurrent requests remain
	// independent of one another.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
