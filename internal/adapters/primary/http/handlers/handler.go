package handlers

import (
	"review-sentiment-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sentimentSvc *services.SentimentService
}

func New(sentimentSvc *services.SentimentService) *Handler {
	return &Handler{sentimentSvc: sentimentSvc}
}

// RegisterRoutes mounts the review form.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.ReviewForm)
	r.POST("/", h.ClassifyReview)
}

// RegisterAPIRoutes mounts the JSON prediction API.
func (h *Handler) RegisterAPIRoutes(r *gin.RouterGroup) {
	r.POST("/predictions", h.CreatePrediction)
}
