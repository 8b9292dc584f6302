package handlers

import (
	"net/http"

	"review-sentiment-service/internal/adapters/primary/http/dto"
	"review-sentiment-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) ReviewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"review": ""})
}

func (h *Handler) ClassifyReview(c *gin.Context) {
	// An absent review field behaves as an empty review; the model's
	// answer for the zero feature vector is as defined as any other.
	review := c.PostForm("review")

	pred, err := h.sentimentSvc.Classify(c.Request.Context(), review)
	if err != nil {
		log.WithError(err).Error("classify review failed")
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"review": review,
			"error":  "could not classify review",
		})
		return
	}

	predictionsTotal.WithLabelValues(string(pred.Sentiment)).Inc()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"review":     pred.Review,
		"prediction": string(pred.Sentiment),
	})
}

func (h *Handler) CreatePrediction(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Text == nil {
		mapDomainError(c, domain.ErrMissingReviewText)
		return
	}

	pred, err := h.sentimentSvc.Classify(c.Request.Context(), *req.Text)
	if err != nil {
		log.WithError(err).Error("classify review failed")
		mapDomainError(c, err)
		return
	}

	predictionsTotal.WithLabelValues(string(pred.Sentiment)).Inc()

	c.JSON(http.StatusOK, dto.ToPredictionResponse(pred))
}
