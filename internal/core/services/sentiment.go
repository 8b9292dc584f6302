package services

import (
	"context"

	"review-sentiment-service/internal/core/domain"
	"review-sentiment-service/internal/core/ports/output"
)

// SentimentService runs a review through the vectorize-then-predict
// pipeline. Both ports are loaded once at startup and never mutated, so
// the service is safe for concurrent use.
type SentimentService struct {
	vectorizer ports.Vectorizer
	classifier ports.Classifier
}

func NewSentimentService(vectorizer ports.Vectorizer, classifier ports.Classifier) *SentimentService {
	return &SentimentService{vectorizer: vectorizer, classifier: classifier}
}

func (s *SentimentService) Classify(ctx context.Context, review string) (*domain.Prediction, error) {
	features, err := s.vectorizer.Transform(review)
	if err != nil {
		return nil, err
	}

	label, err := s.classifier.Predict(features)
	if err != nil {
		return nil, err
	}

	return &domain.Prediction{
		Review:    review,
		Label:     label,
		Sentiment: domain.SentimentFromLabel(label),
	}, nil
}
