package dto

import "review-sentiment-service/internal/core/domain"

// PredictionRequest is the JSON body for the predict endpoint. Text is
// a pointer so an absent field can be told apart from an empty review:
// the former is a client error, the latter is classified like any other
// input.
type PredictionRequest struct {
	Text *string `json:"text"`
}

type PredictionResponse struct {
	Text      string `json:"text"`
	Label     int    `json:"label"`
	Sentiment string `json:"sentiment"`
}

func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		Text:      p.Review,
		Label:     p.Label,
		Sentiment: string(p.Sentiment),
	}
}
