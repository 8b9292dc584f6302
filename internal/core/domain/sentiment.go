package domain

// Sentiment is the binary label a review is classified as.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// SentimentFromLabel maps the classifier's numeric label to a sentiment.
// Label 1 is positive; every other value is negative.
func SentimentFromLabel(label int) Sentiment {
	if label == 1 {
		return SentimentPositive
	}
	return SentimentNegative
}

// Prediction is the outcome of classifying a single review.
type Prediction struct {
	Review    string
	Label     int
	Sentiment Sentiment
}
