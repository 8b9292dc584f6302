package ports

// Vectorizer converts raw review text into the numeric feature
// representation the classifier was trained on.
type Vectorizer interface {
	Transform(text string) ([]float64, error)
}

// Classifier maps a feature vector to a numeric class label.
type Classifier interface {
	Predict(features []float64) (int, error)
}
