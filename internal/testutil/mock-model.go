package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockVectorizer is a mock of the Vectorizer port.
type MockVectorizer struct {
	mock.Mock
}

func (m *MockVectorizer) Transform(text string) ([]float64, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// MockClassifier is a mock of the Classifier port.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(features []float64) (int, error) {
	args := m.Called(features)
	return args.Int(0), args.Error(1)
}
