// Package artifact loads the trained vectorizer and classifier from
// their on-disk artifacts. Loading happens once at process start; a
// missing or corrupt artifact is fatal and the server never begins
// serving without both.
package artifact

import (
	"fmt"

	"review-sentiment-service/internal/core/domain"
)

// Store owns the deserialized vectorizer and classifier for the life of
// the process. Read-only after Load.
type Store struct {
	Vectorizer *TFIDFVectorizer
	Classifier *LinearClassifier
}

func Load(vectorizerPath, modelPath string) (*Store, error) {
	vectorizer, err := NewTFIDFVectorizer(vectorizerPath)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}

	classifier, err := NewLinearClassifier(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	if classifier.Dimensions() != vectorizer.Dimensions() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, model expects %d",
			domain.ErrArtifactCorrupt, vectorizer.Dimensions(), classifier.Dimensions())
	}

	return &Store{Vectorizer: vectorizer, Classifier: classifier}, nil
}

// Dimensions reports the feature width shared by both artifacts.
func (s *Store) Dimensions() int {
	return s.Classifier.Dimensions()
}
