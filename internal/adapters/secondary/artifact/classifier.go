package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"review-sentiment-service/internal/core/domain"
)

const classifierSchema = "linear/v1"

type classifierArtifact struct {
	Schema    string    `json:"schema"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Classes   []int     `json:"classes"`
}

// LinearClassifier is a binary linear model restored from its exported
// coefficients. Immutable after load.
type LinearClassifier struct {
	coef      []float64
	intercept float64
	classes   [2]int
}

func NewLinearClassifier(path string) (*LinearClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var a classifierArtifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrArtifactCorrupt, err)
	}
	if a.Schema != classifierSchema {
		return nil, fmt.Errorf("%s: %w: unexpected schema %q", path, domain.ErrArtifactCorrupt, a.Schema)
	}
	if len(a.Coef) == 0 {
		return nil, fmt.Errorf("%s: %w: empty coefficients", path, domain.ErrArtifactCorrupt)
	}
	if len(a.Classes) != 2 {
		return nil, fmt.Errorf("%s: %w: expected 2 classes, got %d", path, domain.ErrArtifactCorrupt, len(a.Classes))
	}

	return &LinearClassifier{
		coef:      a.Coef,
		intercept: a.Intercept,
		classes:   [2]int{a.Classes[0], a.Classes[1]},
	}, nil
}

// Predict scores the feature vector against the decision boundary and
// returns the class label on the matching side.
func (c *LinearClassifier) Predict(features []float64) (int, error) {
	if len(features) != len(c.coef) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			domain.ErrFeatureDimension, len(features), len(c.coef))
	}

	score := c.intercept
	for i, f := range features {
		score += c.coef[i] * f
	}

	if score > 0 {
		return c.classes[1], nil
	}
	return c.classes[0], nil
}

// Dimensions reports the feature-vector width the model expects.
func (c *LinearClassifier) Dimensions() int {
	return len(c.coef)
}
