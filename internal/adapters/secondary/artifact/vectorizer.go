package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"review-sentiment-service/internal/core/domain"
)

const vectorizerSchema = "tfidf/v1"

// Word tokens of at least two characters, same as the tokenizer the
// vectorizer was fitted with.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

type vectorizerArtifact struct {
	Schema     string         `json:"schema"`
	Lowercase  bool           `json:"lowercase"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// TFIDFVectorizer reproduces the fitted TF-IDF transform from its
// exported vocabulary and inverse-document-frequency weights. It is
// immutable after load.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	lowercase  bool
}

func NewTFIDFVectorizer(path string) (*TFIDFVectorizer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var a vectorizerArtifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrArtifactCorrupt, err)
	}
	if a.Schema != vectorizerSchema {
		return nil, fmt.Errorf("%s: %w: unexpected schema %q", path, domain.ErrArtifactCorrupt, a.Schema)
	}
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("%s: %w: empty vocabulary", path, domain.ErrArtifactCorrupt)
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("%s: %w: vocabulary has %d terms but idf has %d weights",
			path, domain.ErrArtifactCorrupt, len(a.Vocabulary), len(a.IDF))
	}
	for term, col := range a.Vocabulary {
		if col < 0 || col >= len(a.IDF) {
			return nil, fmt.Errorf("%s: %w: term %q maps to column %d out of range",
				path, domain.ErrArtifactCorrupt, term, col)
		}
	}

	return &TFIDFVectorizer{
		vocabulary: a.Vocabulary,
		idf:        a.IDF,
		lowercase:  a.Lowercase,
	}, nil
}

// Transform converts raw text into an L2-normalised TF-IDF vector.
// Tokens outside the vocabulary are ignored; empty input yields the
// zero vector.
func (v *TFIDFVectorizer) Transform(text string) ([]float64, error) {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	features := make([]float64, len(v.idf))
	for _, token := range tokenPattern.FindAllString(text, -1) {
		if col, ok := v.vocabulary[token]; ok {
			features[col] += v.idf[col]
		}
	}

	var sum float64
	for _, f := range features {
		sum += f * f
	}
	if sum > 0 {
		norm := math.Sqrt(sum)
		for i := range features {
			features[i] /= norm
		}
	}

	return features, nil
}

// Dimensions reports the width of the feature vectors Transform produces.
func (v *TFIDFVectorizer) Dimensions() int {
	return len(v.idf)
}
