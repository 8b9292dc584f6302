package domain

import "errors"

// Validation errors
var (
	ErrMissingReviewText = errors.New("review text is required")
)

// Artifact errors
var (
	ErrArtifactCorrupt  = errors.New("artifact is not a valid serialized object")
	ErrFeatureDimension = errors.New("feature vector does not match model dimensions")
)
