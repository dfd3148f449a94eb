package curve

import "errors"

var (
	// ErrTooFewPoints indicates a sample count below two; the spacing between
	// samples is undefined for a single point.
	ErrTooFewPoints = errors.New("curve: point count must be at least 2")

	// ErrInvalidBounds indicates a bounding rectangle with NaN or Inf edges.
	ErrInvalidBounds = errors.New("curve: bounds must be finite")
)
