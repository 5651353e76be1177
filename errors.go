package aabbtree

import "fmt"

// Sentinel errors returned by public Tree operations. Callers compare
// against these with errors.Is; the wrapped message carries the offending
// values for logging.
var (
	// ErrInvalidDimension is returned when a tree is constructed with
	// dimension < 2, or an input bounds vector has the wrong length.
	ErrInvalidDimension = fmt.Errorf("aabbtree: invalid dimension")

	// ErrInvertedBounds is returned when lower[i] > upper[i] for some axis.
	ErrInvertedBounds = fmt.Errorf("aabbtree: lower bound exceeds upper bound")

	// ErrDuplicateParticle is returned by InsertParticle when the id is
	// already registered.
	ErrDuplicateParticle = fmt.Errorf("aabbtree: particle already exists")

	// ErrUnknownParticle is returned by RemoveParticle, UpdateParticle,
	// QueryParticle, QueryParticleAABB and GetAABB when the id is not
	// registered.
	ErrUnknownParticle = fmt.Errorf("aabbtree: unknown particle")
)

// dimensionError wraps ErrInvalidDimension with the offending lengths.
func dimensionError(want, got int) error {
	return fmt.Errorf("%w: want length %d, got %d", ErrInvalidDimension, want, got)
}

func invertedBoundsError(axis int, lower, upper float64) error {
	return fmt.Errorf("%w: axis %d, lower=%g upper=%g", ErrInvertedBounds, axis, lower, upper)
}

func duplicateParticleError(particle uint64) error {
	return fmt.Errorf("%w: %d", ErrDuplicateParticle, particle)
}

func unknownParticleError(particle uint64) error {
	return fmt.Errorf("%w: %d", ErrUnknownParticle, particle)
}
