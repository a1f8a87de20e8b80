package engine

import "github.com/KirkDiggler/lifesim-api/internal/errors"

// NoEligibleEvent signals that filtering left nothing to pick from.
// Callers synthesize a quiet turn instead of failing the year.
func NoEligibleEvent() error {
	return errors.NotFound("no eligible event")
}

// IsNoEligibleEvent reports whether err came from an empty selection
// pool.
func IsNoEligibleEvent(err error) bool {
	return errors.IsNotFound(err)
}
