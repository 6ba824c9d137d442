package diplomacy

import "errors"

// Failure conditions surfaced to the host. None are fatal: every failure
// path in the core degrades to "no state change".
var (
	// ErrCandidateNotFound is returned when a marriage proposal names a
	// person who is not an eligible heir of any kingdom.
	ErrCandidateNotFound = errors.New("marriage candidate not found")

	// ErrKingdomNotFound is returned for lookups of unknown kingdom IDs.
	ErrKingdomNotFound = errors.New("kingdom not found")
)
