package domain

import "errors"

// Error taxonomy of the order engine. Adapters wrap these sentinels with
// fmt.Errorf("%w: ...") and callers classify with errors.Is.
var (
	// ErrInvalidInput marks malformed or missing required fields. Raised
	// before any write; terminal, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a missing campaign, publisher, order, line item or
	// deliverable reference. Terminal.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a business-state collision: a match already
	// selected, a deliverable already past its claimable state, a status
	// transition the graph forbids. The caller must re-fetch and decide.
	ErrConflict = errors.New("conflict")

	// ErrPartialFailure marks a multi-step create that committed some but
	// not all of its records. Never rolled back silently; surfaced so a
	// reconciliation job can complete or void the order.
	ErrPartialFailure = errors.New("partial failure")

	// ErrDependency marks an unreachable or misbehaving backing store. A
	// single-record write may be retried with the same idempotency key.
	ErrDependency = errors.New("dependency failure")
)
