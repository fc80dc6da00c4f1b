package ruleset

import "errors"

// Fatal error classes shared by every game package. A function that returns
// an error wrapping one of these has left the game in an unusable state.
var (
	// ErrInvariant marks a broken internal invariant: a defect in the game core.
	ErrInvariant = errors.New("invariant violation")
	// ErrMisuse marks a caller violating an API contract.
	ErrMisuse = errors.New("api misuse")
)
