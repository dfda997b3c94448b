package menu

import "errors"

// Failure taxonomy of the generation pipeline. All three are terminal for
// the current request; nothing is retried internally.
var (
	// ErrEmptyInventory: the user has no stocked items, so no model call is
	// made. Recoverable by adding stock.
	ErrEmptyInventory = errors.New("inventory is empty")

	// ErrServiceUnavailable: transport or availability failure of the
	// generative model. Recoverable by resubmission.
	ErrServiceUnavailable = errors.New("generation service unavailable")

	// ErrMalformedOutput: the model returned text that does not satisfy the
	// required JSON schema. A content problem, not a transport problem.
	ErrMalformedOutput = errors.New("malformed generation output")
)
