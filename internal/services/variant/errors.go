package variant

import "errors"

// Variant-related errors
var (
	// Validation errors
	ErrEmptyName = errors.New("variant name cannot be empty")
)
