package gene

import "errors"

// Gene-related errors
var (
	// Validation errors
	ErrEmptyName = errors.New("gene name cannot be empty")
)
