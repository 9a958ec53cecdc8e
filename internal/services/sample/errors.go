package sample

import "errors"

// Sample-related errors
var (
	// Validation errors
	ErrEmptyPatientID         = errors.New("patient ID cannot be empty")
	ErrInvalidAlleleFrequency = errors.New("allele frequency must be between 0.0 and 1.0")
)
