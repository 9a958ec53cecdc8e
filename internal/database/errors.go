package database

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is. The typed errors below report
// themselves as these sentinels so callers can branch without type switches.
var (
	// ErrDuplicateKey indicates a uniqueness violation on gene or variant name
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferential indicates a foreign key pointing at a row that does not exist
	ErrReferential = errors.New("referenced row does not exist")

	// ErrDuplicateLink indicates an identical sample-variant association already exists.
	// Only returned when duplicate links are rejected explicitly.
	ErrDuplicateLink = errors.New("sample is already linked to variant")

	// ErrNotFound indicates a lookup by id or name matched no row
	ErrNotFound = errors.New("not found")
)

// ConnectionError is returned when the database file cannot be opened or reached.
// It is fatal at startup.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to database %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError is returned when table provisioning fails or an existing table
// is incompatible with the expected layout. It is fatal at startup.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("schema provisioning failed: %v", e.Err)
	}
	return fmt.Sprintf("schema provisioning failed for table %s: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// DuplicateKeyError reports which unique column rejected a value
type DuplicateKeyError struct {
	Table  string
	Column string
	Value  string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Table, e.Column, e.Value)
}

// Is matches ErrDuplicateKey
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// ReferentialError reports a foreign key value with no matching row
type ReferentialError struct {
	Table string // Referenced table
	ID    int
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s row %d does not exist", e.Table, e.ID)
}

// Is matches ErrReferential
func (e *ReferentialError) Is(target error) bool {
	return target == ErrReferential
}

// StorageError wraps any other engine failure during a query or mutation
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
