package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers. Services wrap
// these with context via fmt.Errorf("%w: ...") so errors.Is still matches.
var (
	// ErrValidation marks missing or malformed required input (400).
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks a genuinely absent resource (404).
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied marks an authenticated caller without permission (403).
	// For profile reads it deliberately covers "does not exist" too, so a
	// caller cannot probe for profile existence.
	ErrAccessDenied = errors.New("access denied")
	// ErrConflict marks a duplicate grant or registration (400).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials marks a failed login (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
)
