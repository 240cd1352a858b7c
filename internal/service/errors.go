package service

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrIdentifierExhausted = errors.New("identifier space exhausted")
	ErrDependencyLocked    = errors.New("dependency locked")
)
