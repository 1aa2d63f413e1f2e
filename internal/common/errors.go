// Package common defines shared constants and sentinel errors used across
// client and stub-backend layers of gophadmin. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors.
	ErrorValidation    = errors.New("validation error")
	ErrorInvalidStatus = errors.New("invalid status")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
