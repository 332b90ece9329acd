package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrAlreadyExists   = errors.New("entity already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("operation not permitted for role")
	ErrUnauthorized    = errors.New("authentication required")

	// Access code errors
	ErrInvalidCode             = errors.New("access code unknown or deactivated")
	ErrCodeExpired             = errors.New("access code has expired")
	ErrCodeExhausted           = errors.New("access code has no uses left")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique access code")

	// Infra errors
	ErrInvalidExecContext = errors.New("invalid executor context")
	ErrReadDatabaseRow    = errors.New("failed to read database row")
)
