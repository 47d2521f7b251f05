package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountDisabled       = errors.New("user account is disabled")
	ErrInsufficientPrivilege = errors.New("access denied, admin privileges required")
	ErrInvalidToken          = errors.New("invalid token")
	ErrUnauthorized          = errors.New("unauthorized")
)

// FieldErrors aggregates validation failures as field -> messages, so a
// single response can report every violated rule.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		f[field] = append(f[field], messages...)
	}
}

func (f FieldErrors) Any() bool {
	return len(f) > 0
}

type ValidationError struct {
	Details FieldErrors
}

func (e *ValidationError) Error() string {
	return "invalid input data"
}

type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload image: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
