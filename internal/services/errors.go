package services

import "errors"

// ErrNotFound is returned by lookup operations when no row matches.
// Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ValidationError carries the field -> message map produced by input
// validation. Handlers translate it to a 400 with the field detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
