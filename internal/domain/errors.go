package domain

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller lacks the role required for an operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidInput is returned when a request or imported document is malformed.
var ErrInvalidInput = errors.New("invalid input")
