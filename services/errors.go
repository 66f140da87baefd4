package services

import "errors"

// Sentinel errors form the whole failure taxonomy of the API. Controllers
// map them to HTTP statuses; anything else becomes a generic 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")
)
