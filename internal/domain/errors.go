package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown card status).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write violates a uniqueness constraint
// (duplicate email, card number, station name, type name, fare-rule triple)
// or when a delete is blocked because other rows still reference the target.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
