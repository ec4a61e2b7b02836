// Package domain contains the core data types for the transit card backend.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Passenger is a registered rider who can own any number of fare cards.
// Email is globally unique; PhoneNumber may be empty.
type Passenger struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	RegisteredAt time.Time
}

// PassengerPatch is a partial update for a passenger.
// Nil fields are left unchanged; at least one field must be set.
type PassengerPatch struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
}

// IsZero reports whether the patch would change nothing.
func (p PassengerPatch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PhoneNumber == nil
}
