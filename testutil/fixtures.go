package testutil

import "github.com/google/uuid"

// UniqueEmail returns an email address that will not collide with any other
// test's data. Repo tests share one database schema (inside rolled-back
// transactions), but uniqueness constraints still bite within a single test,
// so fixtures must never reuse values.
func UniqueEmail() string {
	return "rider-" + uuid.NewString() + "@example.com"
}

// UniqueCardNumber returns a card number unique across the test run.
func UniqueCardNumber() string {
	return "MC-" + uuid.NewString()
}

// UniqueStationName returns a station name unique across the test run.
func UniqueStationName() string {
	return "Station " + uuid.NewString()
}

// UniqueTypeName returns a card type name unique across the test run.
func UniqueTypeName() string {
	return "Type " + uuid.NewString()
}
