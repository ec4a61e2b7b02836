package domain

import "time"

// Trip is one transit journey, opened at entry and optionally closed at
// exit. ExitTime, ExitStationID, and FareAmount are nil while the trip is
// still in progress. The fare is caller-supplied; fare rules are not
// consulted when a trip is recorded.
type Trip struct {
	ID             int64
	EntryTime      time.Time
	ExitTime       *time.Time
	FareAmount     *float64
	CardID         int64
	EntryStationID int64
	ExitStationID  *int64
}

// TripDetail is a Trip joined with the card, its owning passenger, and the
// entry/exit station names. Exit fields are nil for trips in progress.
type TripDetail struct {
	ID             int64
	EntryTime      time.Time
	ExitTime       *time.Time
	FareAmount     *float64
	CardNumber     string
	PassengerID    int64
	FirstName      string
	LastName       string
	EntryStationID int64
	EntryStation   string
	ExitStationID  *int64
	ExitStation    *string
}
