package domain

import "time"

// Transaction is a single balance movement on a card (top-up, fare charge).
// Transactions are immutable: the API exposes them read-only.
type Transaction struct {
	ID              int64
	TransactionType string
	Amount          float64
	OccurredAt      time.Time
	CardID          int64
}

// TransactionDetail is a Transaction joined with the card number and the
// owning passenger, as returned by the transaction list endpoint.
type TransactionDetail struct {
	ID              int64
	TransactionType string
	Amount          float64
	OccurredAt      time.Time
	CardNumber      string
	PassengerName   string
	PassengerID     int64
}
