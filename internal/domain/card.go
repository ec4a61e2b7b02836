package domain

import "time"

// Card statuses allowed by the cards.status check constraint.
const (
	CardStatusActive   = "Active"
	CardStatusInactive = "Inactive"
	CardStatusBlocked  = "Blocked"
)

// ValidCardStatus reports whether s is one of the allowed card statuses.
func ValidCardStatus(s string) bool {
	return s == CardStatusActive || s == CardStatusInactive || s == CardStatusBlocked
}

// Card is a fare-payment instrument tied to one passenger, carrying a
// balance and a status. CardNumber is globally unique.
type Card struct {
	ID          int64
	CardNumber  string
	Balance     float64
	IssuedOn    time.Time
	Status      string
	PassengerID int64
	CardTypeID  int64
}

// CardDetail is a Card joined with the owning passenger's name and the
// card type's name, as returned by the card list endpoint.
type CardDetail struct {
	Card
	FirstName string
	LastName  string
	TypeName  string
}

// CardPatch is a partial update for a card.
// Only balance and status are mutable after issue.
type CardPatch struct {
	Balance *float64
	Status  *string
}

// IsZero reports whether the patch would change nothing.
func (p CardPatch) IsZero() bool {
	return p.Balance == nil && p.Status == nil
}
