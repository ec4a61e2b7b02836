// Package handler implements the HTTP handlers for the transit card API.
// All handlers are methods on Server; methods are split into resource
// specific files (passenger.go, card.go, etc.) but all share the same
// Server struct so they can access its dependencies.
//
// Field names on the wire are the ones the original dashboard frontend
// consumes (PascalCase records, camelCase trip-creation body and dashboard
// keys), so the API is a drop-in replacement for it.
package handler

import (
	"context"

	"github.com/metrosync/backend/internal/domain"
)

// Servicer interfaces are defined here, in the consumer package, following
// the Go convention "accept interfaces, return concrete types". Handler
// tests inject mocks without touching the database or service layer.

// PassengerServicer defines the business operations the passenger handler depends on.
type PassengerServicer interface {
	Create(ctx context.Context, p domain.Passenger) (domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	Update(ctx context.Context, id int64, patch domain.PassengerPatch) (domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

// CardServicer defines the business operations the card handler depends on.
type CardServicer interface {
	Create(ctx context.Context, c domain.Card) (domain.Card, error)
	List(ctx context.Context) ([]domain.CardDetail, error)
	Update(ctx context.Context, id int64, patch domain.CardPatch) (domain.Card, error)
	Delete(ctx context.Context, id int64) error
}

// CardTypeServicer defines the business operations the card type handler depends on.
type CardTypeServicer interface {
	Create(ctx context.Context, ct domain.CardType) (domain.CardType, error)
	List(ctx context.Context) ([]domain.CardType, error)
	Update(ctx context.Context, id int64, patch domain.CardTypePatch) (domain.CardType, error)
	Delete(ctx context.Context, id int64) error
}

// StationServicer defines the business operations the station handler depends on.
type StationServicer interface {
	Create(ctx context.Context, st domain.Station) (domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
	Update(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error)
	Delete(ctx context.Context, id int64) error
}

// FareRuleServicer defines the business operations the fare rule handler depends on.
type FareRuleServicer interface {
	Create(ctx context.Context, fr domain.FareRule) (domain.FareRule, error)
	List(ctx context.Context) ([]domain.FareRuleDetail, error)
	Update(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error)
	Delete(ctx context.Context, id int64) error
}

// TripServicer defines the business operations the trip handler depends on.
type TripServicer interface {
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.TripDetail, error)
}

// TransactionServicer defines the read-only transaction listing operation.
type TransactionServicer interface {
	List(ctx context.Context) ([]domain.TransactionDetail, error)
}

// DashboardServicer defines the dashboard aggregate operation.
type DashboardServicer interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

// Pinger reports whether the database is reachable.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	passengers   PassengerServicer
	cards        CardServicer
	cardTypes    CardTypeServicer
	stations     StationServicer
	fareRules    FareRuleServicer
	trips        TripServicer
	transactions TransactionServicer
	dashboard    DashboardServicer
	db           Pinger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	passengers PassengerServicer,
	cards CardServicer,
	cardTypes CardTypeServicer,
	stations StationServicer,
	fareRules FareRuleServicer,
	trips TripServicer,
	transactions TransactionServicer,
	dashboard DashboardServicer,
	db Pinger,
) *Server {
	return &Server{
		passengers:   passengers,
		cards:        cards,
		cardTypes:    cardTypes,
		stations:     stations,
		fareRules:    fareRules,
		trips:        trips,
		transactions: transactions,
		dashboard:    dashboard,
		db:           db,
	}
}
