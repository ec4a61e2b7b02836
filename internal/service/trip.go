package service

import (
	"context"
	"fmt"
	"time"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// The fare is caller-supplied: fare rules are reference data and are not
// consulted when a trip is recorded.
type TripService struct {
	trips repo.TripRepo

	// now is swappable for deterministic tests.
	now func() time.Time
}

// NewTripService constructs a TripService backed by the provided repo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips, now: time.Now}
}

// Create applies defaults (entry time = now when unset) and persists.
// Returns domain.ErrNotFound if the card or a referenced station is missing.
func (s *TripService) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if t.EntryTime.IsZero() {
		t.EntryTime = s.now().UTC()
	}
	result, err := s.trips.Create(ctx, t)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// List returns all trips with card, passenger, and station names joined,
// most recent entry first.
func (s *TripService) List(ctx context.Context) ([]domain.TripDetail, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return trips, nil
}
