// Package service contains the business logic for the transit card API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here; services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// PassengerService implements business logic for Passenger operations.
type PassengerService struct {
	passengers repo.PassengerRepo
}

// NewPassengerService constructs a PassengerService backed by the provided repo.
func NewPassengerService(passengers repo.PassengerRepo) *PassengerService {
	return &PassengerService{passengers: passengers}
}

// Create persists a new passenger.
// Returns domain.ErrConflict if the email is already registered.
func (s *PassengerService) Create(ctx context.Context, p domain.Passenger) (domain.Passenger, error) {
	result, err := s.passengers.Create(ctx, p)
	if err != nil {
		return domain.Passenger{}, fmt.Errorf("service.PassengerService.Create: %w", err)
	}
	return result, nil
}

// List returns all passengers. Always returns a non-nil slice.
func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	passengers, err := s.passengers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PassengerService.List: %w", err)
	}
	return passengers, nil
}

// Update applies a partial update to an existing passenger.
// Returns domain.ErrValidation if the patch is empty, domain.ErrNotFound if
// the passenger does not exist, domain.ErrConflict on a duplicate email.
func (s *PassengerService) Update(ctx context.Context, id int64, patch domain.PassengerPatch) (domain.Passenger, error) {
	if patch.IsZero() {
		return domain.Passenger{}, fmt.Errorf("%w: no valid fields to update", domain.ErrValidation)
	}
	result, err := s.passengers.Update(ctx, id, patch)
	if err != nil {
		return domain.Passenger{}, fmt.Errorf("service.PassengerService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a passenger by ID.
// Returns domain.ErrNotFound if the passenger does not exist,
// domain.ErrConflict if cards still reference it.
func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	if err := s.passengers.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PassengerService.Delete: %w", err)
	}
	return nil
}
