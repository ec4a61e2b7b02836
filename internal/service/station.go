package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// StationService implements business logic for Station operations.
type StationService struct {
	stations repo.StationRepo
}

// NewStationService constructs a StationService backed by the provided repo.
func NewStationService(stations repo.StationRepo) *StationService {
	return &StationService{stations: stations}
}

// Create persists a new station.
// Returns domain.ErrConflict for a duplicate station name.
func (s *StationService) Create(ctx context.Context, st domain.Station) (domain.Station, error) {
	result, err := s.stations.Create(ctx, st)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Create: %w", err)
	}
	return result, nil
}

// List returns all stations ordered by name.
func (s *StationService) List(ctx context.Context) ([]domain.Station, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StationService.List: %w", err)
	}
	return stations, nil
}

// Update applies a partial update to an existing station.
func (s *StationService) Update(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error) {
	if patch.IsZero() {
		return domain.Station{}, fmt.Errorf("%w: no valid fields to update", domain.ErrValidation)
	}
	result, err := s.stations.Update(ctx, id, patch)
	if err != nil {
		return domain.Station{}, fmt.Errorf("service.StationService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a station by ID.
// Returns domain.ErrConflict if trips or fare rules still reference it.
func (s *StationService) Delete(ctx context.Context, id int64) error {
	if err := s.stations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.StationService.Delete: %w", err)
	}
	return nil
}
