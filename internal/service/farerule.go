package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// FareRuleService implements business logic for FareRule operations.
// It holds the station repo because creating a rule requires both referenced
// stations to exist.
type FareRuleService struct {
	rules    repo.FareRuleRepo
	stations repo.StationRepo
}

// NewFareRuleService constructs a FareRuleService backed by the provided repos.
func NewFareRuleService(rules repo.FareRuleRepo, stations repo.StationRepo) *FareRuleService {
	return &FareRuleService{rules: rules, stations: stations}
}

// Create verifies both stations exist in a single query, then persists.
// A rule whose start and end are the same station fails the existence check
// (one match, not two) and is rejected with domain.ErrNotFound.
// Returns domain.ErrConflict if the (start, end, fare type) triple exists.
func (s *FareRuleService) Create(ctx context.Context, fr domain.FareRule) (domain.FareRule, error) {
	count, err := s.stations.CountIDs(ctx, []int64{fr.StartStationID, fr.EndStationID})
	if err != nil {
		return domain.FareRule{}, fmt.Errorf("service.FareRuleService.Create: %w", err)
	}
	if count != 2 {
		return domain.FareRule{}, fmt.Errorf("%w: one or both stations not found", domain.ErrNotFound)
	}
	result, err := s.rules.Create(ctx, fr)
	if err != nil {
		return domain.FareRule{}, fmt.Errorf("service.FareRuleService.Create: %w", err)
	}
	return result, nil
}

// List returns all fare rules with both station names joined.
func (s *FareRuleService) List(ctx context.Context) ([]domain.FareRuleDetail, error) {
	rules, err := s.rules.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.FareRuleService.List: %w", err)
	}
	return rules, nil
}

// Update applies a partial update (fare type and/or amount) to a fare rule.
func (s *FareRuleService) Update(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error) {
	if patch.IsZero() {
		return domain.FareRule{}, fmt.Errorf("%w: no valid fields to update", domain.ErrValidation)
	}
	result, err := s.rules.Update(ctx, id, patch)
	if err != nil {
		return domain.FareRule{}, fmt.Errorf("service.FareRuleService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a fare rule by ID.
func (s *FareRuleService) Delete(ctx context.Context, id int64) error {
	if err := s.rules.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FareRuleService.Delete: %w", err)
	}
	return nil
}
