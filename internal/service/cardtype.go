package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// CardTypeService implements business logic for CardType operations.
type CardTypeService struct {
	cardTypes repo.CardTypeRepo
}

// NewCardTypeService constructs a CardTypeService backed by the provided repo.
func NewCardTypeService(cardTypes repo.CardTypeRepo) *CardTypeService {
	return &CardTypeService{cardTypes: cardTypes}
}

// Create validates and persists a new card type.
// Returns domain.ErrValidation for a negative multiplier,
// domain.ErrConflict for a duplicate type name.
func (s *CardTypeService) Create(ctx context.Context, ct domain.CardType) (domain.CardType, error) {
	if ct.BaseFareMultiplier < 0 {
		return domain.CardType{}, fmt.Errorf("%w: base fare multiplier must not be negative", domain.ErrValidation)
	}
	result, err := s.cardTypes.Create(ctx, ct)
	if err != nil {
		return domain.CardType{}, fmt.Errorf("service.CardTypeService.Create: %w", err)
	}
	return result, nil
}

// List returns all card types ordered by type name.
func (s *CardTypeService) List(ctx context.Context) ([]domain.CardType, error) {
	types, err := s.cardTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CardTypeService.List: %w", err)
	}
	return types, nil
}

// Update applies a partial update to an existing card type.
func (s *CardTypeService) Update(ctx context.Context, id int64, patch domain.CardTypePatch) (domain.CardType, error) {
	if patch.IsZero() {
		return domain.CardType{}, fmt.Errorf("%w: no valid fields to update", domain.ErrValidation)
	}
	if patch.BaseFareMultiplier != nil && *patch.BaseFareMultiplier < 0 {
		return domain.CardType{}, fmt.Errorf("%w: base fare multiplier must not be negative", domain.ErrValidation)
	}
	result, err := s.cardTypes.Update(ctx, id, patch)
	if err != nil {
		return domain.CardType{}, fmt.Errorf("service.CardTypeService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a card type by ID.
func (s *CardTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.cardTypes.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CardTypeService.Delete: %w", err)
	}
	return nil
}
