package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// CardService implements business logic for Card operations.
// It holds the passenger and card type repos because issuing a card requires
// verifying both referenced entities exist before the insert.
type CardService struct {
	cards      repo.CardRepo
	passengers repo.PassengerRepo
	cardTypes  repo.CardTypeRepo
}

// NewCardService constructs a CardService backed by the provided repos.
func NewCardService(cards repo.CardRepo, passengers repo.PassengerRepo, cardTypes repo.CardTypeRepo) *CardService {
	return &CardService{cards: cards, passengers: passengers, cardTypes: cardTypes}
}

// Create verifies the referenced passenger and card type exist, applies
// defaults (status Active), validates the status, then persists.
// Returns domain.ErrNotFound when a referenced entity is missing,
// domain.ErrValidation for an unknown status,
// domain.ErrConflict for a duplicate card number.
func (s *CardService) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	if _, err := s.passengers.GetByID(ctx, c.PassengerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Card{}, fmt.Errorf("%w: passenger not found", domain.ErrNotFound)
		}
		return domain.Card{}, fmt.Errorf("service.CardService.Create: %w", err)
	}
	if _, err := s.cardTypes.GetByID(ctx, c.CardTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Card{}, fmt.Errorf("%w: card type not found", domain.ErrNotFound)
		}
		return domain.Card{}, fmt.Errorf("service.CardService.Create: %w", err)
	}

	if c.Status == "" {
		c.Status = domain.CardStatusActive
	}
	if !domain.ValidCardStatus(c.Status) {
		return domain.Card{}, fmt.Errorf("%w: status must be Active, Inactive, or Blocked", domain.ErrValidation)
	}

	result, err := s.cards.Create(ctx, c)
	if err != nil {
		return domain.Card{}, fmt.Errorf("service.CardService.Create: %w", err)
	}
	return result, nil
}

// List returns all cards with passenger and card type names joined.
func (s *CardService) List(ctx context.Context) ([]domain.CardDetail, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CardService.List: %w", err)
	}
	return cards, nil
}

// Update applies a partial update (balance and/or status) to a card.
// The status is validated here rather than left to the database check
// constraint, so an unknown status surfaces as a 400, not a 500.
func (s *CardService) Update(ctx context.Context, id int64, patch domain.CardPatch) (domain.Card, error) {
	if patch.IsZero() {
		return domain.Card{}, fmt.Errorf("%w: no valid fields to update", domain.ErrValidation)
	}
	if patch.Status != nil && !domain.ValidCardStatus(*patch.Status) {
		return domain.Card{}, fmt.Errorf("%w: status must be Active, Inactive, or Blocked", domain.ErrValidation)
	}
	result, err := s.cards.Update(ctx, id, patch)
	if err != nil {
		return domain.Card{}, fmt.Errorf("service.CardService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a card by ID.
// Returns domain.ErrNotFound if the card does not exist,
// domain.ErrConflict if trips or transactions still reference it.
func (s *CardService) Delete(ctx context.Context, id int64) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CardService.Delete: %w", err)
	}
	return nil
}
