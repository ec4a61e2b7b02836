package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// TransactionService implements the read-only Transaction surface.
type TransactionService struct {
	txns repo.TransactionRepo
}

// NewTransactionService constructs a TransactionService backed by the provided repo.
func NewTransactionService(txns repo.TransactionRepo) *TransactionService {
	return &TransactionService{txns: txns}
}

// List returns all transactions with card number and passenger name joined,
// most recent first.
func (s *TransactionService) List(ctx context.Context) ([]domain.TransactionDetail, error) {
	txns, err := s.txns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TransactionService.List: %w", err)
	}
	return txns, nil
}
