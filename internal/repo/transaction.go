package repo

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
)

// TransactionRepo defines the persistence operations for Transactions.
// The API exposes transactions read-only, so List is the whole surface.
type TransactionRepo interface {
	// List returns all transactions joined with card number and passenger
	// name, ordered by occurred_at descending (most recent first).
	List(ctx context.Context) ([]domain.TransactionDetail, error)
}

// pgTransactionRepo is the Postgres implementation of TransactionRepo.
type pgTransactionRepo struct {
	db db
}

// NewTransactionRepo constructs a TransactionRepo backed by the provided db connection.
func NewTransactionRepo(db db) TransactionRepo {
	return &pgTransactionRepo{db: db}
}

func (r *pgTransactionRepo) List(ctx context.Context) ([]domain.TransactionDetail, error) {
	const q = `
		SELECT t.id, t.transaction_type, t.amount, t.occurred_at,
		       c.card_number, p.first_name || ' ' || p.last_name, p.id
		FROM transactions t
		JOIN cards c ON t.card_id = c.id
		JOIN passengers p ON c.passenger_id = p.id
		ORDER BY t.occurred_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TransactionRepo.List: %w", err)
	}
	defer rows.Close()

	txns := []domain.TransactionDetail{}
	for rows.Next() {
		var d domain.TransactionDetail
		err := rows.Scan(&d.ID, &d.TransactionType, &d.Amount, &d.OccurredAt,
			&d.CardNumber, &d.PassengerName, &d.PassengerID)
		if err != nil {
			return nil, fmt.Errorf("repo.TransactionRepo.List: scan: %w", err)
		}
		txns = append(txns, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TransactionRepo.List: rows: %w", err)
	}
	return txns, nil
}
