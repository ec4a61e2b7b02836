package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/metrosync/backend/internal/domain"
)

// CardRepo defines the persistence operations for Cards.
type CardRepo interface {
	// Create inserts a new card and returns the persisted record (with
	// DB-generated id and issued_on populated).
	// Returns domain.ErrConflict if the card number is already taken,
	// domain.ErrNotFound if the passenger or card type does not exist.
	Create(ctx context.Context, c domain.Card) (domain.Card, error)

	// GetByID retrieves a single card by primary key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (domain.Card, error)

	// List returns all cards joined with the owning passenger's name and
	// the card type name, ordered by id.
	List(ctx context.Context) ([]domain.CardDetail, error)

	// Update applies the non-nil fields of patch and returns the updated
	// record. Returns domain.ErrNotFound if the card does not exist,
	// domain.ErrValidation if the new status violates the check constraint.
	Update(ctx context.Context, id int64, patch domain.CardPatch) (domain.Card, error)

	// Delete removes a card by ID. Returns domain.ErrNotFound if it does
	// not exist, domain.ErrConflict if trips or transactions reference it.
	Delete(ctx context.Context, id int64) error
}

// pgCardRepo is the Postgres implementation of CardRepo.
type pgCardRepo struct {
	db db
}

// NewCardRepo constructs a CardRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCardRepo(db db) CardRepo {
	return &pgCardRepo{db: db}
}

func (r *pgCardRepo) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	const q = `
		INSERT INTO cards (card_number, balance, status, passenger_id, card_type_id)
		VALUES (@card_number, @balance, @status, @passenger_id, @card_type_id)
		RETURNING id, card_number, balance, issued_on, status, passenger_id, card_type_id`

	args := pgx.NamedArgs{
		"card_number":  c.CardNumber,
		"balance":      c.Balance,
		"status":       c.Status,
		"passenger_id": c.PassengerID,
		"card_type_id": c.CardTypeID,
	}

	result, err := scanCard(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Card{}, fmt.Errorf("repo.CardRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgCardRepo) GetByID(ctx context.Context, id int64) (domain.Card, error) {
	const q = `
		SELECT id, card_number, balance, issued_on, status, passenger_id, card_type_id
		FROM cards
		WHERE id = @id`

	result, err := scanCard(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Card{}, fmt.Errorf("repo.CardRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCardRepo) List(ctx context.Context) ([]domain.CardDetail, error) {
	const q = `
		SELECT c.id, c.card_number, c.balance, c.issued_on, c.status,
		       c.passenger_id, c.card_type_id,
		       p.first_name, p.last_name, ct.type_name
		FROM cards c
		JOIN passengers p ON c.passenger_id = p.id
		JOIN card_types ct ON c.card_type_id = ct.id
		ORDER BY c.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CardRepo.List: %w", err)
	}
	defer rows.Close()

	cards := []domain.CardDetail{}
	for rows.Next() {
		var (
			d        domain.CardDetail
			issuedOn pgtype.Date
		)
		err := rows.Scan(&d.ID, &d.CardNumber, &d.Balance, &issuedOn, &d.Status,
			&d.PassengerID, &d.CardTypeID, &d.FirstName, &d.LastName, &d.TypeName)
		if err != nil {
			return nil, fmt.Errorf("repo.CardRepo.List: scan: %w", err)
		}
		d.IssuedOn = issuedOn.Time
		cards = append(cards, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CardRepo.List: rows: %w", err)
	}
	return cards, nil
}

func (r *pgCardRepo) Update(ctx context.Context, id int64, patch domain.CardPatch) (domain.Card, error) {
	const q = `
		UPDATE cards
		SET balance = COALESCE(@balance, balance),
		    status  = COALESCE(@status, status)
		WHERE id = @id
		RETURNING id, card_number, balance, issued_on, status, passenger_id, card_type_id`

	args := pgx.NamedArgs{
		"id":      id,
		"balance": patch.Balance,
		"status":  patch.Status,
	}

	result, err := scanCard(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Card{}, fmt.Errorf("repo.CardRepo.Update: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgCardRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM cards WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CardRepo.Delete: %w", writeError(err, domain.ErrConflict))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CardRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCard maps a single database row into a domain.Card.
// issued_on is a DATE column, so it goes through pgtype.Date.
func scanCard(s scanner) (domain.Card, error) {
	var (
		c        domain.Card
		issuedOn pgtype.Date
	)
	err := s.Scan(&c.ID, &c.CardNumber, &c.Balance, &issuedOn, &c.Status, &c.PassengerID, &c.CardTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Card{}, domain.ErrNotFound
		}
		return domain.Card{}, err
	}
	c.IssuedOn = issuedOn.Time
	return c, nil
}
