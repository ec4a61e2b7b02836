package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/metrosync/backend/internal/domain"
)

// CardTypeRepo defines the persistence operations for CardTypes.
type CardTypeRepo interface {
	// Create inserts a new card type and returns the persisted record.
	// Returns domain.ErrConflict if the type name is already taken.
	Create(ctx context.Context, ct domain.CardType) (domain.CardType, error)

	// GetByID retrieves a single card type by primary key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (domain.CardType, error)

	// List returns all card types ordered by type name.
	List(ctx context.Context) ([]domain.CardType, error)

	// Update applies the non-nil fields of patch and returns the updated
	// record. Returns domain.ErrNotFound / domain.ErrConflict accordingly.
	Update(ctx context.Context, id int64, patch domain.CardTypePatch) (domain.CardType, error)

	// Delete removes a card type by ID. Returns domain.ErrNotFound if it
	// does not exist, domain.ErrConflict if cards still reference it.
	Delete(ctx context.Context, id int64) error
}

// pgCardTypeRepo is the Postgres implementation of CardTypeRepo.
type pgCardTypeRepo struct {
	db db
}

// NewCardTypeRepo constructs a CardTypeRepo backed by the provided db connection.
func NewCardTypeRepo(db db) CardTypeRepo {
	return &pgCardTypeRepo{db: db}
}

func (r *pgCardTypeRepo) Create(ctx context.Context, ct domain.CardType) (domain.CardType, error) {
	const q = `
		INSERT INTO card_types (type_name, base_fare_multiplier, description)
		VALUES (@type_name, @base_fare_multiplier, @description)
		RETURNING id, type_name, base_fare_multiplier, description`

	args := pgx.NamedArgs{
		"type_name":            ct.TypeName,
		"base_fare_multiplier": ct.BaseFareMultiplier,
		"description":          ct.Description,
	}

	result, err := scanCardType(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CardType{}, fmt.Errorf("repo.CardTypeRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgCardTypeRepo) GetByID(ctx context.Context, id int64) (domain.CardType, error) {
	const q = `
		SELECT id, type_name, base_fare_multiplier, description
		FROM card_types
		WHERE id = @id`

	result, err := scanCardType(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.CardType{}, fmt.Errorf("repo.CardTypeRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCardTypeRepo) List(ctx context.Context) ([]domain.CardType, error) {
	const q = `
		SELECT id, type_name, base_fare_multiplier, description
		FROM card_types
		ORDER BY type_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CardTypeRepo.List: %w", err)
	}
	defer rows.Close()

	types := []domain.CardType{}
	for rows.Next() {
		ct, err := scanCardType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CardTypeRepo.List: scan: %w", err)
		}
		types = append(types, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CardTypeRepo.List: rows: %w", err)
	}
	return types, nil
}

func (r *pgCardTypeRepo) Update(ctx context.Context, id int64, patch domain.CardTypePatch) (domain.CardType, error) {
	const q = `
		UPDATE card_types
		SET type_name            = COALESCE(@type_name, type_name),
		    base_fare_multiplier = COALESCE(@base_fare_multiplier, base_fare_multiplier),
		    description          = COALESCE(@description, description)
		WHERE id = @id
		RETURNING id, type_name, base_fare_multiplier, description`

	args := pgx.NamedArgs{
		"id":                   id,
		"type_name":            patch.TypeName,
		"base_fare_multiplier": patch.BaseFareMultiplier,
		"description":          patch.Description,
	}

	result, err := scanCardType(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CardType{}, fmt.Errorf("repo.CardTypeRepo.Update: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgCardTypeRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM card_types WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.CardTypeRepo.Delete: %w", writeError(err, domain.ErrConflict))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CardTypeRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCardType maps a single database row into a domain.CardType.
func scanCardType(s scanner) (domain.CardType, error) {
	var ct domain.CardType
	err := s.Scan(&ct.ID, &ct.TypeName, &ct.BaseFareMultiplier, &ct.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CardType{}, domain.ErrNotFound
		}
		return domain.CardType{}, err
	}
	return ct, nil
}
