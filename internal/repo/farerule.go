package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/metrosync/backend/internal/domain"
)

// FareRuleRepo defines the persistence operations for FareRules.
type FareRuleRepo interface {
	// Create inserts a new fare rule and returns the persisted record.
	// Returns domain.ErrConflict if the (start, end, fare type) triple
	// already exists, domain.ErrNotFound if a station does not exist.
	Create(ctx context.Context, fr domain.FareRule) (domain.FareRule, error)

	// List returns all fare rules joined with both station names,
	// ordered by id.
	List(ctx context.Context) ([]domain.FareRuleDetail, error)

	// Update applies the non-nil fields of patch and returns the updated
	// record. Returns domain.ErrNotFound / domain.ErrConflict accordingly.
	Update(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error)

	// Delete removes a fare rule by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgFareRuleRepo is the Postgres implementation of FareRuleRepo.
type pgFareRuleRepo struct {
	db db
}

// NewFareRuleRepo constructs a FareRuleRepo backed by the provided db connection.
func NewFareRuleRepo(db db) FareRuleRepo {
	return &pgFareRuleRepo{db: db}
}

func (r *pgFareRuleRepo) Create(ctx context.Context, fr domain.FareRule) (domain.FareRule, error) {
	const q = `
		INSERT INTO fare_rules (start_station_id, end_station_id, fare_type, fare_amount)
		VALUES (@start_station_id, @end_station_id, @fare_type, @fare_amount)
		RETURNING id, start_station_id, end_station_id, fare_type, fare_amount`

	args := pgx.NamedArgs{
		"start_station_id": fr.StartStationID,
		"end_station_id":   fr.EndStationID,
		"fare_type":        fr.FareType,
		"fare_amount":      fr.FareAmount,
	}

	result, err := scanFareRule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FareRule{}, fmt.Errorf("repo.FareRuleRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgFareRuleRepo) List(ctx context.Context) ([]domain.FareRuleDetail, error) {
	const q = `
		SELECT fr.id, fr.start_station_id, fr.end_station_id, fr.fare_type, fr.fare_amount,
		       s1.station_name, s2.station_name
		FROM fare_rules fr
		JOIN stations s1 ON fr.start_station_id = s1.id
		JOIN stations s2 ON fr.end_station_id = s2.id
		ORDER BY fr.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.FareRuleRepo.List: %w", err)
	}
	defer rows.Close()

	rules := []domain.FareRuleDetail{}
	for rows.Next() {
		var d domain.FareRuleDetail
		err := rows.Scan(&d.ID, &d.StartStationID, &d.EndStationID, &d.FareType, &d.FareAmount,
			&d.StartStationName, &d.EndStationName)
		if err != nil {
			return nil, fmt.Errorf("repo.FareRuleRepo.List: scan: %w", err)
		}
		rules = append(rules, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FareRuleRepo.List: rows: %w", err)
	}
	return rules, nil
}

func (r *pgFareRuleRepo) Update(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error) {
	const q = `
		UPDATE fare_rules
		SET fare_type   = COALESCE(@fare_type, fare_type),
		    fare_amount = COALESCE(@fare_amount, fare_amount)
		WHERE id = @id
		RETURNING id, start_station_id, end_station_id, fare_type, fare_amount`

	args := pgx.NamedArgs{
		"id":          id,
		"fare_type":   patch.FareType,
		"fare_amount": patch.FareAmount,
	}

	result, err := scanFareRule(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FareRule{}, fmt.Errorf("repo.FareRuleRepo.Update: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgFareRuleRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM fare_rules WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FareRuleRepo.Delete: %w", writeError(err, domain.ErrConflict))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FareRuleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanFareRule maps a single database row into a domain.FareRule.
func scanFareRule(s scanner) (domain.FareRule, error) {
	var fr domain.FareRule
	err := s.Scan(&fr.ID, &fr.StartStationID, &fr.EndStationID, &fr.FareType, &fr.FareAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FareRule{}, domain.ErrNotFound
		}
		return domain.FareRule{}, err
	}
	return fr, nil
}
