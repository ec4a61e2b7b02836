package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/metrosync/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// Trips are append-only at the API level: no update or delete surface.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record.
	// Returns domain.ErrNotFound if the card or a referenced station
	// does not exist.
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)

	// List returns all trips joined with card, passenger, and station
	// names, ordered by entry_time descending (most recent first).
	List(ctx context.Context) ([]domain.TripDetail, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (entry_time, exit_time, fare_amount, card_id, entry_station_id, exit_station_id)
		VALUES (@entry_time, @exit_time, @fare_amount, @card_id, @entry_station_id, @exit_station_id)
		RETURNING id, entry_time, exit_time, fare_amount, card_id, entry_station_id, exit_station_id`

	args := pgx.NamedArgs{
		"entry_time":       t.EntryTime,
		"exit_time":        t.ExitTime, // nil becomes NULL
		"fare_amount":      t.FareAmount,
		"card_id":          t.CardID,
		"entry_station_id": t.EntryStationID,
		"exit_station_id":  t.ExitStationID,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

// List joins cards, passengers, and (left-joined, nullable) entry/exit stations.
// The exit station join is LEFT because trips in progress have no exit yet.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.TripDetail, error) {
	const q = `
		SELECT t.id, t.entry_time, t.exit_time, t.fare_amount,
		       c.card_number, p.id, p.first_name, p.last_name,
		       es.id, es.station_name,
		       xs.id, xs.station_name
		FROM trips t
		JOIN cards c ON t.card_id = c.id
		JOIN passengers p ON c.passenger_id = p.id
		LEFT JOIN stations es ON t.entry_station_id = es.id
		LEFT JOIN stations xs ON t.exit_station_id = xs.id
		ORDER BY t.entry_time DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	trips := []domain.TripDetail{}
	for rows.Next() {
		var (
			d             domain.TripDetail
			exitTime      pgtype.Timestamptz
			fareAmount    pgtype.Float8
			entryStID     pgtype.Int8
			entryStName   pgtype.Text
			exitStID      pgtype.Int8
			exitStName    pgtype.Text
		)
		err := rows.Scan(&d.ID, &d.EntryTime, &exitTime, &fareAmount,
			&d.CardNumber, &d.PassengerID, &d.FirstName, &d.LastName,
			&entryStID, &entryStName, &exitStID, &exitStName)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}

		if exitTime.Valid {
			et := exitTime.Time
			d.ExitTime = &et
		}
		if fareAmount.Valid {
			fa := fareAmount.Float64
			d.FareAmount = &fa
		}
		if entryStID.Valid {
			d.EntryStationID = entryStID.Int64
			d.EntryStation = entryStName.String
		}
		if exitStID.Valid {
			id := exitStID.Int64
			name := exitStName.String
			d.ExitStationID = &id
			d.ExitStation = &name
		}

		trips = append(trips, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}
	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the three nullable exit-side columns.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t          domain.Trip
		exitTime   pgtype.Timestamptz
		fareAmount pgtype.Float8
		exitStID   pgtype.Int8
	)
	err := s.Scan(&t.ID, &t.EntryTime, &exitTime, &fareAmount, &t.CardID, &t.EntryStationID, &exitStID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	if exitTime.Valid {
		et := exitTime.Time
		t.ExitTime = &et
	}
	if fareAmount.Valid {
		fa := fareAmount.Float64
		t.FareAmount = &fa
	}
	if exitStID.Valid {
		id := exitStID.Int64
		t.ExitStationID = &id
	}
	return t, nil
}
