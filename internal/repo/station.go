package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/metrosync/backend/internal/domain"
)

// StationRepo defines the persistence operations for Stations.
type StationRepo interface {
	// Create inserts a new station and returns the persisted record.
	// Returns domain.ErrConflict if the station name is already taken.
	Create(ctx context.Context, st domain.Station) (domain.Station, error)

	// GetByID retrieves a single station by primary key.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (domain.Station, error)

	// List returns all stations ordered by station name.
	List(ctx context.Context) ([]domain.Station, error)

	// CountIDs returns how many of the given station IDs exist.
	// Duplicate IDs count once. Used by fare rule creation to check the
	// start and end stations in a single query.
	CountIDs(ctx context.Context, ids []int64) (int64, error)

	// Update applies the non-nil fields of patch and returns the updated
	// record. Returns domain.ErrNotFound / domain.ErrConflict accordingly.
	Update(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error)

	// Delete removes a station by ID. Returns domain.ErrNotFound if it does
	// not exist, domain.ErrConflict if trips or fare rules still reference it.
	Delete(ctx context.Context, id int64) error
}

// pgStationRepo is the Postgres implementation of StationRepo.
type pgStationRepo struct {
	db db
}

// NewStationRepo constructs a StationRepo backed by the provided db connection.
func NewStationRepo(db db) StationRepo {
	return &pgStationRepo{db: db}
}

func (r *pgStationRepo) Create(ctx context.Context, st domain.Station) (domain.Station, error) {
	const q = `
		INSERT INTO stations (station_name, line_color)
		VALUES (@station_name, @line_color)
		RETURNING id, station_name, line_color`

	args := pgx.NamedArgs{
		"station_name": st.StationName,
		"line_color":   st.LineColor,
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgStationRepo) GetByID(ctx context.Context, id int64) (domain.Station, error) {
	const q = `
		SELECT id, station_name, line_color
		FROM stations
		WHERE id = @id`

	result, err := scanStation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgStationRepo) List(ctx context.Context) ([]domain.Station, error) {
	const q = `
		SELECT id, station_name, line_color
		FROM stations
		ORDER BY station_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: %w", err)
	}
	defer rows.Close()

	stations := []domain.Station{}
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.StationRepo.List: scan: %w", err)
		}
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StationRepo.List: rows: %w", err)
	}
	return stations, nil
}

func (r *pgStationRepo) CountIDs(ctx context.Context, ids []int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM stations WHERE id = ANY(@ids)`

	var count int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"ids": ids}).Scan(&count); err != nil {
		return 0, fmt.Errorf("repo.StationRepo.CountIDs: %w", err)
	}
	return count, nil
}

func (r *pgStationRepo) Update(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error) {
	const q = `
		UPDATE stations
		SET station_name = COALESCE(@station_name, station_name),
		    line_color   = COALESCE(@line_color, line_color)
		WHERE id = @id
		RETURNING id, station_name, line_color`

	args := pgx.NamedArgs{
		"id":           id,
		"station_name": patch.StationName,
		"line_color":   patch.LineColor,
	}

	result, err := scanStation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Station{}, fmt.Errorf("repo.StationRepo.Update: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgStationRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM stations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.StationRepo.Delete: %w", writeError(err, domain.ErrConflict))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.StationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanStation maps a single database row into a domain.Station.
func scanStation(s scanner) (domain.Station, error) {
	var st domain.Station
	err := s.Scan(&st.ID, &st.StationName, &st.LineColor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Station{}, domain.ErrNotFound
		}
		return domain.Station{}, err
	}
	return st, nil
}
