package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/metrosync/backend/internal/domain"
)

// PassengerRepo defines the persistence operations for Passengers.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type PassengerRepo interface {
	// Create inserts a new passenger and returns the persisted record
	// (with DB-generated id and registered_at populated).
	// Returns domain.ErrConflict if the email is already taken.
	Create(ctx context.Context, p domain.Passenger) (domain.Passenger, error)

	// GetByID retrieves a single passenger by primary key.
	// Returns domain.ErrNotFound if no passenger with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Passenger, error)

	// List returns all passengers ordered by id.
	List(ctx context.Context) ([]domain.Passenger, error)

	// Update applies the non-nil fields of patch and returns the updated
	// record. Returns domain.ErrNotFound if the passenger does not exist,
	// domain.ErrConflict if the new email is already taken.
	Update(ctx context.Context, id int64, patch domain.PassengerPatch) (domain.Passenger, error)

	// Delete removes a passenger by ID. Returns domain.ErrNotFound if it
	// does not exist, domain.ErrConflict if cards still reference it.
	Delete(ctx context.Context, id int64) error
}

// pgPassengerRepo is the Postgres implementation of PassengerRepo.
type pgPassengerRepo struct {
	db db
}

// NewPassengerRepo constructs a PassengerRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPassengerRepo(db db) PassengerRepo {
	return &pgPassengerRepo{db: db}
}

func (r *pgPassengerRepo) Create(ctx context.Context, p domain.Passenger) (domain.Passenger, error) {
	const q = `
		INSERT INTO passengers (first_name, last_name, email, phone_number)
		VALUES (@first_name, @last_name, @email, @phone_number)
		RETURNING id, first_name, last_name, email, phone_number, registered_at`

	args := pgx.NamedArgs{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"email":        p.Email,
		"phone_number": p.PhoneNumber,
	}

	result, err := scanPassenger(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Passenger{}, fmt.Errorf("repo.PassengerRepo.Create: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgPassengerRepo) GetByID(ctx context.Context, id int64) (domain.Passenger, error) {
	const q = `
		SELECT id, first_name, last_name, email, phone_number, registered_at
		FROM passengers
		WHERE id = @id`

	result, err := scanPassenger(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Passenger{}, fmt.Errorf("repo.PassengerRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPassengerRepo) List(ctx context.Context) ([]domain.Passenger, error) {
	const q = `
		SELECT id, first_name, last_name, email, phone_number, registered_at
		FROM passengers
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PassengerRepo.List: %w", err)
	}
	defer rows.Close()

	passengers := []domain.Passenger{}
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PassengerRepo.List: scan: %w", err)
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PassengerRepo.List: rows: %w", err)
	}
	return passengers, nil
}

// Update applies only the non-nil patch fields. COALESCE with a NULL
// argument keeps the stored value, so the statement is fixed; no SQL is
// ever assembled from request content.
func (r *pgPassengerRepo) Update(ctx context.Context, id int64, patch domain.PassengerPatch) (domain.Passenger, error) {
	const q = `
		UPDATE passengers
		SET first_name   = COALESCE(@first_name, first_name),
		    last_name    = COALESCE(@last_name, last_name),
		    email        = COALESCE(@email, email),
		    phone_number = COALESCE(@phone_number, phone_number)
		WHERE id = @id
		RETURNING id, first_name, last_name, email, phone_number, registered_at`

	args := pgx.NamedArgs{
		"id":           id,
		"first_name":   patch.FirstName,
		"last_name":    patch.LastName,
		"email":        patch.Email,
		"phone_number": patch.PhoneNumber,
	}

	result, err := scanPassenger(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Passenger{}, fmt.Errorf("repo.PassengerRepo.Update: %w", writeError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgPassengerRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM passengers WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PassengerRepo.Delete: %w", writeError(err, domain.ErrConflict))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PassengerRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanPassenger maps a single database row into a domain.Passenger.
func scanPassenger(s scanner) (domain.Passenger, error) {
	var p domain.Passenger
	err := s.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.PhoneNumber, &p.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Passenger{}, domain.ErrNotFound
		}
		return domain.Passenger{}, err
	}
	return p, nil
}
