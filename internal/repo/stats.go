package repo

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
)

// StatsRepo computes the dashboard aggregate.
type StatsRepo interface {
	// Dashboard runs the independent aggregate reads and combines them.
	// The reads are not wrapped in a transaction: concurrent writes between
	// them can produce a slightly inconsistent snapshot, which is acceptable
	// for a display aggregate.
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}

// pgStatsRepo is the Postgres implementation of StatsRepo.
type pgStatsRepo struct {
	db db
}

// NewStatsRepo constructs a StatsRepo backed by the provided db connection.
func NewStatsRepo(db db) StatsRepo {
	return &pgStatsRepo{db: db}
}

func (r *pgStatsRepo) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	scalars := []struct {
		query string
		dest  any
	}{
		{`SELECT COUNT(*) FROM passengers`, &stats.TotalPassengers},
		{`SELECT COUNT(*) FROM cards WHERE status = 'Active'`, &stats.ActiveCards},
		{`SELECT COUNT(*) FROM cards WHERE status = 'Blocked'`, &stats.BlockedCards},
		{`SELECT COALESCE(SUM(balance), 0) FROM cards`, &stats.TotalBalance},
		{`SELECT COUNT(*) FROM trips`, &stats.TotalTrips},
		{`SELECT COUNT(*) FROM trips WHERE exit_time IS NULL`, &stats.ActiveTrips},
		{`SELECT COUNT(*) FROM stations`, &stats.TotalStations},
		{`SELECT COALESCE(AVG(fare_amount), 0) FROM fare_rules`, &stats.AverageFare},
		{`SELECT COUNT(*) FROM transactions`, &stats.TotalTransactions},
		{`SELECT COALESCE(SUM(amount), 0) FROM transactions`, &stats.TotalRevenue},
	}
	for _, s := range scalars {
		if err := r.db.QueryRow(ctx, s.query).Scan(s.dest); err != nil {
			return domain.DashboardStats{}, fmt.Errorf("repo.StatsRepo.Dashboard: %w", err)
		}
	}

	const recentQ = `
		SELECT t.id, t.amount, t.occurred_at, t.transaction_type,
		       c.card_number, p.first_name, p.last_name
		FROM transactions t
		JOIN cards c ON t.card_id = c.id
		JOIN passengers p ON c.passenger_id = p.id
		ORDER BY t.occurred_at DESC
		LIMIT 5`

	rows, err := r.db.Query(ctx, recentQ)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("repo.StatsRepo.Dashboard: recent: %w", err)
	}
	defer rows.Close()

	stats.RecentTransactions = []domain.RecentTransaction{}
	for rows.Next() {
		var rt domain.RecentTransaction
		err := rows.Scan(&rt.ID, &rt.Amount, &rt.OccurredAt, &rt.TransactionType,
			&rt.CardNumber, &rt.FirstName, &rt.LastName)
		if err != nil {
			return domain.DashboardStats{}, fmt.Errorf("repo.StatsRepo.Dashboard: scan: %w", err)
		}
		stats.RecentTransactions = append(stats.RecentTransactions, rt)
	}
	if err := rows.Err(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("repo.StatsRepo.Dashboard: rows: %w", err)
	}

	return stats, nil
}
