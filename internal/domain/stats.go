package domain

import "time"

// DashboardStats is the aggregate snapshot behind GET /dashboard/stats.
// Each figure comes from an independent read query, so the snapshot is not
// transactionally consistent; it is a display aggregate, not a ledger.
type DashboardStats struct {
	TotalPassengers    int64
	ActiveCards        int64
	BlockedCards       int64
	TotalBalance       float64
	TotalTrips         int64
	ActiveTrips        int64
	TotalStations      int64
	AverageFare        float64
	TotalTransactions  int64
	TotalRevenue       float64
	RecentTransactions []RecentTransaction
}

// RecentTransaction is one row of the dashboard's five most recent
// transactions, joined with card number and passenger name.
type RecentTransaction struct {
	ID              int64
	Amount          float64
	OccurredAt      time.Time
	TransactionType string
	CardNumber      string
	FirstName       string
	LastName        string
}
