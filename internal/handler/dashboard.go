package handler

import (
	"net/http"
	"time"

	"github.com/metrosync/backend/internal/domain"
)

// dashboardResponse mirrors the keys the dashboard frontend reads.
type dashboardResponse struct {
	TotalPassengers    int64                       `json:"totalPassengers"`
	ActiveCards        int64                       `json:"activeCards"`
	BlockedCards       int64                       `json:"blockedCards"`
	TotalBalance       float64                     `json:"totalBalance"`
	TotalTrips         int64                       `json:"totalTrips"`
	ActiveTrips        int64                       `json:"activeTrips"`
	TotalStations      int64                       `json:"totalStations"`
	AverageFare        float64                     `json:"averageFare"`
	TotalTransactions  int64                       `json:"totalTransactions"`
	TotalRevenue       float64                     `json:"totalRevenue"`
	RecentTransactions []recentTransactionResponse `json:"recentTransactions"`
}

type recentTransactionResponse struct {
	TransactionID   int64     `json:"TransactionID"`
	Amount          float64   `json:"Amount"`
	TransactionDate time.Time `json:"TransactionDate"`
	TransactionType string    `json:"TransactionType"`
	CardNumber      string    `json:"CardNumber"`
	FirstName       string    `json:"FirstName"`
	LastName        string    `json:"LastName"`
}

// DashboardStats handles GET /dashboard/stats.
func (s *Server) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	writeJSON(w, http.StatusOK, dashboardToResponse(stats))
}

func dashboardToResponse(d domain.DashboardStats) dashboardResponse {
	recent := make([]recentTransactionResponse, len(d.RecentTransactions))
	for i, rt := range d.RecentTransactions {
		recent[i] = recentTransactionResponse{
			TransactionID:   rt.ID,
			Amount:          rt.Amount,
			TransactionDate: rt.OccurredAt,
			TransactionType: rt.TransactionType,
			CardNumber:      rt.CardNumber,
			FirstName:       rt.FirstName,
			LastName:        rt.LastName,
		}
	}
	return dashboardResponse{
		TotalPassengers:    d.TotalPassengers,
		ActiveCards:        d.ActiveCards,
		BlockedCards:       d.BlockedCards,
		TotalBalance:       d.TotalBalance,
		TotalTrips:         d.TotalTrips,
		ActiveTrips:        d.ActiveTrips,
		TotalStations:      d.TotalStations,
		AverageFare:        d.AverageFare,
		TotalTransactions:  d.TotalTransactions,
		TotalRevenue:       d.TotalRevenue,
		RecentTransactions: recent,
	}
}
