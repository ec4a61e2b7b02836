package handler

import (
	"net/http"
	"time"
)

type transactionResponse struct {
	TransactionID   int64     `json:"TransactionID"`
	TransactionType string    `json:"TransactionType"`
	Amount          float64   `json:"Amount"`
	TransactionDate time.Time `json:"TransactionDate"`
	CardNumber      string    `json:"CardNumber"`
	PassengerName   string    `json:"PassengerName"`
	PassengerID     int64     `json:"PassengerID"`
}

// ListTransactions handles GET /transactions. The transaction surface is
// read-only; rows are ordered most recent first.
func (s *Server) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := s.transactions.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]transactionResponse, len(txns))
	for i, tx := range txns {
		out[i] = transactionResponse{
			TransactionID:   tx.ID,
			TransactionType: tx.TransactionType,
			Amount:          tx.Amount,
			TransactionDate: tx.OccurredAt,
			CardNumber:      tx.CardNumber,
			PassengerName:   tx.PassengerName,
			PassengerID:     tx.PassengerID,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
