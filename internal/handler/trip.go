package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/metrosync/backend/internal/domain"
)

// looseNumber accepts a JSON number or a numeric string ("5" and 5 both
// decode), matching what the turnstile clients actually send.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", string(b))
	}
	*n = looseNumber(v)
	return nil
}

// createTripRequest uses the camelCase keys the turnstile clients send,
// unlike the PascalCase records everywhere else.
type createTripRequest struct {
	CardID         *looseNumber `json:"cardId"`
	EntryStationID *looseNumber `json:"entryStationId"`
	ExitStationID  *looseNumber `json:"exitStationId"`
	EntryTime      *time.Time   `json:"entryTime"`
	ExitTime       *time.Time   `json:"exitTime"`
	FareAmount     *looseNumber `json:"fareAmount"`
}

type tripResponse struct {
	TripID         int64      `json:"TripID"`
	EntryTime      time.Time  `json:"EntryTime"`
	ExitTime       *time.Time `json:"ExitTime"`
	FareAmount     *float64   `json:"FareAmount"`
	CardNumber     string     `json:"CardNumber"`
	PassengerID    int64      `json:"PassengerID"`
	FirstName      string     `json:"FirstName"`
	LastName       string     `json:"LastName"`
	EntryStationID int64      `json:"EntryStationID"`
	EntryStation   string     `json:"EntryStation"`
	ExitStationID  *int64     `json:"ExitStationID"`
	ExitStation    *string    `json:"ExitStation"`
}

// ListTrips handles GET /trips. Rows are ordered by entry time descending;
// exit station fields are null for trips still in progress.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]tripResponse, len(trips))
	for i, t := range trips {
		out[i] = tripDetailToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTrip handles POST /trips.
// cardId and entryStationId are required. fareAmount defaults to 0.0,
// entryTime to now, exitTime and exitStationId to null.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input data")
		return
	}
	if req.CardID == nil || req.EntryStationID == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	fare := 0.0
	if req.FareAmount != nil {
		fare = float64(*req.FareAmount)
	}
	t := domain.Trip{
		CardID:         int64(*req.CardID),
		EntryStationID: int64(*req.EntryStationID),
		FareAmount:     &fare,
	}
	if req.EntryTime != nil {
		t.EntryTime = *req.EntryTime
	}
	if req.ExitTime != nil {
		et := *req.ExitTime
		t.ExitTime = &et
	}
	if req.ExitStationID != nil {
		id := int64(*req.ExitStationID)
		t.ExitStationID = &id
	}

	created, err := s.trips.Create(r.Context(), t)
	if err != nil {
		writeDomainError(w, r, err, errMessages{notFound: "card or station not found"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      created.ID,
		"message": "trip recorded successfully",
	})
}

func tripDetailToResponse(t domain.TripDetail) tripResponse {
	return tripResponse{
		TripID:         t.ID,
		EntryTime:      t.EntryTime,
		ExitTime:       t.ExitTime,
		FareAmount:     t.FareAmount,
		CardNumber:     t.CardNumber,
		PassengerID:    t.PassengerID,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		EntryStationID: t.EntryStationID,
		EntryStation:   t.EntryStation,
		ExitStationID:  t.ExitStationID,
		ExitStation:    t.ExitStation,
	}
}
