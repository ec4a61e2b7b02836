package handler

import (
	"net/http"
	"time"

	"github.com/metrosync/backend/internal/domain"
)

type createCardRequest struct {
	CardNumber  *string  `json:"CardNumber"`
	PassengerID *int64   `json:"PassengerID"`
	CardTypeID  *int64   `json:"CardTypeID"`
	Balance     *float64 `json:"Balance"`
	Status      *string  `json:"Status"`
}

// updateCardRequest is the recognized-field set for PUT /cards/{id}.
// Only balance and status are mutable after issue.
type updateCardRequest struct {
	Balance *float64 `json:"Balance"`
	Status  *string  `json:"Status"`
}

type cardResponse struct {
	CardID      int64     `json:"CardID"`
	CardNumber  string    `json:"CardNumber"`
	Balance     float64   `json:"Balance"`
	IssueDate   time.Time `json:"IssueDate"`
	Status      string    `json:"Status"`
	PassengerID int64     `json:"PassengerID"`
	CardTypeID  int64     `json:"CardTypeID"`
	FirstName   string    `json:"FirstName"`
	LastName    string    `json:"LastName"`
	TypeName    string    `json:"TypeName"`
}

// ListCards handles GET /cards. Each row carries the owning passenger's
// name and the card type name.
func (s *Server) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cards.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = cardDetailToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCard handles POST /cards.
// CardNumber, PassengerID, and CardTypeID are required; Balance defaults to
// 0.0 and Status to Active.
func (s *Server) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.CardNumber == nil || req.PassengerID == nil || req.CardTypeID == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	c := domain.Card{
		CardNumber:  *req.CardNumber,
		PassengerID: *req.PassengerID,
		CardTypeID:  *req.CardTypeID,
	}
	if req.Balance != nil {
		c.Balance = *req.Balance
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	created, err := s.cards.Create(r.Context(), c)
	if err != nil {
		writeDomainError(w, r, err, errMessages{conflict: "card number already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "card created successfully",
		"CardID":  created.ID,
	})
}

// UpdateCard handles PUT /cards/{id}.
func (s *Server) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	var req updateCardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := domain.CardPatch{Balance: req.Balance, Status: req.Status}

	if _, err := s.cards.Update(r.Context(), id, patch); err != nil {
		writeDomainError(w, r, err, errMessages{notFound: "card not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "card updated successfully"})
}

// DeleteCard handles DELETE /cards/{id}.
func (s *Server) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := s.cards.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "card not found",
			conflict: "card still has trips or transactions",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "card deleted successfully"})
}

func cardDetailToResponse(c domain.CardDetail) cardResponse {
	return cardResponse{
		CardID:      c.ID,
		CardNumber:  c.CardNumber,
		Balance:     c.Balance,
		IssueDate:   c.IssuedOn,
		Status:      c.Status,
		PassengerID: c.PassengerID,
		CardTypeID:  c.CardTypeID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		TypeName:    c.TypeName,
	}
}
