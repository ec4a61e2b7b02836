package handler

import (
	"net/http"
	"time"

	"github.com/metrosync/backend/internal/domain"
)

// createPassengerRequest uses pointer fields so a missing key can be told
// apart from an explicit empty string.
type createPassengerRequest struct {
	FirstName   *string `json:"FirstName"`
	LastName    *string `json:"LastName"`
	Email       *string `json:"Email"`
	PhoneNumber *string `json:"PhoneNumber"`
}

// updatePassengerRequest is the recognized-field set for PUT /passengers/{id}.
// Unknown keys are ignored; absent keys leave the stored value unchanged.
type updatePassengerRequest struct {
	FirstName   *string `json:"FirstName"`
	LastName    *string `json:"LastName"`
	Email       *string `json:"Email"`
	PhoneNumber *string `json:"PhoneNumber"`
}

type passengerResponse struct {
	PassengerID      int64     `json:"PassengerID"`
	FirstName        string    `json:"FirstName"`
	LastName         string    `json:"LastName"`
	Email            string    `json:"Email"`
	PhoneNumber      string    `json:"PhoneNumber"`
	RegistrationDate time.Time `json:"RegistrationDate"`
}

// ListPassengers handles GET /passengers.
func (s *Server) ListPassengers(w http.ResponseWriter, r *http.Request) {
	passengers, err := s.passengers.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]passengerResponse, len(passengers))
	for i, p := range passengers {
		out[i] = passengerToResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreatePassenger handles POST /passengers.
// FirstName, LastName, and Email are required; PhoneNumber is optional.
func (s *Server) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req createPassengerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.FirstName == nil || req.LastName == nil || req.Email == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	p := domain.Passenger{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}

	created, err := s.passengers.Create(r.Context(), p)
	if err != nil {
		writeDomainError(w, r, err, errMessages{conflict: "email already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "passenger created successfully",
		"PassengerID": created.ID,
	})
}

// UpdatePassenger handles PUT /passengers/{id}.
func (s *Server) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid passenger id")
		return
	}

	var req updatePassengerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := domain.PassengerPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if _, err := s.passengers.Update(r.Context(), id, patch); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "passenger not found",
			conflict: "email already exists",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "passenger updated successfully"})
}

// DeletePassenger handles DELETE /passengers/{id}.
func (s *Server) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid passenger id")
		return
	}

	if err := s.passengers.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "passenger not found",
			conflict: "passenger still has cards",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "passenger deleted successfully"})
}

func passengerToResponse(p domain.Passenger) passengerResponse {
	return passengerResponse{
		PassengerID:      p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		PhoneNumber:      p.PhoneNumber,
		RegistrationDate: p.RegisteredAt,
	}
}
