package handler

import (
	"net/http"

	"github.com/metrosync/backend/internal/domain"
)

type createFareRuleRequest struct {
	StartStationID *int64   `json:"StartStationID"`
	EndStationID   *int64   `json:"EndStationID"`
	FareType       *string  `json:"FareType"`
	FareAmount     *float64 `json:"FareAmount"`
}

// updateFareRuleRequest is the recognized-field set for PUT /fare-rules/{id}.
// The station pair is immutable.
type updateFareRuleRequest struct {
	FareType   *string  `json:"FareType"`
	FareAmount *float64 `json:"FareAmount"`
}

type fareRuleResponse struct {
	FareRuleID       int64   `json:"FareRuleID"`
	FareType         string  `json:"FareType"`
	FareAmount       float64 `json:"FareAmount"`
	StartStationID   int64   `json:"StartStationID"`
	StartStationName string  `json:"StartStationName"`
	EndStationID     int64   `json:"EndStationID"`
	EndStationName   string  `json:"EndStationName"`
}

// ListFareRules handles GET /fare-rules. Each row carries both station names.
func (s *Server) ListFareRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.fareRules.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]fareRuleResponse, len(rules))
	for i, fr := range rules {
		out[i] = fareRuleDetailToResponse(fr)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateFareRule handles POST /fare-rules. All four fields are required.
func (s *Server) CreateFareRule(w http.ResponseWriter, r *http.Request) {
	var req createFareRuleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.StartStationID == nil || req.EndStationID == nil || req.FareType == nil || req.FareAmount == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	fr := domain.FareRule{
		StartStationID: *req.StartStationID,
		EndStationID:   *req.EndStationID,
		FareType:       *req.FareType,
		FareAmount:     *req.FareAmount,
	}

	created, err := s.fareRules.Create(r.Context(), fr)
	if err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "one or both stations not found",
			conflict: "a fare rule with these parameters already exists",
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "fare rule created successfully",
		"FareRuleID": created.ID,
	})
}

// UpdateFareRule handles PUT /fare-rules/{id}.
func (s *Server) UpdateFareRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fare rule id")
		return
	}

	var req updateFareRuleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := domain.FareRulePatch{FareType: req.FareType, FareAmount: req.FareAmount}

	if _, err := s.fareRules.Update(r.Context(), id, patch); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "fare rule not found",
			conflict: "a fare rule with these parameters already exists",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "fare rule updated successfully"})
}

// DeleteFareRule handles DELETE /fare-rules/{id}.
func (s *Server) DeleteFareRule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fare rule id")
		return
	}

	if err := s.fareRules.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, errMessages{notFound: "fare rule not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "fare rule deleted successfully"})
}

func fareRuleDetailToResponse(fr domain.FareRuleDetail) fareRuleResponse {
	return fareRuleResponse{
		FareRuleID:       fr.ID,
		FareType:         fr.FareType,
		FareAmount:       fr.FareAmount,
		StartStationID:   fr.StartStationID,
		StartStationName: fr.StartStationName,
		EndStationID:     fr.EndStationID,
		EndStationName:   fr.EndStationName,
	}
}
