package handler

import (
	"net/http"

	"github.com/metrosync/backend/internal/domain"
)

type createCardTypeRequest struct {
	TypeName           *string  `json:"TypeName"`
	BaseFareMultiplier *float64 `json:"BaseFareMultiplier"`
	Description        *string  `json:"Description"`
}

type updateCardTypeRequest struct {
	TypeName           *string  `json:"TypeName"`
	BaseFareMultiplier *float64 `json:"BaseFareMultiplier"`
	Description        *string  `json:"Description"`
}

type cardTypeResponse struct {
	CardTypeID         int64   `json:"CardTypeID"`
	TypeName           string  `json:"TypeName"`
	BaseFareMultiplier float64 `json:"BaseFareMultiplier"`
	Description        string  `json:"Description"`
}

// ListCardTypes handles GET /card-types.
func (s *Server) ListCardTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.cardTypes.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]cardTypeResponse, len(types))
	for i, ct := range types {
		out[i] = cardTypeToResponse(ct)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCardType handles POST /card-types.
// TypeName and BaseFareMultiplier are required; Description is optional.
func (s *Server) CreateCardType(w http.ResponseWriter, r *http.Request) {
	var req createCardTypeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TypeName == nil || req.BaseFareMultiplier == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	ct := domain.CardType{
		TypeName:           *req.TypeName,
		BaseFareMultiplier: *req.BaseFareMultiplier,
	}
	if req.Description != nil {
		ct.Description = *req.Description
	}

	created, err := s.cardTypes.Create(r.Context(), ct)
	if err != nil {
		writeDomainError(w, r, err, errMessages{conflict: "card type name already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "card type created successfully",
		"CardTypeID": created.ID,
	})
}

// UpdateCardType handles PUT /card-types/{id}.
func (s *Server) UpdateCardType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card type id")
		return
	}

	var req updateCardTypeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := domain.CardTypePatch{
		TypeName:           req.TypeName,
		BaseFareMultiplier: req.BaseFareMultiplier,
		Description:        req.Description,
	}

	if _, err := s.cardTypes.Update(r.Context(), id, patch); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "card type not found",
			conflict: "card type name already exists",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "card type updated successfully"})
}

// DeleteCardType handles DELETE /card-types/{id}.
func (s *Server) DeleteCardType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card type id")
		return
	}

	if err := s.cardTypes.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "card type not found",
			conflict: "card type is still in use",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "card type deleted successfully"})
}

func cardTypeToResponse(ct domain.CardType) cardTypeResponse {
	return cardTypeResponse{
		CardTypeID:         ct.ID,
		TypeName:           ct.TypeName,
		BaseFareMultiplier: ct.BaseFareMultiplier,
		Description:        ct.Description,
	}
}
