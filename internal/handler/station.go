package handler

import (
	"net/http"

	"github.com/metrosync/backend/internal/domain"
)

type createStationRequest struct {
	StationName *string `json:"StationName"`
	LineColor   *string `json:"LineColor"`
}

type updateStationRequest struct {
	StationName *string `json:"StationName"`
	LineColor   *string `json:"LineColor"`
}

type stationResponse struct {
	StationID   int64  `json:"StationID"`
	StationName string `json:"StationName"`
	LineColor   string `json:"LineColor"`
}

// ListStations handles GET /stations.
func (s *Server) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := s.stations.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, errMessages{})
		return
	}
	out := make([]stationResponse, len(stations))
	for i, st := range stations {
		out[i] = stationToResponse(st)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateStation handles POST /stations.
// StationName is required; LineColor is optional.
func (s *Server) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req createStationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.StationName == nil {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	st := domain.Station{StationName: *req.StationName}
	if req.LineColor != nil {
		st.LineColor = *req.LineColor
	}

	created, err := s.stations.Create(r.Context(), st)
	if err != nil {
		writeDomainError(w, r, err, errMessages{conflict: "station name already exists"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "station created successfully",
		"StationID": created.ID,
	})
}

// UpdateStation handles PUT /stations/{id}.
func (s *Server) UpdateStation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	var req updateStationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := domain.StationPatch{StationName: req.StationName, LineColor: req.LineColor}

	if _, err := s.stations.Update(r.Context(), id, patch); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "station not found",
			conflict: "station name already exists",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "station updated successfully"})
}

// DeleteStation handles DELETE /stations/{id}.
func (s *Server) DeleteStation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	if err := s.stations.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, errMessages{
			notFound: "station not found",
			conflict: "station is referenced by trips or fare rules",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "station deleted successfully"})
}

func stationToResponse(st domain.Station) stationResponse {
	return stationResponse{
		StationID:   st.ID,
		StationName: st.StationName,
		LineColor:   st.LineColor,
	}
}
