package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/handler"
)

// mockStationServicer is a test double for handler.StationServicer.
type mockStationServicer struct {
	create func(ctx context.Context, st domain.Station) (domain.Station, error)
	list   func(ctx context.Context) ([]domain.Station, error)
	update func(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockStationServicer) Create(ctx context.Context, st domain.Station) (domain.Station, error) {
	return m.create(ctx, st)
}
func (m *mockStationServicer) List(ctx context.Context) ([]domain.Station, error) {
	return m.list(ctx)
}
func (m *mockStationServicer) Update(ctx context.Context, id int64, patch domain.StationPatch) (domain.Station, error) {
	return m.update(ctx, id, patch)
}
func (m *mockStationServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ handler.StationServicer = (*mockStationServicer)(nil)

func TestListStations_200(t *testing.T) {
	svc := &mockStationServicer{
		list: func(_ context.Context) ([]domain.Station, error) {
			return []domain.Station{
				{ID: 1, StationName: "Central Station", LineColor: "Blue"},
				{ID: 4, StationName: "City Park", LineColor: "Green"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{stations: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.EqualValues(t, 1, resp[0]["StationID"])
	assert.Equal(t, "Central Station", resp[0]["StationName"])
	assert.Equal(t, "Blue", resp[0]["LineColor"])
}

func TestCreateStation_201(t *testing.T) {
	svc := &mockStationServicer{
		create: func(_ context.Context, st domain.Station) (domain.Station, error) {
			st.ID = 6
			return st, nil
		},
	}

	body := jsonBody(t, map[string]any{"StationName": "Harbor Point", "LineColor": "Green"})
	req := httptest.NewRequest(http.MethodPost, "/stations", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{stations: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, "station created successfully", resp["message"])
	assert.EqualValues(t, 6, resp["StationID"])
}

func TestCreateStation_400_MissingName(t *testing.T) {
	h := newHTTPHandler(serverMocks{stations: &mockStationServicer{}})

	body := jsonBody(t, map[string]any{"LineColor": "Green"})
	req := httptest.NewRequest(http.MethodPost, "/stations", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields", decodeJSON(t, rec.Body)["error"])
}

func TestCreateStation_409_DuplicateName(t *testing.T) {
	svc := &mockStationServicer{
		create: func(_ context.Context, _ domain.Station) (domain.Station, error) {
			return domain.Station{}, domain.ErrConflict
		},
	}

	body := jsonBody(t, map[string]any{"StationName": "Central Station"})
	req := httptest.NewRequest(http.MethodPost, "/stations", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{stations: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "station name already exists", decodeJSON(t, rec.Body)["error"])
}

func TestDeleteStation_409_StillReferenced(t *testing.T) {
	svc := &mockStationServicer{
		delete: func(_ context.Context, _ int64) error {
			return fmt.Errorf("%w: constraint trips_entry_station_id_fkey", domain.ErrConflict)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/stations/1", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{stations: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
