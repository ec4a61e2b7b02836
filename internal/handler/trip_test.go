package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
type mockTripServicer struct {
	create func(ctx context.Context, t domain.Trip) (domain.Trip, error)
	list   func(ctx context.Context) ([]domain.TripDetail, error)
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.TripDetail, error) {
	return m.list(ctx)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

func tripDetailFixture() domain.TripDetail {
	exit := time.Date(2026, 2, 14, 8, 55, 0, 0, time.UTC)
	exitStation := int64(3)
	exitName := "University"
	fare := 2.75
	return domain.TripDetail{
		ID:             12,
		EntryTime:      time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC),
		ExitTime:       &exit,
		FareAmount:     &fare,
		CardNumber:     "MC-1001",
		PassengerID:    4,
		FirstName:      "Ada",
		LastName:       "Osei",
		EntryStationID: 1,
		EntryStation:   "Central Station",
		ExitStationID:  &exitStation,
		ExitStation:    &exitName,
	}
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	inProgress := tripDetailFixture()
	inProgress.ID = 13
	inProgress.ExitTime = nil
	inProgress.ExitStationID = nil
	inProgress.ExitStation = nil
	inProgress.FareAmount = nil

	svc := &mockTripServicer{
		list: func(_ context.Context) ([]domain.TripDetail, error) {
			return []domain.TripDetail{inProgress, tripDetailFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)

	// In-progress trip: exit fields serialize as explicit nulls.
	assert.EqualValues(t, 13, resp[0]["TripID"])
	assert.Nil(t, resp[0]["ExitTime"])
	assert.Nil(t, resp[0]["ExitStation"])
	assert.Nil(t, resp[0]["FareAmount"])

	// Completed trip: joined names present.
	assert.Equal(t, "Central Station", resp[1]["EntryStation"])
	assert.Equal(t, "University", resp[1]["ExitStation"])
	assert.Equal(t, "MC-1001", resp[1]["CardNumber"])
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	var got domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			tr.ID = 12
			return tr, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"cardId":         1,
		"entryStationId": 2,
		"fareAmount":     2.75,
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.EqualValues(t, 12, resp["id"])
	assert.Equal(t, "trip recorded successfully", resp["message"])

	assert.EqualValues(t, 1, got.CardID)
	assert.EqualValues(t, 2, got.EntryStationID)
	require.NotNil(t, got.FareAmount)
	assert.Equal(t, 2.75, *got.FareAmount)
}

func TestCreateTrip_201_NumericStrings(t *testing.T) {
	// Turnstile clients send IDs as quoted strings; both forms must decode.
	var got domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			return tr, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"cardId":         "5",
		"entryStationId": "2",
		"exitStationId":  "3",
		"fareAmount":     "2.75",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 5, got.CardID)
	assert.EqualValues(t, 2, got.EntryStationID)
	require.NotNil(t, got.ExitStationID)
	assert.EqualValues(t, 3, *got.ExitStationID)
	require.NotNil(t, got.FareAmount)
	assert.Equal(t, 2.75, *got.FareAmount)
}

func TestCreateTrip_400_NonNumericCardID(t *testing.T) {
	h := newHTTPHandler(serverMocks{trips: &mockTripServicer{}})

	body := jsonBody(t, map[string]any{
		"cardId":         "abc",
		"entryStationId": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid input data", decodeJSON(t, rec.Body)["error"])
}

func TestCreateTrip_400_MissingRequired(t *testing.T) {
	h := newHTTPHandler(serverMocks{trips: &mockTripServicer{}})

	body := jsonBody(t, map[string]any{"cardId": 1})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields", decodeJSON(t, rec.Body)["error"])
}

func TestCreateTrip_DefaultsFareToZero(t *testing.T) {
	var got domain.Trip
	svc := &mockTripServicer{
		create: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			return tr, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"cardId":         1,
		"entryStationId": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, got.FareAmount)
	assert.Equal(t, 0.0, *got.FareAmount)
}

func TestCreateTrip_404_CardMissing(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, _ domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{
		"cardId":         99,
		"entryStationId": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{trips: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "card or station not found", decodeJSON(t, rec.Body)["error"])
}
