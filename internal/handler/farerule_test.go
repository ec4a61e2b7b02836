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

// mockFareRuleServicer is a test double for handler.FareRuleServicer.
type mockFareRuleServicer struct {
	create func(ctx context.Context, fr domain.FareRule) (domain.FareRule, error)
	list   func(ctx context.Context) ([]domain.FareRuleDetail, error)
	update func(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockFareRuleServicer) Create(ctx context.Context, fr domain.FareRule) (domain.FareRule, error) {
	return m.create(ctx, fr)
}
func (m *mockFareRuleServicer) List(ctx context.Context) ([]domain.FareRuleDetail, error) {
	return m.list(ctx)
}
func (m *mockFareRuleServicer) Update(ctx context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error) {
	return m.update(ctx, id, patch)
}
func (m *mockFareRuleServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ handler.FareRuleServicer = (*mockFareRuleServicer)(nil)

func TestListFareRules_200_StationNames(t *testing.T) {
	svc := &mockFareRuleServicer{
		list: func(_ context.Context) ([]domain.FareRuleDetail, error) {
			return []domain.FareRuleDetail{{
				FareRule: domain.FareRule{
					ID:             11,
					StartStationID: 1,
					EndStationID:   2,
					FareType:       "standard",
					FareAmount:     2.75,
				},
				StartStationName: "Central Station",
				EndStationName:   "Downtown",
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/fare-rules", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.EqualValues(t, 11, resp[0]["FareRuleID"])
	assert.Equal(t, "Central Station", resp[0]["StartStationName"])
	assert.Equal(t, "Downtown", resp[0]["EndStationName"])
	assert.EqualValues(t, 2.75, resp[0]["FareAmount"])
}

func TestCreateFareRule_201(t *testing.T) {
	svc := &mockFareRuleServicer{
		create: func(_ context.Context, fr domain.FareRule) (domain.FareRule, error) {
			fr.ID = 11
			return fr, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"StartStationID": 1,
		"EndStationID":   2,
		"FareType":       "standard",
		"FareAmount":     2.75,
	})
	req := httptest.NewRequest(http.MethodPost, "/fare-rules", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, "fare rule created successfully", resp["message"])
	assert.EqualValues(t, 11, resp["FareRuleID"])
}

func TestCreateFareRule_400_MissingFields(t *testing.T) {
	h := newHTTPHandler(serverMocks{fareRules: &mockFareRuleServicer{}})

	body := jsonBody(t, map[string]any{"StartStationID": 1, "EndStationID": 2})
	req := httptest.NewRequest(http.MethodPost, "/fare-rules", body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields", decodeJSON(t, rec.Body)["error"])
}

func TestCreateFareRule_404_StationMissing(t *testing.T) {
	svc := &mockFareRuleServicer{
		create: func(_ context.Context, _ domain.FareRule) (domain.FareRule, error) {
			return domain.FareRule{}, fmt.Errorf("%w: one or both stations not found", domain.ErrNotFound)
		},
	}

	body := jsonBody(t, map[string]any{
		"StartStationID": 1,
		"EndStationID":   99,
		"FareType":       "standard",
		"FareAmount":     2.75,
	})
	req := httptest.NewRequest(http.MethodPost, "/fare-rules", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "one or both stations not found", decodeJSON(t, rec.Body)["error"])
}

func TestCreateFareRule_409_DuplicateTriple(t *testing.T) {
	svc := &mockFareRuleServicer{
		create: func(_ context.Context, _ domain.FareRule) (domain.FareRule, error) {
			return domain.FareRule{}, domain.ErrConflict
		},
	}

	body := jsonBody(t, map[string]any{
		"StartStationID": 1,
		"EndStationID":   2,
		"FareType":       "standard",
		"FareAmount":     2.75,
	})
	req := httptest.NewRequest(http.MethodPost, "/fare-rules", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "a fare rule with these parameters already exists", decodeJSON(t, rec.Body)["error"])
}

func TestUpdateFareRule_200(t *testing.T) {
	svc := &mockFareRuleServicer{
		update: func(_ context.Context, id int64, patch domain.FareRulePatch) (domain.FareRule, error) {
			assert.EqualValues(t, 11, id)
			require.NotNil(t, patch.FareAmount)
			return domain.FareRule{ID: id}, nil
		},
	}

	body := jsonBody(t, map[string]any{"FareAmount": 3.25})
	req := httptest.NewRequest(http.MethodPut, "/fare-rules/11", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fare rule updated successfully", decodeJSON(t, rec.Body)["message"])
}

func TestDeleteFareRule_404(t *testing.T) {
	svc := &mockFareRuleServicer{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/fare-rules/99", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{fareRules: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "fare rule not found", decodeJSON(t, rec.Body)["error"])
}
