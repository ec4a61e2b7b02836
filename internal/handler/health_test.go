package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_200_DatabaseReachable(t *testing.T) {
	db := &mockPinger{ping: func(_ context.Context) error { return nil }}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{db: db}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "connected", resp["database"])
	assert.Contains(t, resp, "timestamp")
}

func TestHealth_500_DatabaseDown(t *testing.T) {
	db := &mockPinger{ping: func(_ context.Context) error { return errors.New("dial refused") }}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{db: db}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Equal(t, "unreachable", resp["database"])
}

func TestRoot_200_EndpointMap(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, "Metro Sync System API", resp["message"])
	assert.Equal(t, "running", resp["status"])

	endpoints, ok := resp["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/dashboard/stats", endpoints["dashboard"])
	assert.Equal(t, "/fare-rules", endpoints["fare_rules"])
}
