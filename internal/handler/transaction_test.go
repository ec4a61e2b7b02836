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

// mockTransactionServicer is a test double for handler.TransactionServicer.
type mockTransactionServicer struct {
	list func(ctx context.Context) ([]domain.TransactionDetail, error)
}

func (m *mockTransactionServicer) List(ctx context.Context) ([]domain.TransactionDetail, error) {
	return m.list(ctx)
}

var _ handler.TransactionServicer = (*mockTransactionServicer)(nil)

func TestListTransactions_200(t *testing.T) {
	svc := &mockTransactionServicer{
		list: func(_ context.Context) ([]domain.TransactionDetail, error) {
			return []domain.TransactionDetail{{
				ID:              21,
				TransactionType: "topup",
				Amount:          20,
				OccurredAt:      time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
				CardNumber:      "MC-1001",
				PassengerName:   "Ada Osei",
				PassengerID:     4,
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(serverMocks{transactions: svc}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.EqualValues(t, 21, resp[0]["TransactionID"])
	assert.Equal(t, "topup", resp[0]["TransactionType"])
	assert.Equal(t, "MC-1001", resp[0]["CardNumber"])
	assert.Equal(t, "Ada Osei", resp[0]["PassengerName"])
	assert.Contains(t, resp[0], "TransactionDate")
}

// Transactions are read-only: writes must not route.
func TestTransactions_POST_NotAllowed(t *testing.T) {
	h := newHTTPHandler(serverMocks{transactions: &mockTransactionServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/transactions", jsonBody(t, map[string]any{}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
