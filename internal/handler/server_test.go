package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/metrosync/backend/internal/handler"
)

// serverMocks collects the dependencies for a test Server. Leave the ones
// your test never touches nil; the router only calls what the request hits.
type serverMocks struct {
	passengers   handler.PassengerServicer
	cards        handler.CardServicer
	cardTypes    handler.CardTypeServicer
	stations     handler.StationServicer
	fareRules    handler.FareRuleServicer
	trips        handler.TripServicer
	transactions handler.TransactionServicer
	dashboard    handler.DashboardServicer
	db           handler.Pinger
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(m serverMocks) http.Handler {
	srv := handler.NewServer(
		m.passengers,
		m.cards,
		m.cardTypes,
		m.stations,
		m.fareRules,
		m.trips,
		m.transactions,
		m.dashboard,
		m.db,
	)
	return srv.Routes()
}

// bytesReader wraps a raw string as a request body, for malformed payloads
// that json.Marshal could never produce.
func bytesReader(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeJSON decodes a response body into a generic map for key assertions.
func decodeJSON(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&m))
	return m
}

// mockPinger is a test double for handler.Pinger.
type mockPinger struct {
	ping func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.ping(ctx) }

var _ handler.Pinger = (*mockPinger)(nil)
