package handler

import "net/http"

// Root handles GET /. It returns API metadata and the endpoint map so the
// service is self-describing when probed by hand.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Metro Sync System API",
		"status":  "running",
		"endpoints": map[string]string{
			"health":       "/health",
			"dashboard":    "/dashboard/stats",
			"passengers":   "/passengers",
			"cards":        "/cards",
			"card_types":   "/card-types",
			"stations":     "/stations",
			"trips":        "/trips",
			"transactions": "/transactions",
			"fare_rules":   "/fare-rules",
		},
	})
}
