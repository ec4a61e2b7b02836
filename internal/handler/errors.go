package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/metrosync/backend/internal/domain"
)

// errorResponse is the body of every non-2xx response: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v and writes it with the given status code.
// Encoding errors at this point mean the response is already committed;
// they are logged and otherwise ignored.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes an {"error": message} body with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errMessages carries the per-operation texts used when mapping domain
// errors to responses. The handler is the layer that knows what was being
// looked up, so it supplies the wording.
type errMessages struct {
	notFound string
	conflict string
}

// writeDomainError maps a service-layer error onto the HTTP error taxonomy:
// ErrValidation → 400, ErrNotFound → 404, ErrConflict → 409, everything
// else → 500 with a generic message so no internal detail leaks.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, msgs errMessages) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, detailMessage(err, domain.ErrValidation, "invalid input"))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, detailMessage(err, domain.ErrNotFound, msgs.notFound))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, msgs.conflict)
	default:
		slog.ErrorContext(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// detailMessage extracts the human-readable detail a service attached after
// a sentinel (e.g. "not found: passenger not found" → "passenger not
// found"). Falls back when the error carries no detail, or when the detail
// is repo-internal (constraint names are not for clients).
func detailMessage(err error, sentinel error, fallback string) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return fallback
	}
	detail := msg[i+len(marker):]
	if detail == "" || strings.HasPrefix(detail, "constraint ") {
		return fallback
	}
	return detail
}

// pathID reads the numeric {id} URL parameter. The route patterns only
// match digit sequences, so parsing can only fail on overflow.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeBody decodes a JSON request body into dst.
// An empty body or malformed JSON is a client error, reported as 400 by callers.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
