package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"desqworx-backend/internal/domain"
	"desqworx-backend/internal/logger"
)

// Every endpoint answers with either {"data": ...} or
// {"error": {"kind": ..., "message": ...}}.

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func respondData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Data: data})
}

// respondError maps the domain taxonomy onto HTTP. Expected business
// failures keep their specific message; anything unrecognized is logged in
// full and answered with a generic one.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classify(err)

	message := err.Error()
	if kind == "internal" {
		logger.ErrorContext(r.Context(), "Unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Error: &errorBody{Kind: kind, Message: message}})
}

func classify(err error) (string, int) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "NotFound", http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount):
		return "InvalidAmount", http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientCredits):
		return "InsufficientCredits", http.StatusConflict
	case errors.Is(err, domain.ErrUnauthenticated):
		return "Unauthenticated", http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return "Forbidden", http.StatusForbidden
	case errors.Is(err, domain.ErrConstraintViolation):
		return "ConstraintViolation", http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "StoreUnavailable", http.StatusServiceUnavailable
	default:
		return "internal", http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
