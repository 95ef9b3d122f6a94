package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/starwars-favorites/internal/starwars/domain"
	"github.com/tair/starwars-favorites/pkg/logger"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// MessageResponse is the body of a successful delete
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message, StatusCode: status})
}

// respondDomainError maps a use case error onto an HTTP status.
// NotFound -> 404, Conflict -> 400, anything else -> 500.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch {
		case errors.Is(derr.Kind, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, derr.Message)
			return
		case errors.Is(derr.Kind, domain.ErrConflict):
			respondError(w, http.StatusBadRequest, derr.Message)
			return
		}
	}

	logger.Error(r.Context()).
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Request failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// pathID reads a numeric route variable
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
