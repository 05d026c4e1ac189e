package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/teamMongle/Mongle-Server/internal/apperrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged and degraded to a generic 500 so raw store
// errors never reach clients.
func (h *Handlers) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrConflict):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrUnauthorized):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrForbidden):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		h.Logger.Error().Err(err).Msg("internal error")
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
