package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RudraNarayan94/MOK/internal/service"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondMsg(w http.ResponseWriter, msg string, status int) {
	respondJSON(w, map[string]string{"msg": msg}, status)
}

func respondError(w http.ResponseWriter, detail string, status int) {
	respondJSON(w, map[string]string{"detail": detail}, status)
}

// serviceError turns boundary errors into their status codes; anything
// unexpected is logged and hidden behind a generic 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	default:
		h.log.Error("unexpected error", zap.Error(err))
		respondError(w, "something went wrong, try again later", http.StatusInternalServerError)
	}
}
