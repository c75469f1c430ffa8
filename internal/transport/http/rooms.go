package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RudraNarayan94/MOK/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := h.rooms.Create(r.Context(), user.ID, req.Text)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]string{"code": code}, http.StatusCreated)
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	code := chi.URLParam(r, "code")
	if err := h.rooms.Join(r.Context(), user.ID, code); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, fmt.Sprintf("Joined room %s successfully", code), http.StatusOK)
}

func (h *Handler) roomText(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	text, err := h.rooms.Text(r.Context(), code)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]string{"text": text}, http.StatusOK)
}

func (h *Handler) submitResult(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	var in service.ResultInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code := chi.URLParam(r, "code")
	if err := h.rooms.SubmitResult(r.Context(), user.ID, code, in); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, "Your result has been recorded", http.StatusOK)
}

func (h *Handler) roomLeaderboard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	results, err := h.rooms.Leaderboard(r.Context(), code)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, results, http.StatusOK)
}
