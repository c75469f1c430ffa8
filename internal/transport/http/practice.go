package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/RudraNarayan94/MOK/internal/service"
)

func (h *Handler) randomText(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.practice.RandomText(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, snippet, http.StatusOK)
}

func (h *Handler) recordSession(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	var in service.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.practice.RecordSession(r.Context(), user.ID, in); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, "Session recorded successfully", http.StatusCreated)
}

func (h *Handler) dailyStats(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	stats, err := h.practice.DailyStats(r.Context(), user.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, stats, http.StatusOK)
}

func (h *Handler) allTimeStats(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	stats, err := h.practice.AllTimeStats(r.Context(), user.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, stats, http.StatusOK)
}

func (h *Handler) streak(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	streak, err := h.practice.Streak(r.Context(), user.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]int{"current_streak": streak}, http.StatusOK)
}

func (h *Handler) userRank(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	rank, err := h.practice.Rank(r.Context(), user.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, rank, http.StatusOK)
}

func (h *Handler) graph(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	history, err := h.practice.Graph(r.Context(), user.ID)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, history, http.StatusOK)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort_by")
	if sortBy == "" {
		sortBy = "top_speed"
	}

	entries, err := h.practice.Leaderboard(r.Context(), sortBy)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, entries, http.StatusOK)
}
