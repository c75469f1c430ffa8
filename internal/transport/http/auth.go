package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/RudraNarayan94/MOK/internal/service"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	_, pair, err := h.auth.Register(r.Context(), in)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]any{
		"token": pair,
		"msg":   "Registration Successful",
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LoginField string `json:"login_field"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pair, err := h.auth.Login(r.Context(), req.LoginField, req.Password)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]any{
		"token": pair,
		"msg":   "Login Successful",
	}, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Refresh == "" {
		respondError(w, "refresh token is required", http.StatusBadRequest)
		return
	}

	access, err := h.auth.Refresh(req.Refresh)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	respondJSON(w, map[string]string{"access": access}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	respondJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	var req struct {
		Password  string `json:"password"`
		Password2 string `json:"password2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), user, req.Password, req.Password2); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, "Password Changed Successfully", http.StatusOK)
}

func (h *Handler) sendResetPasswordEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.auth.SendResetEmail(r.Context(), req.Email); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, "Password reset link sent. Please check your email", http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password  string `json:"password"`
		Password2 string `json:"password2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	uid := chi.URLParam(r, "uid")
	tok := chi.URLParam(r, "token")

	if err := h.auth.ResetPassword(r.Context(), uid, tok, req.Password, req.Password2); err != nil {
		h.serviceError(w, err)
		return
	}

	respondMsg(w, "Password Reset Successfully", http.StatusOK)
}
