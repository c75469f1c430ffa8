package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/RudraNarayan94/MOK/internal/models"
)

type contextKey string

const userKey contextKey = "user"

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			respondError(w, "authentication credentials were not provided", http.StatusUnauthorized)
			return
		}

		user, err := h.auth.UserByAccessToken(r.Context(), raw)
		if err != nil {
			h.serviceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
