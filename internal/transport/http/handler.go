package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type AuthServiceI interface {
	Register(ctx context.Context, in service.RegisterInput) (models.User, models.TokenPair, error)
	Login(ctx context.Context, loginField, password string) (models.TokenPair, error)
	Refresh(refresh string) (string, error)
	UserByAccessToken(ctx context.Context, raw string) (models.User, error)
	ChangePassword(ctx context.Context, user models.User, password, password2 string) error
	SendResetEmail(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, uid, tok, password, password2 string) error
}

type PracticeServiceI interface {
	RandomText(ctx context.Context) (models.TextSnippet, error)
	RecordSession(ctx context.Context, userID int64, in service.SessionInput) error
	DailyStats(ctx context.Context, userID int64) (models.DailyStatistics, error)
	AllTimeStats(ctx context.Context, userID int64) (models.AllTimeStatistics, error)
	Streak(ctx context.Context, userID int64) (int, error)
	Rank(ctx context.Context, userID int64) (models.RankInfo, error)
	Graph(ctx context.Context, userID int64) ([]models.DailyStatistics, error)
	Leaderboard(ctx context.Context, sortBy string) ([]models.LeaderboardEntry, error)
}

type RoomsServiceI interface {
	Create(ctx context.Context, hostID int64, text string) (string, error)
	Join(ctx context.Context, userID int64, code string) error
	Text(ctx context.Context, code string) (string, error)
	SubmitResult(ctx context.Context, userID int64, code string, in service.ResultInput) error
	Leaderboard(ctx context.Context, code string) ([]models.RoomResult, error)
}

type Handler struct {
	auth     AuthServiceI
	practice PracticeServiceI
	rooms    RoomsServiceI
	log      *zap.Logger
}

func NewHandler(auth AuthServiceI, practice PracticeServiceI, rooms RoomsServiceI, log *zap.Logger) *Handler {
	return &Handler{
		auth:     auth,
		practice: practice,
		rooms:    rooms,
		log:      log,
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/token/refresh", h.refreshToken)
		r.Post("/send_reset_password_email", h.sendResetPasswordEmail)
		r.Post("/reset_password/{uid}/{token}", h.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/profile", h.profile)
			r.Post("/change_password", h.changePassword)
		})
	})

	r.Route("/api/practice", func(r chi.Router) {
		r.Get("/leaderboard", h.leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/texts", h.randomText)
			r.Post("/sessions", h.recordSession)
			r.Get("/daily_stats", h.dailyStats)
			r.Get("/all_time_stats", h.allTimeStats)
			r.Get("/streak", h.streak)
			r.Get("/user_rank", h.userRank)
			r.Get("/graph", h.graph)
		})
	})

	r.Route("/api/multiplayer", func(r chi.Router) {
		r.Get("/rooms/{code}/leaderboard", h.roomLeaderboard)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/rooms", h.createRoom)
			r.Post("/rooms/{code}/join", h.joinRoom)
			r.Get("/rooms/{code}/text", h.roomText)
			r.Post("/rooms/{code}/results", h.submitResult)
		})
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
