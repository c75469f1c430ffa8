package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/RudraNarayan94/MOK/internal/config"
	"github.com/RudraNarayan94/MOK/internal/mailer"
	"github.com/RudraNarayan94/MOK/internal/repository"
	"github.com/RudraNarayan94/MOK/internal/seed"
	"github.com/RudraNarayan94/MOK/internal/service"
	"github.com/RudraNarayan94/MOK/internal/storage/cache"
	"github.com/RudraNarayan94/MOK/internal/storage/db"
	"github.com/RudraNarayan94/MOK/internal/token"
	httpapi "github.com/RudraNarayan94/MOK/internal/transport/http"
	"github.com/RudraNarayan94/MOK/internal/worker"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	redisCache, err := cache.New(cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed init cache", zap.Error(err))
	}
	defer redisCache.Close()

	repos := repository.NewRepository(database)

	pool := worker.NewPool(cfg.Worker.Workers, cfg.Worker.QueueSize, logger)

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	resets := token.NewResetTokens(cfg.Auth.ResetSecret, cfg.Auth.ResetTTL)
	smtp := mailer.NewSMTP(cfg.SMTP)

	services := service.InitServices(repos, redisCache, pool, smtp, tokens, resets, service.AuthOptions{
		ResetLinkBase: cfg.App.ResetLinkBase,
		VerifyEmailMX: cfg.Auth.VerifyEmailMX,
	}, logger)

	seedSnippets(repos, cfg.App.SnippetsCSV, pool, logger)

	handler := httpapi.NewHandler(services.AuthS, services.PracticeS, services.RoomsS, logger)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		logger.Error("worker pool shutdown failed", zap.Error(err))
	}
}

// seedSnippets ingests the practice paragraphs in the background, the
// same way stats recomputes run; a saturated queue falls back inline.
func seedSnippets(repos repository.Repository, path string, pool *worker.Pool, logger *zap.Logger) {
	job := func(ctx context.Context) error {
		return seed.SnippetsFromFile(ctx, repos.SnippetsR, path, logger)
	}

	if err := pool.Submit(job); err != nil {
		logger.Warn("seed queue unavailable, ingesting inline", zap.Error(err))
		if err := job(context.Background()); err != nil {
			logger.Error("failed to seed text snippets", zap.Error(err))
		}
	}
}
