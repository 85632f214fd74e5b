package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corporation/identity-api/internal/api"
	"github.com/corporation/identity-api/internal/core/service"
	"github.com/corporation/identity-api/internal/infrastructure/config"
	mongodb "github.com/corporation/identity-api/internal/infrastructure/db/mongo"
	"github.com/corporation/identity-api/internal/infrastructure/journal"
	"github.com/corporation/identity-api/internal/infrastructure/queue"
	"github.com/corporation/identity-api/pkg/logger"
)

// @title           Identity API
// @version         1.0
// @description     User management and authentication backend with role-gated endpoints.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(rootCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	userRepo := mongodb.NewUserRepository(db, cfg.Mongo.Collection)
	if err := userRepo.EnsureIndexes(rootCtx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Background dispatcher (last-login updates) ---
	dispatcher := queue.NewDispatcher(0, log)
	dispatcher.Start(rootCtx)

	// --- Core services ---
	codec := service.NewTokenCodec(service.TokenCodecConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL(),
		RefreshTTL:    cfg.JWT.RefreshTTL(),
		Algorithm:     cfg.JWT.Algorithm,
	})
	authService := service.NewAuthService(userRepo, codec, dispatcher, log)
	userService := service.NewUserService(userRepo, log)
	journalStore := journal.NewStore(cfg.Journal.Path)

	e := api.NewRouter(api.RouterConfig{
		Log:      log,
		Codec:    codec,
		Auth:     authService,
		Resolver: authService,
		Users:    userService,
		Journal:  journalStore,
	})

	// --- HTTP server ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = e.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
