// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/Matchday/internal/api/auth"
	"github.com/codr1/Matchday/internal/api/matches"
	"github.com/codr1/Matchday/internal/api/officials"
	"github.com/codr1/Matchday/internal/api/reports"
	"github.com/codr1/Matchday/internal/api/teams"
	"github.com/codr1/Matchday/internal/cache"
	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/ratelimit"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// newCacheStore picks the configured cache backend. The returned closer is
// never nil.
func newCacheStore(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (cache.Store, func() error, error) {
	switch cfg.Cache.Driver {
	case "redis":
		store, err := cache.NewRedis(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return cache.NewMemory(clock), func() error { return nil }, nil
	}
}

func main() {
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	shutdownTimeout := time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config_path", configPath).Msg("Failed to load configuration")
	}

	setupLogger(cfg)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	clock := clockwork.NewRealClock()

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newCacheStore(ctx, cfg, clock)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Cache.Driver).Msg("Failed to connect cache")
	}
	defer closeStore()

	limiter := ratelimit.New(&ratelimit.Config{
		MaxAttempts:  cfg.RateLimit.LoginMaxAttempts,
		Lockout:      cfg.RateLimit.LoginLockout,
		MaxIPPerHour: cfg.RateLimit.LoginMaxIPHourly,
		Clock:        clock,
	})
	defer limiter.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clock)

	auth.InitHandlers(database.Queries, tokens, limiter, cfg.RateLimit.TrustProxy)
	teams.InitHandlers(database.Queries, store, cfg.Cache.TTL)
	officials.InitHandlers(database.Queries, store, cfg.Cache.TTL)
	matches.InitHandlers(database, leagues.NewLedger(database))
	reports.InitHandlers(database.Queries, clock)

	server := newServer(cfg, tokens)

	g, ctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		log.Info().
			Int("port", cfg.App.Port).
			Str("environment", cfg.App.Environment).
			Str("cache", cfg.Cache.Driver).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
