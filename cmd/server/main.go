package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "promo-boost/internal/adapter/http"
	"promo-boost/internal/adapter/postgres"
	"promo-boost/internal/adapter/usecase"
	"promo-boost/internal/config"
	"promo-boost/internal/core/port"
	"promo-boost/internal/core/pricing"
	"promo-boost/internal/db"
	"promo-boost/internal/logger"
)

// main is the entry point of the promo-boost service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, the pricing engine and the HTTP server, and starts the
// expiry sweep. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	log, closer := logger.New(cfg.Log)
	defer closer.Close()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			log.Error("migration error", slog.Any("error", err))
			return
		}
		log.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		log.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)
	calc := pricing.NewDefaultCalculator()
	svc := usecase.NewCampaignUseCase(repo, calc, usecase.Limits{
		MaxReach:    cfg.Pricing.MaxReach,
		MaxDuration: cfg.Pricing.MaxDuration,
	})

	handler := httpadapter.NewHandler(svc, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go runExpirySweep(ctx, svc, cfg.HTTP.ExpiryInterval, log)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("pricing_policy", calc.Policy().Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		log.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", slog.Any("error", err))
	} else {
		log.Info("server gracefully stopped")
	}
}

// runExpirySweep completes campaigns whose serving window has ended until
// ctx is cancelled.
func runExpirySweep(ctx context.Context, svc port.CampaignUseCase, every time.Duration, log *slog.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CompleteExpired(ctx)
			if err != nil {
				log.Error("expiry sweep error", slog.Any("error", err))
				continue
			}
			if n > 0 {
				log.Info("campaigns completed", slog.Int64("count", n))
			}
		}
	}
}
