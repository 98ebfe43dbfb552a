package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saiyeshwin/housebook-backend/internal/api"
	"github.com/saiyeshwin/housebook-backend/internal/auth"
	"github.com/saiyeshwin/housebook-backend/internal/config"
	"github.com/saiyeshwin/housebook-backend/internal/db"
	"github.com/saiyeshwin/housebook-backend/internal/events"
	kafkaevents "github.com/saiyeshwin/housebook-backend/internal/events/kafka"
	"github.com/saiyeshwin/housebook-backend/internal/logger"
	"github.com/saiyeshwin/housebook-backend/internal/metrics"
	"github.com/saiyeshwin/housebook-backend/internal/repository"
	"github.com/saiyeshwin/housebook-backend/internal/repository/memory"
	"github.com/saiyeshwin/housebook-backend/internal/repository/postgres"
	"github.com/saiyeshwin/housebook-backend/internal/services"
	"github.com/saiyeshwin/housebook-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sessionsRepo repository.Sessions
	var entriesRepo repository.Entries
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if os.Getenv("APP_MIGRATE") == "true" {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}

		repos := postgres.NewRepositories(pool)
		sessionsRepo, entriesRepo = repos.Sessions, repos.Entries
	} else {
		// storeless dev mode: everything lives in process memory
		log.Warn("DATABASE_URL not set, using in-memory stores")
		sessionsRepo, entriesRepo = memory.NewSessionStore(), memory.NewEntryStore()
	}

	wp := worker.NewPool(4)
	defer wp.Stop()

	var pub events.Publisher = events.Noop{}
	if cfg.KafkaBroker != "" {
		kp := kafkaevents.NewPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer func() { _ = kp.Close() }()
		pub = kp
	}

	resolver := auth.NewResolver(cfg.ViewerPIN, cfg.AdminPIN)
	sessionSvc := services.NewSessionService(sessionsRepo, cfg.SessionTTL)
	ledgerSvc := services.NewLedgerService(entriesRepo, pub, wp)

	// periodic reclaim of expired sessions; expiry itself is enforced on read
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := sessionSvc.Sweep(ctx)
				if err != nil {
					log.Error("session sweep", "err", err)
					continue
				}
				if n > 0 {
					metrics.SessionsSwept.Add(float64(n))
					log.Debug("session sweep", "reclaimed", n)
				}
			}
		}
	}()

	metrics.Init()
	r := api.NewRouter(cfg, resolver, sessionSvc, ledgerSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
