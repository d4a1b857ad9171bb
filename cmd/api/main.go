package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/marqueehq/marquee/internal/api"
	"github.com/marqueehq/marquee/internal/config"
	"github.com/marqueehq/marquee/internal/db"
	"github.com/marqueehq/marquee/internal/logger"
	"github.com/marqueehq/marquee/internal/metrics"
	"github.com/marqueehq/marquee/internal/repository"
	"github.com/marqueehq/marquee/internal/repository/postgres"
	"github.com/marqueehq/marquee/internal/repository/sqlite"
	"github.com/marqueehq/marquee/internal/services"
	"github.com/marqueehq/marquee/internal/worker"
)

func main() {
	cfg, err := config.Load(os.Getenv("MARQUEE_CONFIG"))
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repos repository.Repositories
	var closeStore func()
	switch cfg.DBDriver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			pool.Close()
			os.Exit(1)
		}
		repos = postgres.NewRepositories(pool)
		closeStore = pool.Close
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Error("create data dir", "err", err)
				os.Exit(1)
			}
		}
		sdb, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Error("open sqlite", "err", err)
			os.Exit(1)
		}
		repos = sqlite.NewRepositories(sdb)
		closeStore = func() { _ = sdb.Close() }
	}
	defer closeStore()

	wp := worker.NewPool(cfg.Workers, cfg.WorkerQueue)
	defer wp.Stop()

	movieSvc := services.NewMovieService(repos.Movies, repos.Audit, wp, log)

	metrics.Init()
	metrics.RegisterQueueDepth(wp.Depth)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(cfg, movieSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.Addr(), "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
