package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"inspovault/internal/config"
	"inspovault/internal/jobs"
	"inspovault/internal/logging"
	"inspovault/internal/metrics"
	"inspovault/internal/notify"
	"inspovault/internal/server"
	"inspovault/internal/store"
	"inspovault/internal/vault"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		slog.Error("failed to load config file", "path", cfg.ConfigFile, "error", err)
		os.Exit(1)
	}

	// Initialize store
	s := store.New()
	if cfg.SeedData {
		if err := s.Seed(store.DefaultSeed()); err != nil {
			slog.Error("failed to seed sample data", "error", err)
			os.Exit(1)
		}
	}
	if err := s.Seed(yamlCfg.SeedData()); err != nil {
		slog.Error("failed to seed records from config file", "error", err)
		os.Exit(1)
	}
	st := s.Stats()
	slog.Info("store ready", "items", st.Items, "collections", st.Collections, "shared_items", st.SharedItems)

	notifier := notify.NewCenter(cfg.NotificationTTL)
	defer notifier.Close()

	metrics.Init(s)

	svc := vault.New(s, notifier, yamlCfg.CalendarCatalog())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background link checker
	if cfg.LinkCheckInterval > 0 {
		go jobs.NewLinkChecker(s, cfg.LinkCheckInterval).Start(ctx)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(svc)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}
