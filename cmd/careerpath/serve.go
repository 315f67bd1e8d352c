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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aanand-mishra/careerpath/internal/catalog"
	"github.com/aanand-mishra/careerpath/internal/config"
	"github.com/aanand-mishra/careerpath/internal/document"
	"github.com/aanand-mishra/careerpath/internal/http/router"
	"github.com/aanand-mishra/careerpath/internal/metrics"
	"github.com/aanand-mishra/careerpath/internal/session"
	"github.com/aanand-mishra/careerpath/internal/storage/sqlite"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.MustLoad(*configPath))
		},
	}
}

func serve(cfg *config.Config) error {
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting careerpath",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	storage, err := sqlite.New(cfg)
	if err != nil {
		return fmt.Errorf("initialise storage: %w", err)
	}
	defer storage.Close()

	if err := storage.Seed(catalog.Default()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	log.Info("catalog ready", slog.String("path", cfg.StoragePath))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promReg)

	registry := session.NewRegistry(cfg.Session.IdleTimeout)
	m.Attach(registry)
	registry.OnEvict(func(id string) {
		slog.Debug("session evicted", slog.String("id", id))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go registry.Run(ctx, cfg.Session.SweepInterval)

	handler := router.New(router.Deps{
		Registry:      registry,
		Storage:       storage,
		Decoder:       document.NewDecoder(cfg.Upload.ExtractDocuments),
		Metrics:       m,
		Gatherer:      promReg,
		CookieName:    cfg.Session.CookieName,
		MaxUpload:     cfg.Upload.MaxBytes,
		AllowedOrigin: cfg.HTTPServer.AllowedOrigin,
	})

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.Info("shutdown signal received, stopping server...")
	case err := <-serverErr:
		return fmt.Errorf("server encountered an error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info("server stopped gracefully", slog.Int("sessions", registry.Len()))
	return nil
}
