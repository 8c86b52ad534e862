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

	"github.com/propdesk/propdesk/internal/api"
	"github.com/propdesk/propdesk/internal/api/admin"
	"github.com/propdesk/propdesk/internal/api/companies"
	"github.com/propdesk/propdesk/internal/api/leases"
	"github.com/propdesk/propdesk/internal/api/maintenance"
	"github.com/propdesk/propdesk/internal/api/payments"
	"github.com/propdesk/propdesk/internal/api/projects"
	"github.com/propdesk/propdesk/internal/api/properties"
	"github.com/propdesk/propdesk/internal/api/reports"
	"github.com/propdesk/propdesk/internal/api/tenants"
	"github.com/propdesk/propdesk/internal/api/units"
	"github.com/propdesk/propdesk/internal/config"
	"github.com/propdesk/propdesk/internal/database"
	"github.com/propdesk/propdesk/internal/entity"
	"github.com/propdesk/propdesk/internal/seed"
	"github.com/propdesk/propdesk/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := seed.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	s := store.New(db)
	e := entity.New(s.Records)

	defaultCompanyID, err := store.CompanyIDByName(ctx, db, cfg.DefaultCompanyName)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()

	// Entity API routes
	companies.RegisterRoutes(mux, e)
	properties.RegisterRoutes(mux, e)
	units.RegisterRoutes(mux, e)
	tenants.RegisterRoutes(mux, e)
	leases.RegisterRoutes(mux, e)
	maintenance.RegisterRoutes(mux, e)
	payments.RegisterRoutes(mux, e)
	projects.RegisterRoutes(mux, e)

	// Reports and exports
	reports.RegisterRoutes(mux, s, defaultCompanyID)

	// Admin API
	admin.RegisterRoutes(mux, s.DB)

	// Metrics
	mux.Handle("GET /metrics", api.MetricsHandler())

	// Catch-all: unknown routes get the standard error envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusNotFound, api.NewNotFoundError(
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			corrID,
		))
	})

	handler := api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Metrics(),
		api.Logging(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting propdesk server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
