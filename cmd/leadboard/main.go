package main

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/project-solar/leadboard/internal/app"
	"github.com/project-solar/leadboard/internal/leads"
	leadhttp "github.com/project-solar/leadboard/internal/leads/http"
	"github.com/project-solar/leadboard/internal/leads/svg"
	"github.com/project-solar/leadboard/internal/observability"
	"github.com/project-solar/leadboard/internal/view"
)

type barRenderer struct{}

func (barRenderer) Bars(width, height int, series []float64, labels []string, opts svg.BarOpts) (template.HTML, error) {
	return svg.Bars(width, height, series, labels, opts)
}

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	var metrics *observability.Metrics
	var opts []leads.Option
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		opts = append(opts, leads.WithObserver(func(s leads.Status) {
			metrics.ObserveSnapshot(string(s))
		}))
	}

	client := leads.NewClient(cfg.LeadsSourceURL, &http.Client{Timeout: cfg.LeadsSourceTimeout})
	dashboard := leads.NewDashboard(client, logger, opts...)
	logger.Info("mounting dashboard", slog.String("dashboard", dashboard.ID()), slog.String("source", cfg.LeadsSourceURL))
	// The single fetch is not cancelled on shutdown; Unmount drops its result.
	dashboard.Mount(context.WithoutCancel(ctx))
	defer dashboard.Unmount()

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		LeadsHandler: leadhttp.NewHandler(logger, dashboard, templates, barRenderer{}),
		Readiness:    dashboard,
		Metrics:      metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}
