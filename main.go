package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spicegate/internal/auctions"
	"spicegate/internal/backend"
	"spicegate/internal/clock"
	"spicegate/internal/config"
	"spicegate/internal/dashboard"
	"spicegate/internal/health"
	"spicegate/internal/lifecycle"
	"spicegate/internal/participants"
	"spicegate/internal/repository"
	"spicegate/internal/server"
	"spicegate/internal/telemetry"
	"spicegate/utils"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

var (
	configPath string
	demoMode   bool
)

var rootCmd = &cobra.Command{
	Use:           "spicegate",
	Short:         "Gateway for the spice marketplace admin and trading screens",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one dashboard snapshot as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshot(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "serve seeded in-memory data instead of the remote services")
	rootCmd.AddCommand(serveCmd, snapshotCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		utils.Error("fatal error", map[string]any{"error": err.Error()})
		cancel()
		os.Exit(1)
	}
}

// app holds what both commands build from the configuration
type app struct {
	cfg        *config.Config
	clock      clock.Clock
	classifier *lifecycle.Classifier
	api        backend.MarketplaceAPI
	checkers   []health.Checker
}

func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	rt := &app{
		cfg:        cfg,
		clock:      clock.Real{},
		classifier: lifecycle.NewClassifier(loc),
	}

	if demoMode {
		repo := repository.NewMemoryRepo()
		if err := prepopulateMarketplace(repo, rt.clock.Now().In(loc)); err != nil {
			return nil, fmt.Errorf("seeding demo data: %w", err)
		}
		rt.api = repo
		utils.Info("serving seeded in-memory marketplace", nil)
		return rt, nil
	}

	client, err := backend.NewClient(backend.Options{
		AccountsURL:    cfg.Backends.AccountsURL,
		MarketplaceURL: cfg.Backends.MarketplaceURL,
		Timeout:        cfg.Backends.Timeout,
		ServiceToken:   cfg.Backends.ServiceToken,
	})
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}
	rt.api = client
	rt.checkers = []health.Checker{
		{Name: "accounts", Check: func(ctx context.Context) error { return client.Ping(ctx, "accounts") }},
		{Name: "marketplace", Check: func(ctx context.Context) error { return client.Ping(ctx, "marketplace") }},
	}
	return rt, nil
}

func serve(ctx context.Context) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	cfg := rt.cfg

	tp, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		utils.Warn("telemetry setup failed, continuing without OTEL export", map[string]any{"error": err.Error()})
		tp = telemetry.NewNopProvider()
	}
	defer func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			utils.Error("telemetry shutdown error", map[string]any{"error": shutdownErr.Error()})
		}
	}()

	dashboardAgg := dashboard.NewAggregator(rt.api, rt.classifier, rt.clock)
	poller := dashboard.NewPoller(dashboardAgg, cfg.Dashboard.PollInterval)
	healthHandler := health.NewHandler(rt.clock, rt.checkers...)

	router := server.SetupRouter(server.Dependencies{
		Auctions:      auctions.NewService(rt.api, rt.classifier, rt.clock),
		Participants:  participants.NewAggregator(rt.api),
		Dashboard:     dashboardAgg,
		LiveDashboard: poller,
		Health:        healthHandler,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(router, "spicegate"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		poller.Run(gctx)
		return nil
	})

	g.Go(func() error {
		utils.Info("starting gateway", map[string]any{"addr": cfg.Addr(), "version": version})
		if listenErr := httpServer.ListenAndServe(); listenErr != nil && !errors.Is(listenErr, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", listenErr)
		}
		return nil
	})

	g.Go(func() error {
		healthHandler.SetReady(true)
		<-gctx.Done()
		utils.Info("shutting down...", nil)
		healthHandler.SetReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	utils.Info("shutdown complete", nil)
	return nil
}

func snapshot(ctx context.Context) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, rt.cfg.Backends.Timeout)
	defer cancel()

	snap, err := dashboard.NewAggregator(rt.api, rt.classifier, rt.clock).Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("building snapshot: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
