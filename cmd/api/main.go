package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Steve0012345/Snoonu-App/internal/config"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/export"
	snoonuHttp "github.com/Steve0012345/Snoonu-App/internal/http"
	activityHandler "github.com/Steve0012345/Snoonu-App/internal/http/activity"
	authHandler "github.com/Steve0012345/Snoonu-App/internal/http/auth"
	householdHandler "github.com/Steve0012345/Snoonu-App/internal/http/household"
	planHandler "github.com/Steve0012345/Snoonu-App/internal/http/plan"
	walletHandler "github.com/Steve0012345/Snoonu-App/internal/http/wallet"
	"github.com/Steve0012345/Snoonu-App/internal/metrics"
	"github.com/Steve0012345/Snoonu-App/internal/scenario"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	eng := engine.New(engine.Params{
		HouseholdName:    cfg.Plan.HouseholdName,
		MonthlyBudgetQAR: cfg.Plan.MonthlyBudgetQAR * 100,
		WalletBalanceQAR: cfg.Plan.WalletBalanceQAR * 100,
		Metrics:          metrics.New(prometheus.DefaultRegisterer),
	})

	registerGauges(eng)

	if cfg.Plan.Scenario != "" {
		doc, err := scenario.Load(cfg.Plan.Scenario)
		if err != nil {
			slog.Error("failed to load scenario", "path", cfg.Plan.Scenario, "error", err)
			os.Exit(1)
		}

		if err := doc.Apply(context.Background(), eng, eng.VirtualNow()); err != nil {
			slog.Error("failed to apply scenario", "name", doc.Name, "error", err)
			os.Exit(1)
		}

		slog.Info("scenario loaded", "name", doc.Name)
	}

	var (
		exportService = export.NewService(eng)

		authH      = authHandler.NewHandler(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, eng)
		activityH  = activityHandler.NewHandler(eng, authH)
		walletH    = walletHandler.NewHandler(eng, exportService)
		planH      = planHandler.NewHandler(eng)
		householdH = householdHandler.NewHandler(eng)
	)

	router := snoonuHttp.New(cfg.HTTP.AllowedOrigins, authH, activityH, walletH, planH, householdH)

	// The external driver: one tick per interval, serialized by the
	// engine. Tick is a no-op while the plan is inactive.
	go func() {
		ticker := time.NewTicker(cfg.Plan.TickInterval)
		defer ticker.Stop()

		for range ticker.C {
			if err := eng.Tick(context.Background(), cfg.Plan.TickInterval); err != nil {
				slog.Error("tick failed", "error", err)
			}
		}
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func registerGauges(eng *engine.Engine) {
	metrics.RegisterWalletGauges(prometheus.DefaultRegisterer,
		func() float64 {
			balance, err := eng.Balance(context.Background())
			if err != nil {
				return 0
			}

			return float64(balance) / 100
		},
		func() float64 {
			allocated, err := eng.TotalAllocated(context.Background())
			if err != nil {
				return 0
			}

			return float64(allocated) / 100
		},
	)
}
