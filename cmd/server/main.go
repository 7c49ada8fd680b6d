package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"attestry/internal/clientinfo"
	"attestry/internal/platform/config"
	"attestry/internal/platform/health"
	"attestry/internal/platform/httpserver"
	"attestry/internal/platform/logger"
	"attestry/internal/platform/metrics"
	"attestry/internal/registry/events"
	"attestry/internal/registry/handler"
	"attestry/internal/registry/ledger"
	"attestry/internal/registry/service"
	"attestry/internal/registry/tracer"
	"attestry/internal/tokens"
	httptransport "attestry/internal/transport/http"
)

const tokenIssuer = "attestry"

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("initializing attestry",
		"addr", cfg.Addr,
		"owner", cfg.OwnerAddress.String(),
		"environment", cfg.Environment,
	)

	eventLog := events.NewLog(
		events.WithSubscriberBuffer(cfg.EventBuffer),
		events.WithLogger(log),
	)
	ldg, err := ledger.New(cfg.OwnerAddress, eventLog)
	if err != nil {
		log.Error("failed to initialize ledger", "error", err)
		os.Exit(1)
	}

	reg := metrics.New()
	svc, err := service.New(ldg, eventLog,
		service.WithMetrics(reg),
		service.WithTracer(tracer.NewOTel()),
		service.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to initialize registry service", "error", err)
		os.Exit(1)
	}

	tokenSvc := tokens.NewService(cfg.JWTSigningKey, tokenIssuer, tokenIssuer, cfg.TokenTTL)
	clients := clientinfo.NewService(cfg.ClientInfoEnabled)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("event_log", func() error {
		_ = eventLog.Len()
		return nil
	})

	h := handler.New(svc, clients, log)
	router := httptransport.NewRouter(h, healthHandler, tokenSvc, reg, log)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Mirror the audit trail into the structured log as events land.
	g.Go(func() error {
		sub, cancel := eventLog.Subscribe()
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-sub:
				if !ok {
					return nil
				}
				log.Info("registry event",
					"sequence", ev.Sequence,
					"kind", string(ev.Kind),
					"credential_id", ev.CredentialID.String(),
					"user", ev.User.String(),
					"issuer", ev.Issuer.String(),
				)
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
