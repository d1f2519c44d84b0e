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

	"github.com/tejaswadiwala/torcc/internal/client/shopify"
	"github.com/tejaswadiwala/torcc/internal/config"
	xredis "github.com/tejaswadiwala/torcc/internal/redis"
	"github.com/tejaswadiwala/torcc/internal/server/handler"
	"github.com/tejaswadiwala/torcc/internal/service/counter"
	"github.com/tejaswadiwala/torcc/internal/service/webhook"
	"github.com/tejaswadiwala/torcc/internal/storage"
	"github.com/tejaswadiwala/torcc/internal/xhttp/middleware"
	"github.com/tejaswadiwala/torcc/internal/xslog"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	keyPort = "port"

	shopifyTimeout  = 10 * time.Second
	shutdownTimeout = 30 * time.Second
)

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Shopify.AccessToken})
	shopifyClient := shopify.New(cfg.Shopify.ShopName, cfg.Shopify.APIVersion, tokenSource,
		shopify.WithLogger(logger),
		shopify.WithTimeout(shopifyTimeout),
	)

	counterService := counter.NewAggregator(shopifyClient.Metaobjects, cfg.Shopify.MetaobjectID, cfg.Shopify.SalesFieldKey)

	var opts []webhook.ProcessorOption
	if cfg.Redis.Enabled() {
		dedup, err := initDedupStore(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize dedup store: %w", err)
		}
		defer func() {
			if err := dedup.Close(); err != nil {
				logger.ErrorContext(ctx, "failed to close dedup store", xslog.Error(err))
			}
		}()
		opts = append(opts, webhook.WithDedupStore(dedup))
	}

	webhookService := webhook.NewProcessor(cfg.Shopify.WebhookSecret, counterService, opts...)
	webhookHandler := handler.NewWebhook(webhookService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /webhooks/shopify", webhookHandler.HandleWebhook)
	mux.HandleFunc("GET /health", handler.HandleHealth)

	wrapped := middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Logging,
		middleware.SecurityHeaders,
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting server",
			xslog.Version(),
			slog.String(keyPort, cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func initDedupStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage.DedupStore, error) {
	logger.InfoContext(ctx, "initializing Redis dedup store")

	redisClient, err := xredis.New(ctx, xredis.Config{URL: cfg.Redis.URL})
	if err != nil {
		return nil, err
	}

	return storage.NewRedisDedupStore(storage.RedisConfig{Client: redisClient}, storage.DefaultDedupTTL), nil
}
