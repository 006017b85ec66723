package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"dockyard/internal/core/cache"
	"dockyard/internal/core/config"
	"dockyard/internal/core/logger"
	"dockyard/internal/core/server"
	dockadapter "dockyard/internal/features/dock/adapters"
	dockhandler "dockyard/internal/features/dock/handler"
	dockservice "dockyard/internal/features/dock/service"
	"dockyard/internal/features/dock/state"
	exporthandler "dockyard/internal/features/exports/handler"
	exportservice "dockyard/internal/features/exports/service"
	liveadapter "dockyard/internal/features/live/adapters"
	liveservice "dockyard/internal/features/live/service"
	reconadapter "dockyard/internal/features/reconciliation/adapters"
	reconhandler "dockyard/internal/features/reconciliation/handler"
	reconservice "dockyard/internal/features/reconciliation/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title Dockyard API
// @version 1.0
// @description Local API of the dock client: session, trailers, shipments, live updates, CSV exports and inventory reconciliation.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()

	// Durable storage and the state store
	redis, err := cache.NewRedisAdapter(cfg.Storage.RedisURL, "dockyard")
	if err != nil {
		l.Fatal("Failed to configure Redis", zap.Error(err))
	}
	defer redis.Close()
	if err := redis.Ping(ctx); err != nil {
		l.Warn("Redis unreachable, session will not persist until it recovers", zap.Error(err))
	}

	storage := dockadapter.NewRedisStorage(redis, cfg.Storage.ViewTTL())
	store := state.NewStore(state.Initial(), dockservice.PersistenceEffect(storage))

	api := dockadapter.NewDockAPIClient(cfg.DockAPI, cfg.Proxy.Settings())

	sessions := dockservice.NewSessionService(api, store, storage)
	if err := sessions.Restore(ctx); err != nil {
		l.Warn("Failed to restore session", zap.Error(err))
	}

	// Live channel
	dialer := liveadapter.NewWebSocketDialer()
	channel := liveservice.NewChannel(dialer, cfg.DockAPI.LiveURL, store, liveservice.NewCodec(loc))

	// Commands
	trailers := dockservice.NewTrailerService(api, store, channel, loc)
	shipments := dockservice.NewShipmentService(api, store, channel, loc)
	uploads := dockservice.NewUploadService(api, store)

	formatter := exportservice.NewFormatter(loc)
	exports := exportservice.NewExportService(trailers, store, formatter)
	reconciler := reconservice.NewReconciler(reconadapter.CSVSource{}, formatter)

	srv := server.New(cfg)
	srv.AddCheck("redis", redis.Ping)

	// Register Routes
	dockhandler.Handlers{
		Session:   dockhandler.NewSessionHandler(sessions),
		State:     dockhandler.NewStateHandler(store),
		Trailers:  dockhandler.NewTrailerHandler(trailers),
		Shipments: dockhandler.NewShipmentHandler(shipments, uploads),
	}.Register(srv.App)
	exporthandler.NewExportHandler(exports).Register(srv.App)
	reconhandler.NewReconciliationHandler(reconciler).Register(srv.App)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Run)

	g.Go(func() error {
		// A lost relay leaves the API serving with live updates off.
		if err := channel.Run(gctx); err != nil {
			l.Error("Live channel stopped", zap.String("client_id", dialer.ClientID()), zap.Error(err))
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		l.Fatal("Server failed", zap.Error(err))
	}
	l.Info("Application stopped")
}
