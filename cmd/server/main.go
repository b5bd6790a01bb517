package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgsuite/admin-console/internal/api"
	"github.com/orgsuite/admin-console/internal/core/ports"
	"github.com/orgsuite/admin-console/internal/core/service"
	"github.com/orgsuite/admin-console/internal/infrastructure/db/mongo"
	"github.com/orgsuite/admin-console/internal/infrastructure/db/redis"
	"github.com/orgsuite/admin-console/internal/infrastructure/db/sqlite"
	"github.com/orgsuite/admin-console/internal/infrastructure/queue"
	"github.com/orgsuite/admin-console/internal/pkg/config"
	"github.com/orgsuite/admin-console/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Persistence tiers are optional at runtime: a tier that fails to
	// connect is skipped and the fallback chain covers for it.
	var external ports.SnapshotStore
	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Warn().Err(err).Msg("external snapshot store unavailable")
		mongoDB = nil
	} else {
		external = mongo.NewSnapshotStore(mongoDB)
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	}

	var mirror ports.SnapshotStore
	if m, err := sqlite.Open(ctx, cfg.Mirror.Path); err != nil {
		log.Warn().Err(err).Str("path", cfg.Mirror.Path).Msg("local mirror unavailable")
	} else {
		mirror = m
		defer func() { _ = m.Close() }()
	}

	var sessions ports.SessionStore
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("session storage unavailable")
		rdb = nil
	} else {
		sessions = redis.NewSessionStore(rdb)
		defer func() { _ = rdb.Close() }()
	}

	persister := queue.NewPersister(external, mirror, log)
	persister.Start(ctx)

	store := service.NewStore(persister, log)
	boot := service.NewBootstrapper(store, external, mirror, persister, log)
	boot.Initialize(ctx)

	authService := service.NewAuthService(store, sessions, cfg.JWTSecret, cfg.TokenTTL, log)

	e := api.NewRouter(api.Deps{
		JWTSecret:     cfg.JWTSecret,
		Auth:          authService,
		Users:         service.NewUserService(store, log),
		Organizations: service.NewOrganizationService(store, log),
		Orders:        service.NewOrderService(store, log),
		Mongo:         mongoDB,
		Redis:         rdb,
		Ready:         boot.Ready(),
		Log:           log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("admin console listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
