package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vitality-edu/wellness-hub/internal/api"
	"github.com/vitality-edu/wellness-hub/internal/core/ports"
	"github.com/vitality-edu/wellness-hub/internal/core/seed"
	"github.com/vitality-edu/wellness-hub/internal/core/service"
	"github.com/vitality-edu/wellness-hub/internal/infrastructure/config"
	"github.com/vitality-edu/wellness-hub/internal/infrastructure/db/redis"
	"github.com/vitality-edu/wellness-hub/internal/infrastructure/memory"
	"github.com/vitality-edu/wellness-hub/internal/infrastructure/queue"
	"github.com/vitality-edu/wellness-hub/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session record store: Redis when configured, process memory otherwise.
	var (
		redisClient  *goredis.Client
		sessionStore ports.SessionRecordStore
	)
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		redisClient = client
		sessionStore = redis.NewSessionStore(client, cfg.Session.Key, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session store: redis")
	} else {
		sessionStore = memory.NewSessionStore()
		log.Info().Msg("session store: in-memory")
	}

	// Seed data.
	identities, err := seed.Identities()
	if err != nil {
		log.Fatal().Err(err).Msg("seeding credentials failed")
	}

	// Repositories and services.
	credRepo := memory.NewCredentialRepository(identities)
	resourceRepo := memory.NewResourceRepository(seed.Resources())
	programRepo := memory.NewProgramRepository(seed.Programs())

	sessions := service.NewSessionService(credRepo, sessionStore, log)
	resources := service.NewResourceService(resourceRepo, log)
	programs := service.NewProgramService(programRepo, log)
	insights := service.NewInsightsService(
		seed.WellnessReport(),
		seed.Appointments(),
		seed.PlatformMetrics(),
		seed.Usage(),
		seed.TopResources(),
		seed.Announcements(),
		cfg.SimulateLatency,
		log,
	)

	// Restore any persisted session before serving traffic.
	sessions.Restore(ctx)

	// View-count pipeline.
	dispatcher := queue.NewDispatcher(cfg.ViewWorkers, resources, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterConfig{
		Sessions:  sessions,
		Resources: resources,
		Programs:  programs,
		Insights:  insights,
		Views:     dispatcher,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
