// Command server runs the salon booking session and access-control API.
//
//	@title		Salon Booking API
//	@version	1.0
//	@BasePath	/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamslot/booking/internal/api"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/core/service"
	"github.com/glamslot/booking/internal/infrastructure/db/memory"
	mongodb "github.com/glamslot/booking/internal/infrastructure/db/mongo"
	redisdb "github.com/glamslot/booking/internal/infrastructure/db/redis"
	"github.com/glamslot/booking/internal/infrastructure/http/handlers"
	"github.com/glamslot/booking/internal/infrastructure/queue"
	"github.com/glamslot/booking/internal/pkg/config"
	"github.com/glamslot/booking/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "booking",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := wire(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise dependencies")
	}
	defer cleanup()

	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, log, queue.LogSink(log))
	dispatcher.Start(ctx)
	deps.Notifier = dispatcher

	e := api.NewRouter(cfg, deps, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("session_backend", cfg.Session.Backend).
			Str("registry_backend", cfg.Registry.Backend).
			Str("identity_provider", cfg.Identity.Provider).
			Bool("enforce_salon_role", cfg.EnforceSalonRole).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	dispatcher.Wait()
}

// wire connects the configured backends and builds the services on top of them.
func wire(ctx context.Context, cfg *config.Config, log zerolog.Logger) (api.Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	deps := api.Dependencies{Readiness: map[string]handlers.Pinger{}}

	var sessionStorage ports.SessionStorage = memory.NewSessionStorage()
	if cfg.NeedsRedis() {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		deps.Readiness["redis"] = handlers.RedisPinger(rdb)
		sessionStorage = redisdb.NewSessionStorage(rdb, cfg.Session.TTL)
	}
	deps.Sessions = service.NewSessionRegistry(sessionStorage, cfg.Session.Key, log,
		service.WithCacheTTL(cfg.Session.CacheTTL),
		service.WithRecordTTL(cfg.Session.TTL),
		service.WithStoreLimit(cfg.Session.MaxDevices, cfg.Session.DeviceIdle),
	)

	var (
		accounts       ports.AccountRepository       = memory.NewAccountRepository()
		paymentMethods ports.PaymentMethodRepository = memory.NewPaymentMethodRepository()
		favorites      ports.FavoriteRepository      = memory.NewFavoriteRepository()
	)
	if cfg.NeedsMongo() {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		})
		deps.Readiness["mongo"] = handlers.MongoPinger(db)

		accountRepo := mongodb.NewAccountRepository(db)
		paymentRepo := mongodb.NewPaymentMethodRepository(db)
		favoriteRepo := mongodb.NewFavoriteRepository(db)
		if err := mongodb.EnsureIndexes(ctx, accountRepo, paymentRepo, favoriteRepo); err != nil {
			return deps, cleanup, err
		}

		accounts = accountRepo
		if cfg.Registry.Backend == config.BackendMongo {
			paymentMethods = paymentRepo
			favorites = favoriteRepo
		}
	}

	switch cfg.Identity.Provider {
	case config.ProviderAccounts:
		deps.Provider = service.NewAccountProvider(accounts, bcrypt.DefaultCost)
	default:
		deps.Provider = service.NewMockProvider(cfg.Identity.MockLatency)
	}

	deps.PaymentMethods = service.NewPaymentMethodService(paymentMethods, log.With().Str("component", "payment_methods").Logger())
	deps.Favorites = service.NewFavoriteService(favorites, log.With().Str("component", "favorites").Logger())
	return deps, cleanup, nil
}
