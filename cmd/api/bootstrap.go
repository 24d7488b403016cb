package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type adminFlags struct {
	username string
	email    string
	password string
}

// backend is the storage side of a running process.
type backend struct {
	store  records.Store
	locker lock.Locker
	health map[string]handlers.Pinger
	close  func()
}

func openBackend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*backend, error) {
	b := &backend{health: map[string]handlers.Pinger{}}
	var closers []func()
	b.close = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn().Msg("using in-memory storage, data is lost on exit")
		b.store = memory.New()

	default:
		gdb, err := dbpkg.NewDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := dbpkg.Migrate(gdb); err != nil {
			_ = dbpkg.Close(gdb)
			return nil, err
		}
		closers = append(closers, func() { _ = dbpkg.Close(gdb) })

		sqlDB, err := gdb.DB()
		if err == nil {
			b.health["database"] = sqlDB.PingContext
		}
		b.store = repository.NewGormStore(gdb)
	}

	rdb, err := dbpkg.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		b.close()
		return nil, err
	}
	if rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
		b.health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		b.locker = lock.NewRedisLocker(rdb, logger)
		logger.Info().Msg("booking locks held in redis")
	} else {
		b.locker = lock.NewLocalLocker()
	}

	return b, nil
}

func runServer(admin adminFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Env, cfg.LogLevel)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open storage")
		return err
	}
	defer b.close()

	if admin.email != "" {
		if err := ensureAdmin(ctx, b.store, admin); err != nil {
			return err
		}
	}

	dispatcher := audit.NewDispatcher(audit.New(b.store), logger)
	defer dispatcher.Close()

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Logger: logger,
		Store:  b.store,
		Locker: b.locker,
		Audit:  dispatcher,
		Health: b.health,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("storage", cfg.StorageDriver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.DriverPostgres {
		return fmt.Errorf("migrate requires STORAGE_DRIVER=%s", config.DriverPostgres)
	}

	gdb, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(gdb)

	if err := dbpkg.Migrate(gdb); err != nil {
		return err
	}
	fmt.Println("Schema is up to date.")
	return nil
}

func runCreateAdmin(ctx context.Context, admin adminFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.DriverPostgres {
		return fmt.Errorf("create-admin requires STORAGE_DRIVER=%s", config.DriverPostgres)
	}

	gdb, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbpkg.Close(gdb)

	if err := ensureAdmin(ctx, repository.NewGormStore(gdb), admin); err != nil {
		return err
	}
	fmt.Printf("Admin %s is ready.\n", admin.email)
	return nil
}

// ensureAdmin creates the admin account unless the email is already
// registered.
func ensureAdmin(ctx context.Context, users records.UserRepository, admin adminFlags) error {
	email := validators.NormalizeEmail(admin.email)

	if _, err := users.FindUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, records.ErrNotFound) {
		return err
	}

	if len(admin.password) < 6 {
		return errors.New("admin password must have at least 6 characters")
	}
	hash, err := auth.HashPassword(admin.password)
	if err != nil {
		return err
	}

	return users.CreateUser(ctx, &models.User{
		Username:     admin.username,
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
	})
}
