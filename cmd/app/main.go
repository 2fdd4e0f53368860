package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealership/api"
	"dealership/cmd"
	httpapi "dealership/internal/adapters/in/http"
	"dealership/internal/pkg/logger"
	"dealership/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

func main() {
	log := logger.New(logger.Options{ServiceName: "dealership"})

	if err := godotenv.Load(); err != nil {
		log.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	log = logger.New(logger.Options{
		ServiceName: "dealership",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "dealership stopped with error", err)
		os.Exit(1)
	}
}

func run(cfg cmd.Config, log *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = log.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": cfg.DB.Driver})

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}
	clock := func() time.Time { return time.Now().In(loc) }

	db, err := cmd.OpenDatabase(ctx, cfg.DB, clock(), log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			err = multierr.Append(err, sqlDB.Close())
		}
	}()

	lock, redisClient, err := cmd.OpenJobLock(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() { err = multierr.Append(err, redisClient.Close()) }()
	}

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	root := cmd.NewCompositionRoot(cfg, db, clock, log)

	e, err := httpapi.NewEcho(root.CreateHTTPServer(), httpapi.RouterOptions{
		Doc:         doc,
		Auth:        root.AuthConfig(),
		AuthEnabled: cfg.Auth.Enabled,
		Registry:    reg,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
		Logger:      log,
	})
	if err != nil {
		return err
	}
	if !cfg.Auth.Enabled {
		log.Warn(ctx, "authentication disabled, every request acts as MANAGER")
	}

	if cfg.Jobs.Enabled {
		jm := root.CreateJobManager(lock, metrics.NewInventoryGauges(reg), metrics.NewCronJobMetrics(reg))
		if err := jm.StartAll(); err != nil {
			return err
		}
		defer jm.StopAll()
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "port", cfg.HTTP.Port), "starting http server")
		if err := e.Start(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info(ctx, "shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
