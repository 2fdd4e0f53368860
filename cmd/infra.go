package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dealership/internal/adapters/out/postgres"
	"dealership/internal/adapters/out/postgres/seed"
	"dealership/internal/jobs"
	"dealership/internal/pkg/logger"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to the configured store. PostgreSQL is migrated when
// auto-migrate is on; SQLite is an in-memory demo store that is always seeded.
func OpenDatabase(ctx context.Context, cfg DBConfig, now time.Time, log *logger.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite:
		db, err = postgres.OpenInMemory("dealership", gormCfg)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "using in-memory sqlite demo store")
	default:
		db, err = gorm.Open(postgresdriver.New(postgresdriver.Config{
			DSN:                  cfg.ConnectionString(),
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("opening db connection: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("getting sql db handle: %w", err)
		}
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}

		if cfg.AutoMigrate {
			if err := postgres.MigrateUp(ctx, db); err != nil {
				return nil, err
			}
			log.Info(ctx, "database migrations applied")
		}
		log.Info(ctx, "database connection established")
	}

	if cfg.Seed || strings.EqualFold(cfg.Driver, DriverSQLite) {
		if err := seed.Load(ctx, postgres.NewGormUnitOfWorkFactory(db), now); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		log.Info(ctx, "demo data loaded")
	}

	return db, nil
}

// OpenJobLock returns a Redis backed lock when Redis is configured and a
// no-op lock otherwise. The returned client is nil without Redis.
func OpenJobLock(ctx context.Context, cfg RedisConfig) (jobs.Lock, *redis.Client, error) {
	if !cfg.Enabled() {
		return jobs.NoopLock{}, nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	lock, err := jobs.NewRedisLock(redislock.New(client), "dealership:jobs:")
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return lock, client, nil
}
