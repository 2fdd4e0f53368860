// Package pgtest starts a throwaway PostgreSQL container with the schema
// migrated, for repository integration tests.
package pgtest

import (
	"context"
	"time"

	pgadapter "dealership/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Tables lists every application table, children first, for TRUNCATE.
const Tables = "deliveries, customer_orders, vehicle_units, manufacturer_orders, vouchers, car_models"

// Start runs postgres:15-alpine, applies the goose migrations and returns an
// open gorm connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	if err := pgadapter.MigrateUp(ctx, db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every application table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}
