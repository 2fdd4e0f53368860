package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"dealership/cmd"
	"dealership/internal/adapters/out/postgres"
	"dealership/internal/pkg/logger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	ctx := context.Background()
	log := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	command := flag.String("cmd", "up", "goose command: up|down|status|version|reset|redo")
	flag.Parse()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != cmd.DriverPostgres {
		fmt.Fprintln(os.Stderr, "migrations only apply to the postgres driver")
		os.Exit(1)
	}

	ctx = log.WithField(ctx, "cmd", *command)

	db, err := sql.Open("postgres", cfg.DB.ConnectionString())
	if err != nil {
		log.Error(ctx, "failed to open database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, *command, flag.Args()...); err != nil {
		log.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	log.Info(ctx, "migration complete")
}
