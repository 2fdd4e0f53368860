// Command token mints a bearer token for local development.
//
//	go run ./cmd/token -sub alice -role MANAGER
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"dealership/cmd"
	"dealership/internal/pkg/auth"
	"dealership/internal/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	log := logger.New(logger.Options{ServiceName: "token", Format: logger.FormatConsole, Output: os.Stderr})

	_ = godotenv.Load()

	subject := flag.String("sub", "dev", "token subject")
	rawRole := flag.String("role", string(auth.RoleManager), "MANAGER or STAFF")
	flag.Parse()

	role, err := auth.ParseRole(*rawRole)
	if err != nil {
		log.Error(ctx, "invalid role", err)
		os.Exit(1)
	}

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	token, err := auth.Mint(auth.Config{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer, TTL: cfg.JWT.TTL},
		time.Now(), *subject, role)
	if err != nil {
		log.Error(ctx, "failed to mint token", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
