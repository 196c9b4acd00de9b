package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"carbon-backend/app/src/database"
	"carbon-backend/app/src/infra"
)

// Applies the readings schema to the configured database and exits. The
// server bootstraps the schema itself on startup; this command exists for
// deployments where the service account has no DDL rights.
func main() {
	cfg := infra.LoadConfig()
	logger := infra.NewLogger(os.Stdout, "migrate")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DSN()
	if dsn == "" {
		logger.Fatalf(ctx, "no database configured; set DATABASE_URL or DB_HOST/DB_NAME")
	}

	if err := database.Migrate(ctx, dsn, logger); err != nil {
		logger.Fatalf(ctx, "migrate: %v", err)
	}

	logger.Println(ctx, "schema is up to date")
}
