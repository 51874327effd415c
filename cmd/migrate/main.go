package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/migrations"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.OpenSQL(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := database.Migrate(ctx, db, migrations.FS)
	if err != nil {
		logger.Log.Error("Migration failed", "error", err, "applied", applied)
		db.Close()
		os.Exit(1)
	}
	logger.Log.Info("Migrations complete", "applied", len(applied))
}
