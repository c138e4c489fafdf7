package main

import (
	"github.com/glamsuite/salon-scheduler/internal/config"
	"github.com/glamsuite/salon-scheduler/internal/db"
	"github.com/glamsuite/salon-scheduler/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{Service: "salon-scheduler-migrate"}).
			Fatal("invalid configuration", "error", err)
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Service: "salon-scheduler-migrate",
	})

	gdb, err := db.New(cfg)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migration failed", "error", err)
	}

	log.Info("schema migrated")
}
