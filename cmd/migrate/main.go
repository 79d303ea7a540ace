package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"recruit_backend/internal/config"
	"recruit_backend/internal/database"
	"recruit_backend/internal/logger"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: migrate [up|down|status|version|redo|reset] [args...]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	command := "up"
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB", "error", err)
	}

	if err := database.Migrate(context.Background(), sqlDB, cfg.Database.Driver, command, args...); err != nil {
		logger.Fatal("Migration failed", "command", command, "error", err)
	}
	logger.Info("Migration finished", "command", command, "driver", cfg.Database.Driver)
}
