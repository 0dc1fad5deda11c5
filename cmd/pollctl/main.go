package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/pollkeeper/database"
	"github.com/dtroode/pollkeeper/internal/admin"
	"github.com/dtroode/pollkeeper/internal/config"
	"github.com/dtroode/pollkeeper/internal/logger"
	"github.com/dtroode/pollkeeper/internal/model"
	"github.com/dtroode/pollkeeper/internal/repository/postgres"
	storage "github.com/dtroode/pollkeeper/internal/storage/minio"
)

func main() {
	cmd, err := admin.ParseCommand(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	if err := run(ctx, cmd, cfg, db, logger); err != nil {
		logger.Error("pollctl command failed", "command", cmd.Name, "error", err)
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd admin.Command, cfg *config.Config, db *postgres.Connection, logger *logger.Logger) error {
	if cmd.Name == admin.CommandInitDB {
		fmt.Println("Initialize database...")
		if err := database.Migrate(ctx, db.DB); err != nil {
			return err
		}
		fmt.Println("Database initialized!")
		return nil
	}

	var backups model.Storage
	if cmd.Backup {
		client, err := storage.NewFromConfig(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize backup storage: %w", err)
		}
		backups = client
	}

	pollRepo := postgres.NewPollRepository(db)
	a := admin.New(pollRepo, backups, logger)

	switch cmd.Name {
	case admin.CommandClear:
		res, err := a.Clear(ctx, cmd.Backup)
		if err != nil {
			return err
		}
		if res.BackupKey != "" {
			fmt.Printf("Backup uploaded to %s/%s\n", cfg.Storage.Bucket, res.BackupKey)
		}
		fmt.Printf("Table 'polls' cleared (%d rows)\n", res.Deleted)
	case admin.CommandPopulate:
		res, err := a.Populate(ctx, cmd.Count, cmd.Seed, os.Stdout)
		if err != nil {
			return err
		}
		total, err := pollRepo.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Added %d polls, skipped %d, table 'polls' holds %d rows\n", res.Added, res.Skipped, total)
	}

	return nil
}
