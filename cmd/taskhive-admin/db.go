package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskhive/taskhive-api/internal/bootstrap"
	"github.com/taskhive/taskhive-api/internal/devseed"
)

type migrateOptions struct {
	Timeout time.Duration
}

func parseMigrateFlags(args []string) (*migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "overall timeout for the migration run")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &migrateOptions{Timeout: *timeout}, nil
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	db, err := connectDB(cmdCtx.Logger, &cmdCtx.Config)
	if err != nil {
		return err
	}
	defer closeDB(cmdCtx.Logger, db)

	cmdCtx.Logger.Info("running database migrations")

	if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
		return fmt.Errorf("run migrations: %w", migrateErr)
	}

	cmdCtx.Logger.Info("migrations completed successfully")
	return nil
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	db, err := connectDB(cmdCtx.Logger, &cmdCtx.Config)
	if err != nil {
		return err
	}
	defer closeDB(cmdCtx.Logger, db)

	if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
		return fmt.Errorf("run migrations: %w", migrateErr)
	}

	if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
		return fmt.Errorf("seed development data: %w", seedErr)
	}

	cmdCtx.Logger.Info("development seed completed successfully")
	return nil
}
