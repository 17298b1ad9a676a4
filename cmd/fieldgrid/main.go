package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldgridlabs/fieldgrid/internal/auth"
	"github.com/fieldgridlabs/fieldgrid/internal/clock"
	"github.com/fieldgridlabs/fieldgrid/internal/config"
	"github.com/fieldgridlabs/fieldgrid/internal/meter"
	"github.com/fieldgridlabs/fieldgrid/internal/migration"
	"github.com/fieldgridlabs/fieldgrid/internal/observability"
	"github.com/fieldgridlabs/fieldgrid/internal/seed"
	"github.com/fieldgridlabs/fieldgrid/internal/server"
	"github.com/fieldgridlabs/fieldgrid/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldgrid",
		Short: "Utility metering field service",
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newServeCmd(), newAllCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert local-development demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the field API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run migrations and seed, then start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(); err != nil {
				return err
			}
			if err := runSeed(); err != nil {
				return err
			}
			runServe()
			return nil
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,
	)
	return runToCompletion(app, "migrate")
}

func runSeed() error {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		fx.Invoke(func(h *db.Handle) error {
			conn, err := h.Acquire(context.Background())
			if err != nil {
				return err
			}
			return seed.EnsureDemoData(conn)
		}),
	)
	return runToCompletion(app, "seed")
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		meter.Module,
		auth.Module,
		server.Module,
	)
	app.Run()
}

func runToCompletion(app *fx.App, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return app.Stop(context.Background())
}

func registerSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
