package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/vasavigrand/vgbilling/internal/bill"
	billdomain "github.com/vasavigrand/vgbilling/internal/bill/domain"
	"github.com/vasavigrand/vgbilling/internal/billing"
	"github.com/vasavigrand/vgbilling/internal/clock"
	"github.com/vasavigrand/vgbilling/internal/config"
	"github.com/vasavigrand/vgbilling/internal/migration"
	"github.com/vasavigrand/vgbilling/internal/observability"
	"github.com/vasavigrand/vgbilling/internal/server"
	"github.com/vasavigrand/vgbilling/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "vgbilling",
		Short:   "Vasavi Grand billing desk",
		Version: readVersionFromEnv(),
	}
	root.AddCommand(newMigrateCmd(), newServeCmd(), newResetSequenceCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the sequence table and seed the bill counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the billing API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe()
			return nil
		},
	}
}

func newResetSequenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-sequence",
		Short: "Rewind the bill-number counter to 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetSequence()
		},
	}
}

func runMigrate() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fxZapLogger(),
		db.Module,
		migration.Module,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe() {
	app := fx.New(
		config.Module,
		observability.Module,
		fxZapLogger(),
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		clock.Module,
		billing.Module,
		bill.Module,
		server.Module,
	)
	app.Run()
}

func runResetSequence() error {
	app := fx.New(
		config.Module,
		observability.Module,
		fxZapLogger(),
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		clock.Module,
		billing.Module,
		bill.Module,
		fx.Invoke(func(svc billdomain.Service) error {
			return svc.ResetSequence(context.Background())
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func fxZapLogger() fx.Option {
	return fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	})
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
