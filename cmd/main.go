// Package main is the usermeta CLI: serve runs the API, migrate prepares the
// database and jwt signs bearer tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"usermeta/internal/config"
	"usermeta/pkg/logger"
	"usermeta/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres opens the configured database. The returned func closes it.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ApplicationName:    "usermeta",
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

func rootCommand() *cobra.Command {
	// filled in by PersistentPreRunE before any subcommand runs
	cfg := &config.Config{}

	var configPath string
	cmd := &cobra.Command{
		Use:           "usermeta",
		Short:         "User metadata REST service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err //nolint: wrapcheck
			}
			*cfg = *loaded

			logger.Setup(cfg.Environment)
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return err //nolint: wrapcheck
			}

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "config file path")

	cmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	return cmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Sync()

			panic(p)
		}
	}()

	err := rootCommand().Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint: gocritic
	}
}
