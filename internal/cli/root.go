// Package cli holds the command line entry points: the HTTP server, schema
// migrations and sample data.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"inventory-backend/internal/config"
	"inventory-backend/internal/logger"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "inventory",
	Short:         "Inventory and order management backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command named on the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (defaults to $CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// setup loads the configuration and builds the logger every command uses.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)
	return cfg, log, nil
}
