package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/internal/server"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply pending migrations and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		cfg.Warn(log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := database.Init(ctx, cfg, log); err != nil {
			return err
		}

		app := server.New(cfg, log)
		errc := make(chan error, 1)
		go func() {
			log.Info("server listening", "port", cfg.HTTPPort)
			errc <- app.Listen(":" + cfg.HTTPPort)
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}
