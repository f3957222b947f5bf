package cli

import (
	"inventory-backend/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Run database migrations",
	Long:      "Apply pending migrations (up), roll back the latest one (down) or list them (status).",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, log, err := setup()
		if err != nil {
			return err
		}
		db, err := database.Open(cfg.DatabaseDSN, 1, log)
		if err != nil {
			return err
		}
		if err := database.Migrate(cmd.Context(), db, command); err != nil {
			return err
		}
		log.Info("migrate finished", "command", command)
		return nil
	},
}
