package cli

import (
	"inventory-backend/internal/database"
	"inventory-backend/internal/seed"

	"github.com/spf13/cobra"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample suppliers, products, customers, purchases and orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		if err := database.Init(cmd.Context(), cfg, log); err != nil {
			return err
		}
		_, err = seed.Run(cmd.Context(), database.DB, seedReset, log)
		return err
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "empty every table before seeding")
}
