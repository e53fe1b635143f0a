package cli

import (
	"github.com/spf13/cobra"

	"risk-measures/internal/app"
)

var (
	publishDryRun bool
	publishPrune  bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upsert the catalog into PostgreSQL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Publish(cmd.Context(), app.PublishOptions{
			DryRun: publishDryRun,
			Prune:  publishPrune,
		})
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Build records without touching the database")
	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "Delete published measures missing from the catalog")
}
