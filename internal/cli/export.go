package cli

import (
	"github.com/spf13/cobra"

	"risk-measures/internal/app"
)

var (
	exportPNGPath  string
	exportCSVPath  string
	exportYAMLPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as CSV, YAML and/or a PNG chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ExportOptions{
			PNGPath:  exportPNGPath,
			CSVPath:  exportCSVPath,
			YAMLPath: exportYAMLPath,
		}
		return getApp().Export(cmd.Context(), opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write the asset class chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().StringVar(&exportYAMLPath, "yaml", "", "Path to write the YAML catalog")
}
