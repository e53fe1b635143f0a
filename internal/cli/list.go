package cli

import (
	"github.com/spf13/cobra"

	"risk-measures/internal/app"
)

var (
	listAssetClass string
	listShape      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog measures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().List(cmd.Context(), app.ListOptions{
			AssetClass: listAssetClass,
			Shape:      listShape,
		})
	},
}

func init() {
	listCmd.Flags().StringVar(&listAssetClass, "asset-class", "", "Only list measures of this asset class (Equity, Rates, FX, Credit, Commod)")
	listCmd.Flags().StringVar(&listShape, "shape", "", "Only list templates with this builder (none, currency, finite-difference)")
}
