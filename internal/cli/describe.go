package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"risk-measures/internal/app"
)

var (
	describeCurrency    string
	describeAggregation string
	describeLocalCurve  bool
	describeMethod      string
	describeMarking     string
	describeBumpSize    string
	describeScaleFactor string
	describeRename      string
	describeMarket      string
)

var describeCmd = &cobra.Command{
	Use:   "describe NAME",
	Short: "Resolve a measure, apply parameters and print the pricing request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.DescribeOptions{
			Name:              args[0],
			Currency:          describeCurrency,
			AggregationLevel:  describeAggregation,
			Method:            describeMethod,
			MarketMarkingMode: describeMarking,
			Rename:            describeRename,
			Market:            describeMarket,
		}

		if cmd.Flags().Changed("local-curve") {
			v := describeLocalCurve
			opts.LocalCurve = &v
		}

		var err error
		if opts.BumpSize, err = parseNullDecimal("bump-size", describeBumpSize); err != nil {
			return err
		}
		if opts.ScaleFactor, err = parseNullDecimal("scale-factor", describeScaleFactor); err != nil {
			return err
		}

		_, err = getApp().Describe(cmd.Context(), opts)
		return err
	},
}

func parseNullDecimal(flag, raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid --%s value: %w", flag, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func init() {
	describeCmd.Flags().StringVar(&describeCurrency, "currency", "", "Reporting currency")
	describeCmd.Flags().StringVar(&describeAggregation, "aggregation-level", "", "Aggregation level (Asset, Class, Point, Type)")
	describeCmd.Flags().BoolVar(&describeLocalCurve, "local-curve", false, "Bump the local curve")
	describeCmd.Flags().StringVar(&describeMethod, "method", "", "Finite difference method (central, forward, backward)")
	describeCmd.Flags().StringVar(&describeMarking, "marking-mode", "", "Market marking mode")
	describeCmd.Flags().StringVar(&describeBumpSize, "bump-size", "", "Bump size")
	describeCmd.Flags().StringVar(&describeScaleFactor, "scale-factor", "", "Scale factor applied to the result")
	describeCmd.Flags().StringVar(&describeRename, "rename", "", "Name for the specialised measure")
	describeCmd.Flags().StringVar(&describeMarket, "market", "", "Ambient market override (close, live)")
}
