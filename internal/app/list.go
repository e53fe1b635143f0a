package app

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"risk-measures/internal/enums"
	"risk-measures/internal/risk"
)

// List prints the catalog, optionally filtered by asset class and builder shape.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	var assetClass enums.AssetClass
	if opts.AssetClass != "" {
		parsed, err := enums.ParseAssetClass(opts.AssetClass)
		if err != nil {
			return err
		}
		assetClass = parsed
	}

	shape, err := parseShape(opts.Shape)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Symbol\tMeasure\tType\tAsset\tUnit\tBuilder\tDeprecated\tDoc")

	shown := 0
	for _, entry := range a.Registry.Entries() {
		m := entry.Measure
		if assetClass != "" && m.AssetClass() != assetClass {
			continue
		}
		if opts.Shape != "" && m.Shape() != shape {
			continue
		}
		replacement, _ := a.Registry.DeprecatedAlias(entry.Symbol)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Symbol,
			m.String(),
			m.MeasureType().Name(),
			orDash(string(m.AssetClass())),
			orDash(string(m.Unit())),
			orDash(string(m.Shape())),
			orDash(replacement),
			m.Doc(),
		)
		shown++
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	a.Logger.Debug().Int("shown", shown).Msg("listed measures")
	return nil
}

func parseShape(s string) (risk.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "plain":
		return risk.ShapeNone, nil
	case "currency":
		return risk.ShapeCurrency, nil
	case "finitedifference", "finite-difference", "fd":
		return risk.ShapeFiniteDifference, nil
	default:
		return "", fmt.Errorf("unknown builder shape %q", s)
	}
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
