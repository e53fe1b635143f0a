package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"risk-measures/internal/storage"
)

// Show prints the published catalog.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot show published measures")
	}
	if closeStore != nil {
		defer closeStore()
	}

	return a.showFrom(ctx, store, opts)
}

func (a *App) showFrom(ctx context.Context, store storage.MeasureStore, opts ShowOptions) error {
	limit := opts.Limit
	if limit <= 0 {
		limit = a.Registry.Len()
	}

	records, err := store.ListMeasures(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.Out, "no published measures found")
		return nil
	}

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Symbol\tMeasure\tType\tAsset\tReplaced By\tUpdated (UTC)")

	for _, rec := range records {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.Symbol,
			rec.Rendered,
			rec.MeasureType,
			derefOrDash(rec.AssetClass),
			derefOrDash(rec.ReplacedBy),
			rec.UpdatedAt.UTC().Format(time.RFC3339),
		)
	}

	return writer.Flush()
}

func derefOrDash(v *string) string {
	if v == nil {
		return "-"
	}
	return orDash(*v)
}
