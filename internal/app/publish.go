package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"risk-measures/internal/risk"
	"risk-measures/internal/storage"
)

// catalogStore is what publication needs from the database layer.
type catalogStore interface {
	storage.MeasureStore
	storage.AdvisoryLocker
	EnsureSchema(ctx context.Context) error
}

// ErrPublishLocked is returned when another publisher holds the advisory lock.
var ErrPublishLocked = errors.New("another publisher holds the catalog lock")

// Publish upserts the catalog into the configured database.
func (a *App) Publish(ctx context.Context, opts PublishOptions) error {
	if opts.DryRun {
		records, err := catalogRecords(a.Registry)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "would publish %d measures\n", len(records))
		return nil
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot publish catalog")
	}
	if closeStore != nil {
		defer closeStore()
	}

	return a.publishTo(ctx, store, opts)
}

func (a *App) publishTo(ctx context.Context, store catalogStore, opts PublishOptions) error {
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	if key := a.Config.Database.AdvisoryLockKey; key != 0 {
		unlock, acquired, err := store.TryAdvisoryLock(ctx, key)
		if err != nil {
			return err
		}
		if !acquired {
			return ErrPublishLocked
		}
		defer unlock()
	}

	records, err := catalogRecords(a.Registry)
	if err != nil {
		return err
	}

	symbols := make([]string, 0, len(records))
	for _, rec := range records {
		if err := store.UpsertMeasure(ctx, rec); err != nil {
			return err
		}
		symbols = append(symbols, rec.Symbol)
	}

	var pruned int64
	if opts.Prune {
		pruned, err = store.DeleteMeasuresNotIn(ctx, symbols)
		if err != nil {
			return err
		}
	}

	total, err := store.CountMeasures(ctx)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Int("published", len(records)).
		Int64("pruned", pruned).
		Int64("total", total).
		Msg("catalog published")
	fmt.Fprintf(a.Out, "published %d measures (%d pruned, %d stored)\n", len(records), pruned, total)
	return nil
}

func catalogRecords(reg *risk.Registry) ([]storage.MeasureRecord, error) {
	entries := reg.Entries()
	records := make([]storage.MeasureRecord, 0, len(entries))
	for _, entry := range entries {
		m := entry.Measure
		document, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", entry.Symbol, err)
		}
		rec := storage.MeasureRecord{
			Symbol:      entry.Symbol,
			Name:        m.Name(),
			Doc:         m.Doc(),
			MeasureType: string(m.MeasureType()),
			AssetClass:  optional(string(m.AssetClass())),
			Unit:        optional(string(m.Unit())),
			Shape:       optional(string(m.Shape())),
			Rendered:    m.String(),
			Document:    document,
		}
		if replacement, ok := reg.DeprecatedAlias(entry.Symbol); ok {
			rec.ReplacedBy = &replacement
		}
		records = append(records, rec)
	}
	return records, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
