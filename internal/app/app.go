package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"risk-measures/internal/config"
	"risk-measures/internal/pricing"
	"risk-measures/internal/risk"
	"risk-measures/internal/storage"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Registry *risk.Registry
	Out      io.Writer
}

// NewApp constructs a new application handle and installs the configured
// pricing context as the process default.
func NewApp(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	env, err := cfg.PricingContext()
	if err != nil {
		return nil, fmt.Errorf("build pricing context: %w", err)
	}
	pricing.SetDefault(env)

	a := &App{
		Config:   cfg,
		Logger:   logger.With().Str("component", "app").Logger(),
		Registry: risk.Catalog,
		Out:      os.Stdout,
	}
	a.Logger.Debug().Str("context", env.String()).Int("measures", a.Registry.Len()).Msg("application initialised")
	return a, nil
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, nil
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStore(pool)
	closer := func() {
		store.Close()
	}
	return store, closer, nil
}

// ListOptions filter the list command.
type ListOptions struct {
	AssetClass string
	Shape      string
}

// DescribeOptions select and specialise one catalog measure.
type DescribeOptions struct {
	Name              string
	Currency          string
	AggregationLevel  string
	LocalCurve        *bool
	Method            string
	MarketMarkingMode string
	BumpSize          decimal.NullDecimal
	ScaleFactor       decimal.NullDecimal
	Rename            string
	// Market overrides the ambient market kind for this call.
	Market string
}

// ExportOptions hold output paths for catalog export.
type ExportOptions struct {
	CSVPath  string
	PNGPath  string
	YAMLPath string
}

// PublishOptions configure catalog publication.
type PublishOptions struct {
	DryRun bool
	Prune  bool
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Limit int
}
