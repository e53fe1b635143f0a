package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"risk-measures/internal/enums"
	"risk-measures/internal/pricing"
	"risk-measures/internal/risk"
)

// Describe resolves a catalog name, specialises it with the supplied
// parameters and prints the resulting request.
func (a *App) Describe(ctx context.Context, opts DescribeOptions) (risk.Request, error) {
	if opts.Name == "" {
		return risk.Request{}, errors.New("measure name is required")
	}

	res, err := a.Registry.Resolve(opts.Name)
	if err != nil {
		return risk.Request{}, err
	}
	if res.Deprecated() {
		a.Logger.Warn().Str("measure", opts.Name).Str("replacement", res.Replacement).Msg("measure name is deprecated")
	}

	measure, err := specialise(res.Measure, opts)
	if err != nil {
		return risk.Request{}, fmt.Errorf("specialise %s: %w", res.Symbol, err)
	}

	if opts.Market != "" {
		ctx, err = a.withMarket(ctx, opts.Market)
		if err != nil {
			return risk.Request{}, err
		}
	}

	req := risk.NewRequest(ctx, measure)
	a.Logger.Info().Str("request_id", req.ID.String()).Str("measure", measure.String()).Msg("request built")

	writer := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Measure:\t%s\n", measure)
	fmt.Fprintf(writer, "Symbol:\t%s\n", res.Symbol)
	fmt.Fprintf(writer, "Type:\t%s\n", measure.MeasureType().Name())
	fmt.Fprintf(writer, "Asset class:\t%s\n", orDash(string(measure.AssetClass())))
	fmt.Fprintf(writer, "Unit:\t%s\n", orDash(string(measure.Unit())))
	fmt.Fprintf(writer, "Doc:\t%s\n", measure.Doc())
	for _, f := range risk.SortedFields(measure.Parameters()) {
		fmt.Fprintf(writer, "  %s:\t%s\n", f.Key, f.Value)
	}
	fmt.Fprintf(writer, "Request:\t%s\n", req.ID)
	fmt.Fprintf(writer, "Market:\t%s\n", req.Context.Market())
	if res.Deprecated() {
		fmt.Fprintf(writer, "Deprecated:\tuse %s\n", res.Replacement)
	}
	if err := writer.Flush(); err != nil {
		return risk.Request{}, err
	}
	return req, nil
}

func (a *App) withMarket(ctx context.Context, kind string) (context.Context, error) {
	parsed, err := pricing.ParseMarketKind(kind)
	if err != nil {
		return nil, err
	}
	market, err := pricing.NewMarket(parsed, a.Config.Pricing.Location, a.Config.Pricing.PricingDate)
	if err != nil {
		return nil, err
	}
	return pricing.WithContext(ctx, pricing.Current(ctx).WithMarket(market)), nil
}

func specialise(d risk.Descriptor, opts DescribeOptions) (risk.Descriptor, error) {
	switch m := d.(type) {
	case risk.CurrencyMeasure:
		if hasFiniteDifferenceOptions(opts) {
			return nil, errors.New("only --currency applies to this measure")
		}
		if opts.Currency == "" {
			return m, nil
		}
		return m.WithCurrency(opts.Currency), nil
	case risk.FiniteDifferenceMeasure:
		if opts.Currency == "" && !hasFiniteDifferenceOptions(opts) {
			return m, nil
		}
		fd, err := finiteDifferenceOptions(opts)
		if err != nil {
			return nil, err
		}
		return m.With(fd), nil
	default:
		if opts.Currency != "" || hasFiniteDifferenceOptions(opts) {
			return nil, errors.New("measure takes no parameters")
		}
		return d, nil
	}
}

func hasFiniteDifferenceOptions(opts DescribeOptions) bool {
	return opts.AggregationLevel != "" ||
		opts.LocalCurve != nil ||
		opts.Method != "" ||
		opts.MarketMarkingMode != "" ||
		opts.BumpSize.Valid ||
		opts.ScaleFactor.Valid ||
		opts.Rename != ""
}

func finiteDifferenceOptions(opts DescribeOptions) (risk.FiniteDifferenceOptions, error) {
	fd := risk.FiniteDifferenceOptions{
		Currency:          opts.Currency,
		LocalCurve:        opts.LocalCurve,
		MarketMarkingMode: opts.MarketMarkingMode,
		BumpSize:          opts.BumpSize,
		ScaleFactor:       opts.ScaleFactor,
		Name:              opts.Rename,
	}
	if opts.AggregationLevel != "" {
		level, err := enums.ParseAggregationLevel(opts.AggregationLevel)
		if err != nil {
			return fd, err
		}
		fd.AggregationLevel = level
	}
	if opts.Method != "" {
		method, err := enums.ParseFiniteDifferenceMethod(opts.Method)
		if err != nil {
			return fd, err
		}
		fd.Method = method
	}
	return fd, nil
}
