package risk

import (
	"context"

	"risk-measures/internal/enums"
	"risk-measures/internal/pricing"
)

// RelativeMeasure is evaluated against the ambient market paired with a fixed
// target market instead of the ambient market alone.
type RelativeMeasure struct {
	Measure
	toMarket pricing.Market
}

// NewRelativeMeasure builds a relative descriptor from def targeting to.
func NewRelativeMeasure(def Definition, to pricing.Market) RelativeMeasure {
	return RelativeMeasure{Measure: NewMeasure(def), toMarket: to}
}

// ToMarket returns the fixed target market.
func (m RelativeMeasure) ToMarket() pricing.Market { return m.toMarket }

// PricingContext derives a context from the ambient one whose market is
// RelativeMarket{From: ambient market, To: ToMarket()}. The ambient context is
// not modified.
func (m RelativeMeasure) PricingContext(ctx context.Context) pricing.Context {
	current := pricing.Current(ctx)
	return current.WithMarket(pricing.RelativeMarket{From: current.Market(), To: m.toMarket})
}

// PnlExplain explains PnL between the ambient market and to.
func PnlExplain(to pricing.Market) RelativeMeasure {
	return NewRelativeMeasure(Definition{
		Name:        string(enums.MeasureTypePnlExplain),
		Doc:         "Pnl Explained",
		MeasureType: enums.MeasureTypePnlExplain,
	}, to)
}

// PnlExplainClose explains PnL against the close market.
func PnlExplainClose() RelativeMeasure { return PnlExplain(pricing.CloseMarket{}) }

// PnlExplainLive explains PnL against the live market.
func PnlExplainLive() RelativeMeasure { return PnlExplain(pricing.LiveMarket{}) }

// PnlPredictLive predicts PnL with the live market on the target leg.
func PnlPredictLive() RelativeMeasure {
	return NewRelativeMeasure(Definition{
		Name:        string(enums.MeasureTypePnlPredict),
		Doc:         "Pnl Predicted",
		MeasureType: enums.MeasureTypePnlPredict,
	}, pricing.LiveMarket{})
}

var _ Descriptor = RelativeMeasure{}
