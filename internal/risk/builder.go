package risk

import (
	"github.com/shopspring/decimal"

	"risk-measures/internal/enums"
)

// CurrencyMeasure is a template specialised by currency.
type CurrencyMeasure struct {
	Measure
}

// NewCurrencyMeasure builds a currency-parameter template from def.
func NewCurrencyMeasure(def Definition) CurrencyMeasure {
	return CurrencyMeasure{Measure: NewMeasure(def)}
}

// WithCurrency returns a new descriptor carrying CurrencyParameter{currency}.
// The receiver is not modified.
func (m CurrencyMeasure) WithCurrency(currency string) CurrencyMeasure {
	return CurrencyMeasure{Measure: m.derive(m.name, NewCurrencyParameter(currency))}
}

// Shape reports the currency builder.
func (m CurrencyMeasure) Shape() Shape { return ShapeCurrency }

// String renders the key followed by any attached parameters.
func (m CurrencyMeasure) String() string { return Render(m.Key(), m.parameters) }

// FiniteDifferenceOptions are the inputs of FiniteDifferenceMeasure.With. Zero
// values and nil pointers mean the field is not supplied.
type FiniteDifferenceOptions struct {
	Currency          string
	AggregationLevel  enums.AggregationLevel
	LocalCurve        *bool
	Method            enums.FiniteDifferenceMethod
	MarketMarkingMode string
	BumpSize          decimal.NullDecimal
	ScaleFactor       decimal.NullDecimal
	// Name overrides the name of the returned descriptor when non-empty.
	Name string
}

// FiniteDifferenceMeasure is a template specialised by finite-difference settings.
type FiniteDifferenceMeasure struct {
	Measure
}

// NewFiniteDifferenceMeasure builds a finite-difference template from def.
func NewFiniteDifferenceMeasure(def Definition) FiniteDifferenceMeasure {
	return FiniteDifferenceMeasure{Measure: NewMeasure(def)}
}

// With returns a new descriptor carrying a FiniteDifferenceParameter built from
// opts, replacing any parameters the receiver had. The receiver is not modified.
func (m FiniteDifferenceMeasure) With(opts FiniteDifferenceOptions) FiniteDifferenceMeasure {
	name := m.name
	if opts.Name != "" {
		name = opts.Name
	}
	return FiniteDifferenceMeasure{Measure: m.derive(name, NewFiniteDifferenceParameter(opts))}
}

// Shape reports the finite-difference builder.
func (m FiniteDifferenceMeasure) Shape() Shape { return ShapeFiniteDifference }

// String renders the key followed by any attached parameters.
func (m FiniteDifferenceMeasure) String() string { return Render(m.Key(), m.parameters) }

// Bool returns a pointer to v, for FiniteDifferenceOptions.LocalCurve.
func Bool(v bool) *bool { return &v }

// Number wraps v as a set optional decimal.
func Number(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

var (
	_ Descriptor = CurrencyMeasure{}
	_ Descriptor = FiniteDifferenceMeasure{}
)
