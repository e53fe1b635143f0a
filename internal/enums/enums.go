// Package enums holds the enumerations risk descriptors store, compare and render.
//
// Every enumeration is a typed string whose underlying value is the form used in
// rendered parameters; Name returns the symbolic name used for display.
package enums

import (
	"fmt"
	"strings"
)

// AssetClass partitions descriptors by market domain.
type AssetClass string

const (
	AssetClassEquity AssetClass = "Equity"
	AssetClassRates  AssetClass = "Rates"
	AssetClassFX     AssetClass = "FX"
	AssetClassCredit AssetClass = "Credit"
	AssetClassCommod AssetClass = "Commod"
)

// MeasureType identifies the kind of sensitivity or value a descriptor requests.
type MeasureType string

const (
	MeasureTypeDollarPrice                   MeasureType = "Dollar Price"
	MeasureTypePV                            MeasureType = "PV"
	MeasureTypeForwardPrice                  MeasureType = "Forward Price"
	MeasureTypeBaseCPI                       MeasureType = "BaseCPI"
	MeasureTypeTheta                         MeasureType = "Theta"
	MeasureTypeDelta                         MeasureType = "Delta"
	MeasureTypeGamma                         MeasureType = "Gamma"
	MeasureTypeVega                          MeasureType = "Vega"
	MeasureTypeSpot                          MeasureType = "Spot"
	MeasureTypeAnnualImpliedVolatility       MeasureType = "Annual Implied Volatility"
	MeasureTypeAnnualATMImpliedVolatility    MeasureType = "Annual ATM Implied Volatility"
	MeasureTypeAnnualATMFImpliedVolatility   MeasureType = "Annual ATMF Implied Volatility"
	MeasureTypeDailyImpliedVolatility        MeasureType = "Daily Implied Volatility"
	MeasureTypeFairVolStrike                 MeasureType = "FairVolStrike"
	MeasureTypeFairVarStrike                 MeasureType = "FairVarStrike"
	MeasureTypeBasis                         MeasureType = "Basis"
	MeasureTypeInflationDelta                MeasureType = "InflationDelta"
	MeasureTypeParallelDiscountDelta         MeasureType = "ParallelDiscountDelta"
	MeasureTypeParallelDiscountDeltaLocalCcy MeasureType = "ParallelDiscountDeltaLocalCcy"
	MeasureTypeXccyDelta                     MeasureType = "XccyDelta"
	MeasureTypeParallelGamma                 MeasureType = "ParallelGamma"
	MeasureTypeParallelGammaLocalCcy         MeasureType = "ParallelGammaLocalCcy"
	MeasureTypeSpotRate                      MeasureType = "Spot Rate"
	MeasureTypeForwardRate                   MeasureType = "Forward Rate"
	MeasureTypeCRIFIRCurve                   MeasureType = "CRIF IRCurve"
	MeasureTypeResolvedInstrumentValues      MeasureType = "Resolved Instrument Values"
	MeasureTypeDescription                   MeasureType = "Description"
	MeasureTypeCashflows                     MeasureType = "Cashflows"
	MeasureTypeMarketDataAssets              MeasureType = "Market Data Assets"
	MeasureTypeMarketData                    MeasureType = "Market Data"
	MeasureTypeSpread                        MeasureType = "Spread"
	MeasureTypePnlExplain                    MeasureType = "PnlExplain"
	MeasureTypePnlPredict                    MeasureType = "PnlPredict"
)

// Unit is the display unit of a measure.
type Unit string

const (
	UnitPercent Unit = "Percent"
	UnitBPS     Unit = "BPS"
)

// AggregationLevel selects how bucketed sensitivities are rolled up.
type AggregationLevel string

const (
	AggregationLevelAsset AggregationLevel = "Asset"
	AggregationLevelClass AggregationLevel = "Class"
	AggregationLevelPoint AggregationLevel = "Point"
	AggregationLevelType  AggregationLevel = "Type"
)

// FiniteDifferenceMethod selects the bump scheme of a finite-difference sensitivity.
type FiniteDifferenceMethod string

const (
	FiniteDifferenceCentral  FiniteDifferenceMethod = "Central Difference"
	FiniteDifferenceForward  FiniteDifferenceMethod = "Forward Difference"
	FiniteDifferenceBackward FiniteDifferenceMethod = "Backward Difference"
)

var (
	assetClasses = []AssetClass{
		AssetClassEquity, AssetClassRates, AssetClassFX, AssetClassCredit, AssetClassCommod,
	}
	measureTypes = []MeasureType{
		MeasureTypeDollarPrice, MeasureTypePV, MeasureTypeForwardPrice, MeasureTypeBaseCPI,
		MeasureTypeTheta, MeasureTypeDelta, MeasureTypeGamma, MeasureTypeVega, MeasureTypeSpot,
		MeasureTypeAnnualImpliedVolatility, MeasureTypeAnnualATMImpliedVolatility,
		MeasureTypeAnnualATMFImpliedVolatility, MeasureTypeDailyImpliedVolatility,
		MeasureTypeFairVolStrike, MeasureTypeFairVarStrike, MeasureTypeBasis, MeasureTypeInflationDelta,
		MeasureTypeParallelDiscountDelta, MeasureTypeParallelDiscountDeltaLocalCcy, MeasureTypeXccyDelta,
		MeasureTypeParallelGamma, MeasureTypeParallelGammaLocalCcy, MeasureTypeSpotRate,
		MeasureTypeForwardRate, MeasureTypeCRIFIRCurve, MeasureTypeResolvedInstrumentValues,
		MeasureTypeDescription, MeasureTypeCashflows, MeasureTypeMarketDataAssets, MeasureTypeMarketData,
		MeasureTypeSpread, MeasureTypePnlExplain, MeasureTypePnlPredict,
	}
	units             = []Unit{UnitPercent, UnitBPS}
	aggregationLevels = []AggregationLevel{
		AggregationLevelAsset, AggregationLevelClass, AggregationLevelPoint, AggregationLevelType,
	}
	finiteDifferenceMethods = []FiniteDifferenceMethod{
		FiniteDifferenceCentral, FiniteDifferenceForward, FiniteDifferenceBackward,
	}
)

// Name returns the symbolic name of the asset class.
func (a AssetClass) Name() string { return symbolic(string(a)) }

// Name returns the symbolic name of the measure type, e.g. Dollar_Price.
func (m MeasureType) Name() string { return symbolic(string(m)) }

// Name returns the symbolic name of the unit.
func (u Unit) Name() string { return symbolic(string(u)) }

// Name returns the symbolic name of the aggregation level.
func (a AggregationLevel) Name() string { return symbolic(string(a)) }

// Name returns the symbolic name of the method, e.g. Central_Difference.
func (f FiniteDifferenceMethod) Name() string { return symbolic(string(f)) }

// AssetClasses lists every known asset class.
func AssetClasses() []AssetClass { return append([]AssetClass(nil), assetClasses...) }

// MeasureTypes lists every known measure type.
func MeasureTypes() []MeasureType { return append([]MeasureType(nil), measureTypes...) }

// ParseAssetClass accepts either the value or the symbolic name, case-insensitively.
func ParseAssetClass(s string) (AssetClass, error) {
	return parse(s, "asset class", assetClasses)
}

// ParseMeasureType accepts either the value or the symbolic name, case-insensitively.
func ParseMeasureType(s string) (MeasureType, error) {
	return parse(s, "measure type", measureTypes)
}

// ParseUnit accepts either the value or the symbolic name, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	return parse(s, "unit", units)
}

// ParseAggregationLevel accepts either the value or the symbolic name, case-insensitively.
func ParseAggregationLevel(s string) (AggregationLevel, error) {
	return parse(s, "aggregation level", aggregationLevels)
}

// ParseFiniteDifferenceMethod accepts the value, the symbolic name or the
// leading word ("central", "forward", "backward"), case-insensitively.
func ParseFiniteDifferenceMethod(s string) (FiniteDifferenceMethod, error) {
	trimmed := strings.TrimSpace(s)
	for _, m := range finiteDifferenceMethods {
		if short, _, ok := strings.Cut(string(m), " "); ok && strings.EqualFold(trimmed, short) {
			return m, nil
		}
	}
	return parse(s, "finite difference method", finiteDifferenceMethods)
}

func symbolic(v string) string {
	return strings.ReplaceAll(v, " ", "_")
}

func parse[T ~string](s, kind string, known []T) (T, error) {
	trimmed := strings.TrimSpace(s)
	for _, k := range known {
		if strings.EqualFold(trimmed, string(k)) || strings.EqualFold(trimmed, symbolic(string(k))) {
			return k, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}
