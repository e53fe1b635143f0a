package risk

import (
	"risk-measures/internal/enums"
)

var deprecatedMeasures = map[string]string{
	"IRDeltaParallelLocalCcy":          "IRDelta",
	"InflationDeltaParallelLocalCcy":   "InflationDelta",
	"IRXccyDeltaParallelLocalCurrency": "IRXccyDelta",
	"IRVegaParallelLocalCcy":           "IRVega",
}

// Catalog is the process-wide registry of template descriptors.
var Catalog = NewRegistry(deprecatedMeasures)

// DeprecatedAlias returns the current replacement for a retired catalog name.
func DeprecatedAlias(name string) (string, bool) { return Catalog.DeprecatedAlias(name) }

// DeprecatedAliases returns a copy of the catalog's retired-name table.
func DeprecatedAliases() map[string]string { return Catalog.DeprecatedAliases() }

func register[T Descriptor](symbol string, d T) T {
	Catalog.Register(symbol, d)
	return d
}

func plain(name, doc string, mt enums.MeasureType, ac enums.AssetClass, unit enums.Unit) Measure {
	return register(name, NewMeasure(Definition{Name: name, Doc: doc, MeasureType: mt, AssetClass: ac, Unit: unit}))
}

func finiteDifference(name, doc string, mt enums.MeasureType, ac enums.AssetClass) FiniteDifferenceMeasure {
	return register(name, NewFiniteDifferenceMeasure(Definition{Name: name, Doc: doc, MeasureType: mt, AssetClass: ac}))
}

func variant(template FiniteDifferenceMeasure, opts FiniteDifferenceOptions) FiniteDifferenceMeasure {
	return register(opts.Name, template.With(opts))
}

var (
	DollarPrice = plain("DollarPrice", "Present value in USD", enums.MeasureTypeDollarPrice, "", "")
	Price       = register("Price", NewCurrencyMeasure(Definition{
		Name:        "Price",
		Doc:         "Present value in local currency",
		MeasureType: enums.MeasureTypePV,
	}))
	ForwardPrice = plain("ForwardPrice", "Forward price", enums.MeasureTypeForwardPrice, "", enums.UnitBPS)
	BaseCPI      = plain("BaseCPI", "Base CPI level", enums.MeasureTypeBaseCPI, "", "")
	Theta        = plain("Theta", "1 day Theta", enums.MeasureTypeTheta, "", "")

	EqDelta            = plain("EqDelta", "Equity Delta", enums.MeasureTypeDelta, enums.AssetClassEquity, "")
	EqGamma            = plain("EqGamma", "Equity Gamma", enums.MeasureTypeGamma, enums.AssetClassEquity, "")
	EqVega             = plain("EqVega", "Equity Vega", enums.MeasureTypeVega, enums.AssetClassEquity, "")
	EqSpot             = plain("EqSpot", "Equity Spot Level", enums.MeasureTypeSpot, enums.AssetClassEquity, "")
	EqAnnualImpliedVol = plain("EqAnnualImpliedVol", "Equity Annual Implied Volatility (%)",
		enums.MeasureTypeAnnualImpliedVolatility, enums.AssetClassEquity, enums.UnitPercent)

	CommodDelta = plain("CommodDelta", "Commodity Delta", enums.MeasureTypeDelta, enums.AssetClassCommod, "")
	CommodTheta = plain("CommodTheta", "Commodity Theta", enums.MeasureTypeTheta, enums.AssetClassCommod, "")
	CommodVega  = plain("CommodVega", "Commodity Vega", enums.MeasureTypeVega, enums.AssetClassCommod, "")

	FairVolStrike = plain("FairVolStrike", "Fair Volatility Strike Value of a Variance Swap",
		enums.MeasureTypeFairVolStrike, "", "")
	FairVarStrike = plain("FairVarStrike", "Fair Variance Strike Value of a Variance Swap",
		enums.MeasureTypeFairVarStrike, "", "")

	FXDelta               = finiteDifference("FXDelta", "FX Delta", enums.MeasureTypeDelta, enums.AssetClassFX)
	FXGamma               = plain("FXGamma", "FX Gamma", enums.MeasureTypeGamma, enums.AssetClassFX, "")
	FXVega                = finiteDifference("FXVega", "FX Vega", enums.MeasureTypeVega, enums.AssetClassFX)
	FXSpot                = plain("FXSpot", "FX Spot Rate", enums.MeasureTypeSpot, enums.AssetClassFX, "")
	FXAnnualATMImpliedVol = plain("FXAnnualATMImpliedVol", "FX Annual ATM Implied Volatility",
		enums.MeasureTypeAnnualATMImpliedVolatility, enums.AssetClassFX, enums.UnitPercent)
	FXAnnualImpliedVol = plain("FXAnnualImpliedVol", "FX Annual Implied Volatility",
		enums.MeasureTypeAnnualImpliedVolatility, enums.AssetClassFX, enums.UnitPercent)

	IRBasis         = finiteDifference("IRBasis", "Interest Rate Basis", enums.MeasureTypeBasis, enums.AssetClassRates)
	IRBasisParallel = variant(IRBasis, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelAsset, Name: "IRBasisParallel",
	})

	InflationDelta = finiteDifference("InflationDelta", "Inflation Delta",
		enums.MeasureTypeInflationDelta, enums.AssetClassRates)
	InflationDeltaParallel = variant(InflationDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Name: "InflationDeltaParallel",
	})
	InflationDeltaParallelLocalCcy = variant(InflationDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Currency: "local", Name: "InflationDeltaParallelLocalCcy",
	})

	IRDelta         = finiteDifference("IRDelta", "Interest Rate Delta", enums.MeasureTypeDelta, enums.AssetClassRates)
	IRDeltaParallel = variant(IRDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelAsset, Name: "IRDeltaParallel",
	})
	IRDeltaLocalCcy = variant(IRDelta, FiniteDifferenceOptions{
		Currency: "local", Name: "IRDeltaLocalCcy",
	})
	IRDeltaParallelLocalCcy = variant(IRDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Currency: "local", Name: "IRDeltaParallelLocalCcy",
	})

	IRDiscountDeltaParallel = plain("IRDiscountDeltaParallel", "Parallel Discount Delta",
		enums.MeasureTypeParallelDiscountDelta, enums.AssetClassRates, "")
	IRDiscountDeltaParallelLocalCcy = plain("IRDiscountDeltaParallelLocalCcy", "Parallel Discount Delta (Local Ccy)",
		enums.MeasureTypeParallelDiscountDeltaLocalCcy, enums.AssetClassRates, "")

	IRXccyDelta         = finiteDifference("IRXccyDelta", "Cross-ccy Delta", enums.MeasureTypeXccyDelta, enums.AssetClassRates)
	IRXccyDeltaParallel = variant(IRXccyDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Name: "IRXccyDeltaParallel",
	})
	IRXccyDeltaParallelLocalCurrency = variant(IRXccyDelta, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Currency: "local", Name: "IRXccyDeltaParallelLocalCurrency",
	})

	IRGammaParallel = plain("IRGammaParallel", "Interest Rate Parallel Gamma",
		enums.MeasureTypeParallelGamma, enums.AssetClassRates, "")
	IRGammaParallelLocalCcy = plain("IRGammaParallelLocalCcy", "Interest Rate Parallel Gamma (Local Ccy)",
		enums.MeasureTypeParallelGammaLocalCcy, enums.AssetClassRates, "")

	IRVega         = finiteDifference("IRVega", "Interest Rate Vega", enums.MeasureTypeVega, enums.AssetClassRates)
	IRVegaParallel = variant(IRVega, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelAsset, Name: "IRVegaParallel",
	})
	IRVegaLocalCcy = variant(IRVega, FiniteDifferenceOptions{
		Currency: "local", Name: "IRVegaLocalCcy",
	})
	IRVegaParallelLocalCcy = variant(IRVega, FiniteDifferenceOptions{
		AggregationLevel: enums.AggregationLevelType, Currency: "local", Name: "IRVegaParallelLocalCcy",
	})

	IRAnnualImpliedVol = plain("IRAnnualImpliedVol", "Interest Rate Annual Implied Volatility (%)",
		enums.MeasureTypeAnnualImpliedVolatility, enums.AssetClassRates, enums.UnitPercent)
	IRAnnualATMImpliedVol = plain("IRAnnualATMImpliedVol", "Interest Rate Annual Implied At-The-Money Volatility (%)",
		enums.MeasureTypeAnnualATMFImpliedVolatility, enums.AssetClassRates, enums.UnitPercent)
	IRDailyImpliedVol = plain("IRDailyImpliedVol", "Interest Rate Daily Implied Volatility (bps)",
		enums.MeasureTypeDailyImpliedVolatility, enums.AssetClassRates, enums.UnitBPS)
	IRSpotRate = plain("IRSpotRate", "At-The-Money Spot Rate (%)",
		enums.MeasureTypeSpotRate, enums.AssetClassRates, enums.UnitPercent)
	IRFwdRate = plain("IRFwdRate", "Par Rate (%)", enums.MeasureTypeForwardRate, enums.AssetClassRates, enums.UnitPercent)

	CDDelta = plain("CDDelta", "Credit Delta", enums.MeasureTypeDelta, enums.AssetClassCredit, "")
	CDVega  = plain("CDVega", "Credit Vega", enums.MeasureTypeVega, enums.AssetClassCredit, "")
	CDGamma = plain("CDGamma", "Credit Gamma", enums.MeasureTypeGamma, enums.AssetClassCredit, "")
	CDTheta = plain("CDTheta", "Credit Theta", enums.MeasureTypeTheta, enums.AssetClassCredit, "")

	CRIFIRCurve = plain("CRIFIRCurve", "CRIF IR Curve", enums.MeasureTypeCRIFIRCurve, "", "")

	// Registered under its symbol; the display name differs.
	ResolvedInstrumentValues = register("ResolvedInstrumentValues", NewMeasure(Definition{
		Name:        "ResolvedInstrumentBaseValues",
		Doc:         "Resolved InstrumentBase Values",
		MeasureType: enums.MeasureTypeResolvedInstrumentValues,
	}))
	Description      = plain("Description", "Description", enums.MeasureTypeDescription, "", "")
	Cashflows        = plain("Cashflows", "Cashflows", enums.MeasureTypeCashflows, "", "")
	MarketDataAssets = plain("MarketDataAssets", "MarketDataAssets", enums.MeasureTypeMarketDataAssets, "", "")
	MarketData       = register("MarketData", NewMeasure(Definition{
		Name:        "Market Data",
		Doc:         "Market Data map of coordinates and values",
		MeasureType: enums.MeasureTypeMarketData,
	}))
	ParSpread = plain("ParSpread", "Par Spread", enums.MeasureTypeSpread, enums.AssetClassRates, "")

	// Relative measures are built by constructor functions of the same name.
	_ = register("PnlExplainClose", PnlExplainClose())
	_ = register("PnlExplainLive", PnlExplainLive())
	_ = register("PnlPredictLive", PnlPredictLive())
)
