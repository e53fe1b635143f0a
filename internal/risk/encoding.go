package risk

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"risk-measures/internal/enums"
	"risk-measures/internal/pricing"
)

// document is the serialised form of a descriptor. Doc and the relative target
// market are never serialised; the pricing context is derived, not stored.
type document struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	AssetClass    enums.AssetClass    `json:"assetClass,omitempty" yaml:"assetClass,omitempty"`
	MeasureType   enums.MeasureType   `json:"measureType" yaml:"measureType"`
	Unit          enums.Unit          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Value         json.Number         `json:"value,omitempty" yaml:"value,omitempty"`
	ParameterType ParameterKind       `json:"parameterType,omitempty" yaml:"parameterType,omitempty"`
	Parameters    *parametersDocument `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Doc           string              `json:"-" yaml:"-"`
	ToMarket      pricing.Market      `json:"-" yaml:"-"`
}

// parametersDocument keeps each parameter in its native type. Decimals travel
// as json.Number so neither encoder quotes them.
type parametersDocument struct {
	AggregationLevel  enums.AggregationLevel       `json:"aggregationLevel,omitempty" yaml:"aggregationLevel,omitempty"`
	Currency          string                       `json:"currency,omitempty" yaml:"currency,omitempty"`
	LocalCurve        *bool                        `json:"localCurve,omitempty" yaml:"localCurve,omitempty"`
	BumpSize          json.Number                  `json:"bumpSize,omitempty" yaml:"bumpSize,omitempty"`
	Method            enums.FiniteDifferenceMethod `json:"method,omitempty" yaml:"method,omitempty"`
	ScaleFactor       json.Number                  `json:"scaleFactor,omitempty" yaml:"scaleFactor,omitempty"`
	MarketMarkingMode string                       `json:"marketMarkingMode,omitempty" yaml:"marketMarkingMode,omitempty"`
}

func number(d decimal.Decimal, ok bool) json.Number {
	if !ok {
		return ""
	}
	return json.Number(d.String())
}

func newParametersDocument(p Parameters) *parametersDocument {
	var doc parametersDocument
	switch v := p.(type) {
	case CurrencyParameter:
		doc.Currency, _ = v.Currency()
	case FiniteDifferenceParameter:
		doc.AggregationLevel, _ = v.AggregationLevel()
		doc.Currency, _ = v.Currency()
		if localCurve, ok := v.LocalCurve(); ok {
			doc.LocalCurve = &localCurve
		}
		doc.BumpSize = number(v.BumpSize())
		doc.Method, _ = v.Method()
		doc.ScaleFactor = number(v.ScaleFactor())
		doc.MarketMarkingMode, _ = v.MarketMarkingMode()
	}
	if doc == (parametersDocument{}) {
		return nil
	}
	return &doc
}

func (m Measure) document() document {
	doc := document{
		Name:        m.name,
		AssetClass:  m.assetClass,
		MeasureType: m.measureType,
		Unit:        m.unit,
		Value:       number(m.value.Decimal, m.value.Valid),
		Doc:         m.doc,
	}
	if m.parameters != nil {
		doc.ParameterType = m.parameters.Kind()
		doc.Parameters = newParametersDocument(m.parameters)
	}
	return doc
}

// MarshalJSON encodes the descriptor document.
func (m Measure) MarshalJSON() ([]byte, error) { return json.Marshal(m.document()) }

// MarshalYAML encodes the descriptor document.
func (m Measure) MarshalYAML() (interface{}, error) { return m.document(), nil }

func (m RelativeMeasure) document() document {
	doc := m.Measure.document()
	doc.ToMarket = m.toMarket
	return doc
}

// MarshalJSON encodes the descriptor document; the target market is omitted.
func (m RelativeMeasure) MarshalJSON() ([]byte, error) { return json.Marshal(m.document()) }

func (m RelativeMeasure) MarshalYAML() (interface{}, error) { return m.document(), nil }
