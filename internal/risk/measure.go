// Package risk defines descriptors for risk measures: immutable values naming a
// sensitivity to compute, specialised on demand with currency or
// finite-difference parameters, and resolved against the ambient pricing
// context.
package risk

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"risk-measures/internal/enums"
	"risk-measures/internal/pricing"
)

var (
	// ErrUnknownMeasure is returned when a name resolves to no registered descriptor.
	ErrUnknownMeasure = errors.New("risk: unknown measure")
)

// Shape selects the builder a template descriptor exposes.
type Shape string

const (
	ShapeNone             Shape = ""
	ShapeCurrency         Shape = "Currency"
	ShapeFiniteDifference Shape = "FiniteDifference"
)

// Descriptor is implemented by every measure flavour in this package.
type Descriptor interface {
	Key() string
	Name() string
	Doc() string
	AssetClass() enums.AssetClass
	MeasureType() enums.MeasureType
	Unit() enums.Unit
	Value() decimal.NullDecimal
	Parameters() Parameters
	Shape() Shape
	PricingContext(ctx context.Context) pricing.Context
	String() string

	base() Measure
}

// Definition is the static description a descriptor is built from.
type Definition struct {
	Name        string
	Doc         string
	MeasureType enums.MeasureType
	AssetClass  enums.AssetClass
	Unit        enums.Unit
	Value       decimal.NullDecimal
	Shape       Shape
}

// Measure is the unparameterised descriptor.
type Measure struct {
	name        string
	doc         string
	assetClass  enums.AssetClass
	measureType enums.MeasureType
	unit        enums.Unit
	value       decimal.NullDecimal
	parameters  Parameters
}

// New builds the descriptor flavour selected by def.Shape.
func New(def Definition) Descriptor {
	switch def.Shape {
	case ShapeNone:
		return NewMeasure(def)
	case ShapeCurrency:
		return NewCurrencyMeasure(def)
	case ShapeFiniteDifference:
		return NewFiniteDifferenceMeasure(def)
	default:
		panic(fmt.Sprintf("risk: definition %q has unknown shape %q", def.Name, def.Shape))
	}
}

// NewMeasure builds an unparameterised descriptor, ignoring def.Shape.
func NewMeasure(def Definition) Measure {
	if def.MeasureType == "" {
		panic(fmt.Sprintf("risk: definition %q has no measure type", def.Name))
	}
	return Measure{
		name:        def.Name,
		doc:         def.Doc,
		assetClass:  def.AssetClass,
		measureType: def.MeasureType,
		unit:        def.Unit,
		value:       def.Value,
	}
}

// Name returns the display name, which may be empty.
func (m Measure) Name() string { return m.name }

// Doc returns the human-readable description.
func (m Measure) Doc() string { return m.doc }

// AssetClass returns the asset class, empty when the measure spans classes.
func (m Measure) AssetClass() enums.AssetClass { return m.assetClass }

// MeasureType returns the kind of quantity computed.
func (m Measure) MeasureType() enums.MeasureType { return m.measureType }

// Unit returns the reporting unit, empty when unspecified.
func (m Measure) Unit() enums.Unit { return m.unit }

// Value returns the optional literal scalar.
func (m Measure) Value() decimal.NullDecimal { return m.value }

// Parameters returns the attached parameter variant, or nil.
func (m Measure) Parameters() Parameters { return m.parameters }

// Shape reports that a plain measure has no builder.
func (m Measure) Shape() Shape { return ShapeNone }

// ParametersEmpty reports whether no parameter variant is attached.
func (m Measure) ParametersEmpty() bool { return m.parameters == nil }

// Key is the identity used for equality and ordering: the name, or the
// measure type's symbolic name when the name is absent.
func (m Measure) Key() string {
	if m.name != "" {
		return m.name
	}
	return m.measureType.Name()
}

// String renders the descriptor without parameters.
func (m Measure) String() string { return m.Key() }

// Equal compares identity keys only; other fields are ignored.
func (m Measure) Equal(other Descriptor) bool {
	return identity(m) == identity(other)
}

// PricingContext returns the ambient pricing context unchanged.
func (m Measure) PricingContext(ctx context.Context) pricing.Context {
	return pricing.Current(ctx)
}

func (m Measure) base() Measure { return m }

// derive builds a new Measure from m's fields with the given name and parameters.
func (m Measure) derive(name string, p Parameters) Measure {
	return Measure{
		name:        name,
		doc:         m.doc,
		assetClass:  m.assetClass,
		measureType: m.measureType,
		unit:        m.unit,
		value:       m.value,
		parameters:  p,
	}
}

// Compare orders descriptors by identity key. It panics when either key is empty.
func Compare(a, b Descriptor) int {
	return strings.Compare(identity(a), identity(b))
}

// Less reports whether a sorts before b.
func Less(a, b Descriptor) bool {
	return Compare(a, b) < 0
}

// Sort orders ds in place by identity key.
func Sort(ds []Descriptor) {
	slices.SortStableFunc(ds, Compare)
}

func identity(d Descriptor) string {
	if d == nil {
		panic("risk: nil descriptor has no identity")
	}
	key := d.Key()
	if key == "" {
		panic("risk: descriptor has neither name nor measure type")
	}
	return key
}

var _ Descriptor = Measure{}
