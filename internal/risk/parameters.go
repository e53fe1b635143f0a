package risk

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"risk-measures/internal/enums"
)

// ParameterKind tags a parameter variant.
type ParameterKind string

const (
	ParameterKindCurrency         ParameterKind = "Currency"
	ParameterKindFiniteDifference ParameterKind = "FiniteDifference"
)

// Parameters is the variant attached to a specialised descriptor. The only
// implementations are CurrencyParameter and FiniteDifferenceParameter.
type Parameters interface {
	Kind() ParameterKind
	// Fields returns the set fields only, unordered.
	Fields() []Field
	String() string

	isParameters()
}

// Field is one rendered key/value pair of a parameter variant.
type Field struct {
	Key   string
	Value string
}

// CurrencyParameter specialises a descriptor by currency.
type CurrencyParameter struct {
	currency string
}

// NewCurrencyParameter builds a currency parameter; an empty code is absent.
func NewCurrencyParameter(currency string) CurrencyParameter {
	return CurrencyParameter{currency: currency}
}

// Currency returns the currency code and whether it was set.
func (p CurrencyParameter) Currency() (string, bool) { return p.currency, p.currency != "" }

// Kind identifies the currency variant.
func (CurrencyParameter) Kind() ParameterKind { return ParameterKindCurrency }

// Fields returns the currency field when it is set.
func (p CurrencyParameter) Fields() []Field {
	if p.currency == "" {
		return nil
	}
	return []Field{{Key: "currency", Value: p.currency}}
}

// String renders the set fields without the surrounding name.
func (p CurrencyParameter) String() string { return joinFields(p.Fields()) }

func (CurrencyParameter) isParameters() {}

// FiniteDifferenceParameter specialises a bumped sensitivity.
type FiniteDifferenceParameter struct {
	aggregationLevel  enums.AggregationLevel
	currency          string
	localCurve        bool
	localCurveSet     bool
	bumpSize          decimal.NullDecimal
	method            enums.FiniteDifferenceMethod
	scaleFactor       decimal.NullDecimal
	marketMarkingMode string
}

// NewFiniteDifferenceParameter copies the supplied options; absent options stay absent.
func NewFiniteDifferenceParameter(opts FiniteDifferenceOptions) FiniteDifferenceParameter {
	p := FiniteDifferenceParameter{
		aggregationLevel:  opts.AggregationLevel,
		currency:          opts.Currency,
		bumpSize:          opts.BumpSize,
		method:            opts.Method,
		scaleFactor:       opts.ScaleFactor,
		marketMarkingMode: opts.MarketMarkingMode,
	}
	if opts.LocalCurve != nil {
		p.localCurve = *opts.LocalCurve
		p.localCurveSet = true
	}
	return p
}

// AggregationLevel returns the result granularity and whether it was set.
func (p FiniteDifferenceParameter) AggregationLevel() (enums.AggregationLevel, bool) {
	return p.aggregationLevel, p.aggregationLevel != ""
}

// Currency returns the reporting currency and whether it was set.
func (p FiniteDifferenceParameter) Currency() (string, bool) { return p.currency, p.currency != "" }

// LocalCurve returns the local-curve flag and whether it was set.
func (p FiniteDifferenceParameter) LocalCurve() (bool, bool) { return p.localCurve, p.localCurveSet }

// BumpSize returns the bump size and whether it was set.
func (p FiniteDifferenceParameter) BumpSize() (decimal.Decimal, bool) {
	return p.bumpSize.Decimal, p.bumpSize.Valid
}

// Method returns the bump scheme and whether it was set.
func (p FiniteDifferenceParameter) Method() (enums.FiniteDifferenceMethod, bool) {
	return p.method, p.method != ""
}

// ScaleFactor returns the result multiplier and whether it was set.
func (p FiniteDifferenceParameter) ScaleFactor() (decimal.Decimal, bool) {
	return p.scaleFactor.Decimal, p.scaleFactor.Valid
}

// MarketMarkingMode returns the marking mode and whether it was set.
func (p FiniteDifferenceParameter) MarketMarkingMode() (string, bool) {
	return p.marketMarkingMode, p.marketMarkingMode != ""
}

// Kind identifies the finite-difference variant.
func (FiniteDifferenceParameter) Kind() ParameterKind { return ParameterKindFiniteDifference }

// Fields returns the set fields in declaration order.
func (p FiniteDifferenceParameter) Fields() []Field {
	fields := make([]Field, 0, 7)
	if p.aggregationLevel != "" {
		fields = append(fields, Field{Key: "aggregationLevel", Value: string(p.aggregationLevel)})
	}
	if p.currency != "" {
		fields = append(fields, Field{Key: "currency", Value: p.currency})
	}
	if p.localCurveSet {
		fields = append(fields, Field{Key: "localCurve", Value: strconv.FormatBool(p.localCurve)})
	}
	if p.bumpSize.Valid {
		fields = append(fields, Field{Key: "bumpSize", Value: p.bumpSize.Decimal.String()})
	}
	if p.method != "" {
		fields = append(fields, Field{Key: "method", Value: string(p.method)})
	}
	if p.scaleFactor.Valid {
		fields = append(fields, Field{Key: "scaleFactor", Value: p.scaleFactor.Decimal.String()})
	}
	if p.marketMarkingMode != "" {
		fields = append(fields, Field{Key: "marketMarkingMode", Value: p.marketMarkingMode})
	}
	return fields
}

// String renders the set fields without the surrounding name.
func (p FiniteDifferenceParameter) String() string { return joinFields(p.Fields()) }

func (FiniteDifferenceParameter) isParameters() {}

// Render formats name with its parameters as name(k1:v1, k2:v2). Keys are
// sorted case-insensitively; with no set fields the bare name is returned.
func Render(name string, p Parameters) string {
	if p == nil {
		return name
	}
	rendered := p.String()
	if rendered == "" {
		return name
	}
	return name + "(" + rendered + ")"
}

// SortedFields returns the set fields of p ordered case-insensitively by key.
func SortedFields(p Parameters) []Field {
	if p == nil {
		return nil
	}
	return sortFields(p.Fields())
}

func sortFields(fields []Field) []Field {
	sorted := append([]Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].Key), strings.ToLower(sorted[j].Key)
		if a != b {
			return a < b
		}
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

func joinFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range sortFields(fields) {
		parts = append(parts, f.Key+":"+f.Value)
	}
	return strings.Join(parts, ", ")
}

var (
	_ Parameters = CurrencyParameter{}
	_ Parameters = FiniteDifferenceParameter{}
)
