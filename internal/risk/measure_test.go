package risk

import (
	"testing"

	"risk-measures/internal/enums"
)

func TestRenderUsesNameOrMeasureType(t *testing.T) {
	if got := EqDelta.String(); got != "EqDelta" {
		t.Fatalf("expected EqDelta, got %q", got)
	}
	if got := MarketData.String(); got != "Market Data" {
		t.Fatalf("expected display name, got %q", got)
	}

	unnamed := NewMeasure(Definition{MeasureType: enums.MeasureTypeDollarPrice})
	if got := unnamed.String(); got != "Dollar_Price" {
		t.Fatalf("unnamed measure should render its measure type name, got %q", got)
	}
}

func TestEqualComparesIdentityOnly(t *testing.T) {
	a := NewMeasure(Definition{Name: "Delta", MeasureType: enums.MeasureTypeDelta, AssetClass: enums.AssetClassEquity})
	b := NewMeasure(Definition{Name: "Delta", MeasureType: enums.MeasureTypeDelta, AssetClass: enums.AssetClassFX, Unit: enums.UnitBPS})
	if !a.Equal(b) {
		t.Fatal("measures with the same name should be equal")
	}
	if a.Equal(EqDelta) {
		t.Fatal("measures with different names should differ")
	}

	unnamed := NewMeasure(Definition{MeasureType: enums.MeasureTypeVega})
	if !unnamed.Equal(NewMeasure(Definition{MeasureType: enums.MeasureTypeVega, Unit: enums.UnitPercent})) {
		t.Fatal("unnamed measures should compare by measure type")
	}
}

func TestSortIsTotalByName(t *testing.T) {
	inputs := [][]Descriptor{
		{IRVega, CDVega, EqDelta},
		{EqDelta, IRVega, CDVega},
		{CDVega, EqDelta, IRVega},
	}
	for _, in := range inputs {
		Sort(in)
		got := []string{in[0].Key(), in[1].Key(), in[2].Key()}
		want := []string{"CDVega", "EqDelta", "IRVega"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	if !Less(CDVega, IRVega) || Less(IRVega, CDVega) {
		t.Fatal("Less disagrees with name order")
	}
}

func TestCompareWithoutIdentityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("comparing a descriptor without identity should panic")
		}
	}()
	Compare(Measure{}, EqDelta)
}

func TestNewRejectsUnknownShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("unknown shape should panic")
		}
	}()
	New(Definition{Name: "Odd", MeasureType: enums.MeasureTypePV, Shape: "Exotic"})
}

func TestNewSelectsBuilderShape(t *testing.T) {
	cases := map[Shape]Shape{
		ShapeNone:             ShapeNone,
		ShapeCurrency:         ShapeCurrency,
		ShapeFiniteDifference: ShapeFiniteDifference,
	}
	for in, want := range cases {
		d := New(Definition{Name: "X", MeasureType: enums.MeasureTypePV, Shape: in})
		if d.Shape() != want {
			t.Fatalf("shape %q: got %q", in, d.Shape())
		}
		if d.Parameters() != nil {
			t.Fatalf("shape %q: template should carry no parameters", in)
		}
	}
}
