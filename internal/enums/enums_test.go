package enums

import "testing"

func TestMeasureTypeName(t *testing.T) {
	if got := MeasureTypeDollarPrice.Name(); got != "Dollar_Price" {
		t.Fatalf("expected Dollar_Price, got %s", got)
	}
	if got := MeasureTypeCRIFIRCurve.Name(); got != "CRIF_IRCurve" {
		t.Fatalf("expected CRIF_IRCurve, got %s", got)
	}
	if got := MeasureTypePV.Name(); got != "PV" {
		t.Fatalf("expected PV, got %s", got)
	}
}

func TestParseAcceptsValueAndName(t *testing.T) {
	level, err := ParseAggregationLevel("asset")
	if err != nil || level != AggregationLevelAsset {
		t.Fatalf("expected Asset, got %q (%v)", level, err)
	}

	method, err := ParseFiniteDifferenceMethod("central_difference")
	if err != nil || method != FiniteDifferenceCentral {
		t.Fatalf("expected Central Difference, got %q (%v)", method, err)
	}

	method, err = ParseFiniteDifferenceMethod("Forward Difference")
	if err != nil || method != FiniteDifferenceForward {
		t.Fatalf("expected Forward Difference, got %q (%v)", method, err)
	}

	mt, err := ParseMeasureType("annual_atm_implied_volatility")
	if err != nil || mt != MeasureTypeAnnualATMImpliedVolatility {
		t.Fatalf("unexpected measure type %q (%v)", mt, err)
	}
}

func TestParseFiniteDifferenceMethodShortForm(t *testing.T) {
	cases := map[string]FiniteDifferenceMethod{
		"central":   FiniteDifferenceCentral,
		" Forward ": FiniteDifferenceForward,
		"BACKWARD":  FiniteDifferenceBackward,
	}
	for in, want := range cases {
		got, err := ParseFiniteDifferenceMethod(in)
		if err != nil || got != want {
			t.Fatalf("ParseFiniteDifferenceMethod(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFiniteDifferenceMethod("difference"); err == nil {
		t.Fatal("the shared suffix alone should not match")
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := ParseAssetClass("Weather"); err == nil {
		t.Fatal("unknown asset class should fail")
	}
	if _, err := ParseUnit(""); err == nil {
		t.Fatal("empty unit should fail")
	}
}

func TestListsAreCopies(t *testing.T) {
	classes := AssetClasses()
	classes[0] = "Mutated"
	if AssetClasses()[0] != AssetClassEquity {
		t.Fatal("AssetClasses must return a copy")
	}
	if len(MeasureTypes()) == 0 {
		t.Fatal("measure types should not be empty")
	}
}
