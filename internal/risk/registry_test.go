package risk

import (
	"errors"
	"testing"

	"risk-measures/internal/enums"
)

func TestCatalogContents(t *testing.T) {
	if Catalog.Len() != 60 {
		t.Fatalf("expected 60 catalog entries, got %d", Catalog.Len())
	}

	d, ok := Catalog.Lookup("IRDeltaParallel")
	if !ok {
		t.Fatal("IRDeltaParallel should be registered")
	}
	if got := d.String(); got != "IRDeltaParallel(aggregationLevel:Asset)" {
		t.Fatalf("unexpected render %q", got)
	}

	d, ok = Catalog.Lookup("ResolvedInstrumentValues")
	if !ok || d.Name() != "ResolvedInstrumentBaseValues" {
		t.Fatalf("symbol and display name should differ, got %v", d)
	}

	d, _ = Catalog.Lookup("Price")
	if d.Shape() != ShapeCurrency {
		t.Fatalf("Price should be a currency template, got %q", d.Shape())
	}
	if _, ok := d.(CurrencyMeasure); !ok {
		t.Fatalf("Price should be a CurrencyMeasure, got %T", d)
	}
}

func TestCatalogLocalCcyVariants(t *testing.T) {
	cases := map[Descriptor]string{
		IRDeltaLocalCcy:                  "IRDeltaLocalCcy(currency:local)",
		IRVegaParallelLocalCcy:           "IRVegaParallelLocalCcy(aggregationLevel:Type, currency:local)",
		InflationDeltaParallel:           "InflationDeltaParallel(aggregationLevel:Type)",
		IRXccyDeltaParallelLocalCurrency: "IRXccyDeltaParallelLocalCurrency(aggregationLevel:Type, currency:local)",
		IRBasisParallel:                  "IRBasisParallel(aggregationLevel:Asset)",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if IRDelta.Parameters() != nil || IRVega.Parameters() != nil {
		t.Fatal("templates used for variants must stay unparameterised")
	}
}

func TestResolveDeprecatedName(t *testing.T) {
	res, err := Catalog.Resolve("IRDeltaParallelLocalCcy")
	if err != nil {
		t.Fatalf("resolve deprecated name: %v", err)
	}
	if !res.Deprecated() || res.Replacement != "IRDelta" {
		t.Fatalf("expected deprecation pointing at IRDelta, got %+v", res)
	}
	if res.Symbol != "IRDeltaParallelLocalCcy" {
		t.Fatalf("registered deprecated entries resolve to themselves, got %s", res.Symbol)
	}

	res, err = Catalog.Resolve("EqDelta")
	if err != nil || res.Deprecated() || res.Measure != Descriptor(EqDelta) {
		t.Fatalf("unexpected resolution %+v (%v)", res, err)
	}

	if _, err := Catalog.Resolve("NoSuchMeasure"); !errors.Is(err, ErrUnknownMeasure) {
		t.Fatalf("expected ErrUnknownMeasure, got %v", err)
	}
}

func TestResolveFallsBackToReplacement(t *testing.T) {
	reg := NewRegistry(map[string]string{"OldDelta": "NewDelta"})
	reg.Register("NewDelta", NewMeasure(Definition{Name: "NewDelta", MeasureType: enums.MeasureTypeDelta}))

	res, err := reg.Resolve("OldDelta")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Symbol != "NewDelta" || !res.Deprecated() {
		t.Fatalf("expected replacement resolution, got %+v", res)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register("A", EqDelta)
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration should panic")
		}
	}()
	reg.Register("A", EqGamma)
}

func TestAliasTableIsReadOnly(t *testing.T) {
	aliases := DeprecatedAliases()
	if len(aliases) != 4 {
		t.Fatalf("expected 4 aliases, got %d", len(aliases))
	}
	aliases["IRVegaParallelLocalCcy"] = "Tampered"
	if replacement, _ := DeprecatedAlias("IRVegaParallelLocalCcy"); replacement != "IRVega" {
		t.Fatalf("alias table was modified through a copy: %s", replacement)
	}
}

func TestAllIsSorted(t *testing.T) {
	all := Catalog.All()
	for i := 1; i < len(all); i++ {
		if Less(all[i], all[i-1]) {
			t.Fatalf("%s sorted after %s", all[i-1], all[i])
		}
	}
	if len(Catalog.Entries()) != Catalog.Len() || len(Catalog.Symbols()) != Catalog.Len() {
		t.Fatal("entries and symbols should cover the registry")
	}
}

func TestCatalogRegistersRelativeMeasures(t *testing.T) {
	symbols := Catalog.Symbols()
	tail := symbols[len(symbols)-3:]
	want := []string{"PnlExplainClose", "PnlExplainLive", "PnlPredictLive"}
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("expected relative measures last in registration order, got %v", tail)
		}
		d, ok := Catalog.Lookup(want[i])
		if !ok {
			t.Fatalf("%s not registered", want[i])
		}
		if _, ok := d.(RelativeMeasure); !ok {
			t.Fatalf("%s should be a RelativeMeasure, got %T", want[i], d)
		}
	}
}
