package risk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"risk-measures/internal/enums"
)

func TestMarshalJSONIncludesParameters(t *testing.T) {
	raw, err := json.Marshal(IRDelta.With(FiniteDifferenceOptions{Currency: "USD", LocalCurve: Bool(true)}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["name"] != "IRDelta" || decoded["measureType"] != "Delta" || decoded["assetClass"] != "Rates" {
		t.Fatalf("unexpected document %s", raw)
	}
	if decoded["parameterType"] != "FiniteDifference" {
		t.Fatalf("missing parameter type in %s", raw)
	}
	params, _ := decoded["parameters"].(map[string]any)
	if params["currency"] != "USD" || params["localCurve"] != true || len(params) != 2 {
		t.Fatalf("unexpected parameters %v", params)
	}
	if strings.Contains(string(raw), "Interest Rate Delta") {
		t.Fatal("documentation must not be serialised")
	}
}

func TestRelativeTargetIsNotSerialised(t *testing.T) {
	raw, err := json.Marshal(PnlExplainLive())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "market") {
		t.Fatalf("target market leaked into %s", raw)
	}

	out, err := yaml.Marshal(PnlExplainClose())
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(out)), "market") {
		t.Fatalf("target market leaked into %s", out)
	}
	if !strings.Contains(string(out), "measureType: PnlExplain") {
		t.Fatalf("unexpected yaml %s", out)
	}
}

func TestMarshalValue(t *testing.T) {
	literal := NewMeasure(Definition{
		Name:        "Fixed",
		MeasureType: enums.MeasureTypePV,
		Value:       decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
	})
	out, err := yaml.Marshal(literal)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	if !strings.Contains(string(out), "value: 12.5\n") {
		t.Fatalf("expected value in %s", out)
	}
}

func TestParametersKeepNativeTypes(t *testing.T) {
	m := IRVega.With(FiniteDifferenceOptions{
		LocalCurve:  Bool(false),
		BumpSize:    Number(0.0001),
		ScaleFactor: Number(2),
		Method:      enums.FiniteDifferenceBackward,
	})

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Parameters struct {
			LocalCurve  *bool   `json:"localCurve"`
			BumpSize    float64 `json:"bumpSize"`
			ScaleFactor float64 `json:"scaleFactor"`
			Method      string  `json:"method"`
		} `json:"parameters"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("typed unmarshal of %s: %v", raw, err)
	}
	p := decoded.Parameters
	if p.LocalCurve == nil || *p.LocalCurve || p.BumpSize != 0.0001 || p.ScaleFactor != 2 || p.Method != "Backward Difference" {
		t.Fatalf("unexpected parameters %+v from %s", p, raw)
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	for _, want := range []string{"localCurve: false\n", "bumpSize: 0.0001\n", "scaleFactor: 2\n"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
}
