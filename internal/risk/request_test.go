package risk

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"risk-measures/internal/pricing"
)

func TestNewRequest(t *testing.T) {
	ambient := pricing.NewEnvironment(pricing.EnvironmentOptions{Market: pricing.LiveMarket{}})
	ctx := pricing.WithContext(context.Background(), ambient)

	a := NewRequest(ctx, PnlExplainClose())
	b := NewRequest(ctx, Price.WithCurrency("USD"))

	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Fatalf("requests need distinct IDs: %s %s", a.ID, b.ID)
	}
	if a.Context.Market().Kind() != pricing.KindRelative {
		t.Fatalf("relative request should carry a relative market, got %s", a.Context.Market())
	}
	if b.Context != pricing.Context(ambient) {
		t.Fatalf("plain request should carry the ambient context, got %v", b.Context)
	}
	if b.Measure.String() != "Price(currency:USD)" {
		t.Fatalf("unexpected measure %s", b.Measure)
	}
}
