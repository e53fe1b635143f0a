package pricing

import (
	"context"
	"testing"
	"time"
)

func TestCurrentFallsBackToDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	if got := Current(context.Background()).Market(); got.Kind() != KindClose {
		t.Fatalf("expected close market by default, got %s", got)
	}

	SetDefault(NewEnvironment(EnvironmentOptions{Market: LiveMarket{Location: "LDN"}}))
	if got := Current(context.Background()).Market(); got != (LiveMarket{Location: "LDN"}) {
		t.Fatalf("expected configured default, got %s", got)
	}
}

func TestCurrentPrefersScopedContext(t *testing.T) {
	scoped := NewEnvironment(EnvironmentOptions{Market: CloseMarket{Location: "NYC"}})
	ctx := WithContext(context.Background(), scoped)

	if got := Current(ctx); got != Context(scoped) {
		t.Fatalf("expected scoped context, got %v", got)
	}
}

func TestWithMarketLeavesReceiverUntouched(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	env := NewEnvironment(EnvironmentOptions{Market: CloseMarket{}, PricingDate: date, Location: "HKG"})

	derived := env.WithMarket(LiveMarket{}).(Environment)
	if env.Market() != (CloseMarket{}) {
		t.Fatalf("receiver market changed to %s", env.Market())
	}
	if derived.Market() != (LiveMarket{}) {
		t.Fatalf("derived market should be live, got %s", derived.Market())
	}
	if !derived.PricingDate().Equal(date) || derived.Location() != "HKG" {
		t.Fatalf("derived context lost fields: %s", derived)
	}
}

func TestMarketStrings(t *testing.T) {
	rel := RelativeMarket{From: CloseMarket{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}, To: LiveMarket{Location: "NYC"}}
	if got := rel.String(); got != "Relative(Close(2024-01-02) -> Live(NYC))" {
		t.Fatalf("unexpected relative market string %q", got)
	}
	if got := (RelativeMarket{}).String(); got != "Relative(<none> -> <none>)" {
		t.Fatalf("unexpected empty relative string %q", got)
	}
}

func TestParseMarketKind(t *testing.T) {
	kind, err := ParseMarketKind(" Live ")
	if err != nil || kind != KindLive {
		t.Fatalf("expected live, got %q (%v)", kind, err)
	}
	if _, err := ParseMarketKind("relative"); err == nil {
		t.Fatal("relative markets cannot be configured")
	}
	if _, err := NewMarket(KindRelative, "", time.Time{}); err == nil {
		t.Fatal("NewMarket should reject relative kind")
	}
}
