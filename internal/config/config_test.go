package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"risk-measures/internal/pricing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  name: test\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pricing.Market != pricing.KindClose {
		t.Fatalf("expected close market default, got %q", cfg.Pricing.Market)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %s", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestLoadPricingSection(t *testing.T) {
	path := writeConfig(t, "pricing:\n  market: Live\n  location: LDN\n  pricing_date: \"2024-06-28\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Pricing.Market != pricing.KindLive {
		t.Fatalf("expected live market, got %q", cfg.Pricing.Market)
	}
	want := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC)
	if !cfg.Pricing.PricingDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, cfg.Pricing.PricingDate)
	}

	env, err := cfg.PricingContext()
	if err != nil {
		t.Fatalf("pricing context: %v", err)
	}
	if env.Market() != (pricing.LiveMarket{Location: "LDN"}) {
		t.Fatalf("unexpected market %s", env.Market())
	}
}

func TestLoadRejectsUnknownMarket(t *testing.T) {
	if _, err := Load(writeConfig(t, "pricing:\n  market: overlay\n")); err == nil {
		t.Fatal("unknown market kind should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Pricing:  PricingConfig{Market: pricing.KindClose},
		Database: DatabaseConfig{MaxOpenConns: 1, MaxIdleConns: 2},
		Export:   ExportConfig{ChartWidth: 100},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("idle above open should fail")
	}
	cfg.Database.MaxIdleConns = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Export.ChartWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero chart width should fail")
	}
}

func TestResolveExportPath(t *testing.T) {
	cfg := Config{Export: ExportConfig{Directory: "out/"}}
	if got := cfg.ResolveExportPath("catalog.csv"); got != "out/catalog.csv" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := cfg.ResolveExportPath("/tmp/catalog.csv"); got != "/tmp/catalog.csv" {
		t.Fatalf("absolute paths should be kept, got %q", got)
	}
	if got := cfg.ResolveExportPath(""); got != "" {
		t.Fatalf("empty path should stay empty, got %q", got)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskctl.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
