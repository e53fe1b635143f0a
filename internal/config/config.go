package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"risk-measures/internal/logging"
	"risk-measures/internal/pricing"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	Pricing  PricingConfig  `mapstructure:"pricing"`
	Database DatabaseConfig `mapstructure:"database"`
	Export   ExportConfig   `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// PricingConfig describes the default ambient pricing context.
type PricingConfig struct {
	Market      pricing.MarketKind `mapstructure:"market"`
	Location    string             `mapstructure:"location"`
	PricingDate time.Time          `mapstructure:"pricing_date"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity for catalog publication.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AdvisoryLockKey int64         `mapstructure:"advisory_lock_key"`
}

// ExportConfig sets CLI export behaviour.
type ExportConfig struct {
	Directory  string `mapstructure:"directory"`
	ChartWidth int    `mapstructure:"chart_width"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RISKMEASURES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("riskctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "riskctl")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("pricing.market", "close")
	v.SetDefault("pricing.location", "")

	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.advisory_lock_key", int64(0x7269736b))

	v.SetDefault("export.directory", ".")
	v.SetDefault("export.chart_width", 1280)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			stringToDateHook(),
			stringToMarketKindHook(),
		)
	}
}

// stringToDateHook accepts YYYY-MM-DD as well as RFC3339; an empty string is the zero date.
func stringToDateHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return time.Time{}, nil
		}
		if t, err := time.Parse(time.DateOnly, raw); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		return t, nil
	}
}

func stringToMarketKindHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(pricing.MarketKind("")) {
			return data, nil
		}
		return pricing.ParseMarketKind(data.(string))
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if _, err := pricing.ParseMarketKind(string(c.Pricing.Market)); err != nil {
		return fmt.Errorf("pricing.market: %w", err)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database pool sizes cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns && c.Database.MaxOpenConns > 0 {
		return fmt.Errorf("database.max_idle_conns cannot exceed database.max_open_conns")
	}
	if c.Export.ChartWidth <= 0 {
		return fmt.Errorf("export.chart_width must be greater than zero")
	}
	return nil
}

// PricingContext builds the default ambient pricing context.
func (c *Config) PricingContext() (pricing.Environment, error) {
	market, err := pricing.NewMarket(c.Pricing.Market, c.Pricing.Location, c.Pricing.PricingDate)
	if err != nil {
		return pricing.Environment{}, err
	}
	return pricing.NewEnvironment(pricing.EnvironmentOptions{
		Market:      market,
		PricingDate: c.Pricing.PricingDate,
		Location:    c.Pricing.Location,
	}), nil
}

// ResolveExportPath joins relative export paths onto the configured directory.
func (c *Config) ResolveExportPath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Export.Directory == "" || c.Export.Directory == "." {
		return path
	}
	return filepath.Join(c.Export.Directory, path)
}
