/*
Package config loads service configuration from the environment.

PURPOSE:
  One place for every knob: HTTP port, database path, CORS origins,
  log settings, and pricing-policy overrides. Values come from
  environment variables (optionally via a .env file in development),
  loaded through koanf's env provider.

PRICING OVERRIDES:
  Every policy constant can be overridden per environment without a
  rebuild, e.g. PROMO_DISCOUNT_RATE=0.4 or COMMISSION_WAIVER_FRACTION=0.
  Unset variables keep the production defaults.
*/
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/openhaus/movein-engine/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	DBPath             string
	CORSAllowedOrigins []string
	LogLevel           string
	LogFormat          string
	SeedDemoData       bool

	Policy pricing.Policy
}

// Load reads configuration from environment variables and an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		DBPath:             valueOrDefault(k.String("DB_PATH"), "movein.db"),
		CORSAllowedOrigins: splitAndTrim(valueOrDefault(k.String("CORS_ALLOWED_ORIGINS"), "http://localhost:3000")),
		LogLevel:           valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:          valueOrDefault(k.String("LOG_FORMAT"), "json"),
		SeedDemoData:       parseBool(k.String("SEED_DEMO_DATA")),
		Policy:             loadPolicy(k),
	}
	return cfg, nil
}

// loadPolicy starts from the production defaults and applies any
// per-environment overrides.
func loadPolicy(k *koanf.Koanf) pricing.Policy {
	p := pricing.DefaultPolicy()

	if v := k.String("PARKING_FLAT_RENT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			p.ParkingRent = n
		}
	}
	if v := k.String("STORAGE_FLAT_RENT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			p.StorageRent = n
		}
	}
	if v := k.String("PROMO_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PromoWindowDays = n
		}
	}
	if v := k.String("DEPOSIT_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.DepositMonths = n
		}
	}
	overrideRate(k, "COMMON_EXPENSE_RATE", &p.CommonExpenseRate)
	overrideRate(k, "PROMO_DISCOUNT_RATE", &p.PromoDiscountRate)
	overrideRate(k, "DEPOSIT_INITIAL_FRACTION", &p.DepositInitialFraction)
	overrideRate(k, "COMMISSION_RATE", &p.CommissionRate)
	overrideRate(k, "VAT_RATE", &p.VATRate)
	overrideRate(k, "COMMISSION_WAIVER_FRACTION", &p.CommissionWaiverFraction)
	return p
}

func overrideRate(k *koanf.Koanf, name string, dst *decimal.Decimal) {
	v := strings.TrimSpace(k.String(name))
	if v == "" {
		return
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return
	}
	*dst = d
}

func valueOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}
