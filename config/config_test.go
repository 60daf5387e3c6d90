package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// GIVEN a clean environment
	// WHEN loading configuration
	// THEN every knob falls back to its production default
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "movein.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.SeedDemoData)

	assert.Equal(t, int64(50000), cfg.Policy.ParkingRent)
	assert.Equal(t, int64(30000), cfg.Policy.StorageRent)
	assert.Equal(t, 30, cfg.Policy.PromoWindowDays)
	assert.True(t, cfg.Policy.CommissionWaiverFraction.Equal(decimal.NewFromInt(1)))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.CORSAllowedOrigins)
}

func TestLoad_PolicyOverrides(t *testing.T) {
	t.Setenv("PARKING_FLAT_RENT", "60000")
	t.Setenv("PROMO_WINDOW_DAYS", "15")
	t.Setenv("COMMISSION_WAIVER_FRACTION", "0")
	t.Setenv("PROMO_DISCOUNT_RATE", "0.4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(60000), cfg.Policy.ParkingRent)
	assert.Equal(t, 15, cfg.Policy.PromoWindowDays)
	assert.True(t, cfg.Policy.CommissionWaiverFraction.IsZero())
	assert.True(t, cfg.Policy.PromoDiscountRate.Equal(decimal.RequireFromString("0.4")))
}

func TestLoad_RejectsInvalidOverrides(t *testing.T) {
	// Out-of-range or malformed overrides are ignored, keeping the
	// production defaults instead of crashing the service at boot.
	t.Setenv("PARKING_FLAT_RENT", "-1")
	t.Setenv("PROMO_WINDOW_DAYS", "0")
	t.Setenv("COMMISSION_RATE", "1.5")
	t.Setenv("VAT_RATE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(50000), cfg.Policy.ParkingRent)
	assert.Equal(t, 30, cfg.Policy.PromoWindowDays)
	assert.True(t, cfg.Policy.CommissionRate.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, cfg.Policy.VATRate.Equal(decimal.RequireFromString("0.19")))
}
