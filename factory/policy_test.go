package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhaus/movein-engine/factory"
	"github.com/openhaus/movein-engine/pricing"
)

const validDoc = `{
	"parking_rent": 50000,
	"storage_rent": 30000,
	"common_expense_rate": 0.21,
	"promo_discount_rate": 0.5,
	"promo_window_days": 30,
	"deposit_months": 1,
	"deposit_initial_fraction": 0.33,
	"commission_rate": 0.5,
	"vat_rate": 0.19,
	"commission_waiver_fraction": 1.0,
	"addon_daily_divisor": 30
}`

func TestParse_ValidDocument(t *testing.T) {
	f := factory.NewPolicyFactory()

	p, err := f.Parse([]byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, int64(50000), p.ParkingRent)
	assert.Equal(t, 30, p.PromoWindowDays)
	assert.True(t, p.PromoDiscountRate.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, p.CommissionWaiverFraction.Equal(decimal.NewFromInt(1)))
}

func TestParse_MatchesDefaultPolicy(t *testing.T) {
	// The documented schema example IS the production policy.
	f := factory.NewPolicyFactory()

	p, err := f.Parse([]byte(validDoc))
	require.NoError(t, err)

	def := pricing.DefaultPolicy()
	assert.Equal(t, def.ParkingRent, p.ParkingRent)
	assert.Equal(t, def.StorageRent, p.StorageRent)
	assert.True(t, def.CommonExpenseRate.Equal(p.CommonExpenseRate))
	assert.True(t, def.DepositInitialFraction.Equal(p.DepositInitialFraction))
	assert.Equal(t, def.AddonDailyDivisor, p.AddonDailyDivisor)
}

func TestParse_RejectsOutOfRangeRates(t *testing.T) {
	f := factory.NewPolicyFactory()

	cases := []struct {
		name string
		doc  string
	}{
		{"discount above 1", `{"promo_discount_rate": 1.5, "promo_window_days": 30, "addon_daily_divisor": 30}`},
		{"negative parking", `{"parking_rent": -1, "promo_window_days": 30, "addon_daily_divisor": 30}`},
		{"zero promo window", `{"promo_window_days": 0, "addon_daily_divisor": 30}`},
		{"zero divisor", `{"promo_window_days": 30, "addon_daily_divisor": 0}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	f := factory.NewPolicyFactory()
	_, err := f.Parse([]byte(`{"parking_rent": `))
	assert.Error(t, err)
}

func TestToJSON_RoundTrip(t *testing.T) {
	f := factory.NewPolicyFactory()

	doc := factory.ToJSON(pricing.DefaultPolicy())
	p, err := f.FromJSON(doc)
	require.NoError(t, err)

	assert.True(t, p.PromoDiscountRate.Equal(pricing.DefaultPolicy().PromoDiscountRate))
	assert.Equal(t, pricing.DefaultPolicy().ParkingRent, p.ParkingRent)
}
