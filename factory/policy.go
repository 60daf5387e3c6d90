/*
Package factory provides JSON to Go pricing-policy conversion.

PURPOSE:
  Converts JSON policy documents into pricing.Policy values. This
  enables rate changes without code changes - operations can adjust the
  promo discount or un-waive the commission from an admin surface, and
  the factory produces the proper Go struct.

WHY JSON?
  - Non-developers can tune rates
  - Easy integration with an admin UI
  - Version control for policy documents
  - Database storage of policy configs

JSON SCHEMA:
  {
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
  }

VALIDATION:
  go-playground/validator enforces the rate ranges before a document
  becomes a live policy; a bad document never reaches the engine.

SEE ALSO:
  - pricing/policy.go: Policy type definition
  - api/handlers.go: POST /api/policy uses this factory
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/openhaus/movein-engine/pricing"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PolicyJSON is the JSON representation of a pricing policy. Rates are
// plain floats on the wire; the factory converts them to decimals.
type PolicyJSON struct {
	ParkingRent              int64   `json:"parking_rent" validate:"gte=0"`
	StorageRent              int64   `json:"storage_rent" validate:"gte=0"`
	CommonExpenseRate        float64 `json:"common_expense_rate" validate:"gte=0,lte=1"`
	PromoDiscountRate        float64 `json:"promo_discount_rate" validate:"gte=0,lte=1"`
	PromoWindowDays          int     `json:"promo_window_days" validate:"gt=0"`
	DepositMonths            int     `json:"deposit_months" validate:"gte=0,lte=12"`
	DepositInitialFraction   float64 `json:"deposit_initial_fraction" validate:"gte=0,lte=1"`
	CommissionRate           float64 `json:"commission_rate" validate:"gte=0,lte=1"`
	VATRate                  float64 `json:"vat_rate" validate:"gte=0,lte=1"`
	CommissionWaiverFraction float64 `json:"commission_waiver_fraction" validate:"gte=0,lte=1"`
	AddonDailyDivisor        int     `json:"addon_daily_divisor" validate:"gt=0"`
}

// =============================================================================
// POLICY FACTORY
// =============================================================================

// PolicyFactory converts JSON policy documents to pricing.Policy.
type PolicyFactory struct {
	validate *validator.Validate
}

func NewPolicyFactory() *PolicyFactory {
	return &PolicyFactory{validate: validator.New()}
}

// Parse decodes and validates a policy document.
func (f *PolicyFactory) Parse(data []byte) (pricing.Policy, error) {
	var doc PolicyJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return pricing.Policy{}, fmt.Errorf("parse policy json: %w", err)
	}
	return f.FromJSON(doc)
}

// FromJSON validates a decoded document and builds the policy.
func (f *PolicyFactory) FromJSON(doc PolicyJSON) (pricing.Policy, error) {
	if err := f.validate.Struct(doc); err != nil {
		return pricing.Policy{}, fmt.Errorf("invalid policy document: %w", err)
	}
	return pricing.Policy{
		ParkingRent:              doc.ParkingRent,
		StorageRent:              doc.StorageRent,
		CommonExpenseRate:        decimal.NewFromFloat(doc.CommonExpenseRate),
		PromoDiscountRate:        decimal.NewFromFloat(doc.PromoDiscountRate),
		PromoWindowDays:          doc.PromoWindowDays,
		DepositMonths:            doc.DepositMonths,
		DepositInitialFraction:   decimal.NewFromFloat(doc.DepositInitialFraction),
		CommissionRate:           decimal.NewFromFloat(doc.CommissionRate),
		VATRate:                  decimal.NewFromFloat(doc.VATRate),
		CommissionWaiverFraction: decimal.NewFromFloat(doc.CommissionWaiverFraction),
		AddonDailyDivisor:        doc.AddonDailyDivisor,
	}, nil
}

// ToJSON renders a policy back into its wire form.
func ToJSON(p pricing.Policy) PolicyJSON {
	return PolicyJSON{
		ParkingRent:              p.ParkingRent,
		StorageRent:              p.StorageRent,
		CommonExpenseRate:        p.CommonExpenseRate.InexactFloat64(),
		PromoDiscountRate:        p.PromoDiscountRate.InexactFloat64(),
		PromoWindowDays:          p.PromoWindowDays,
		DepositMonths:            p.DepositMonths,
		DepositInitialFraction:   p.DepositInitialFraction.InexactFloat64(),
		CommissionRate:           p.CommissionRate.InexactFloat64(),
		VATRate:                  p.VATRate.InexactFloat64(),
		CommissionWaiverFraction: p.CommissionWaiverFraction.InexactFloat64(),
		AddonDailyDivisor:        p.AddonDailyDivisor,
	}
}
