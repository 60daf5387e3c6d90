/*
Package pricing computes the first payment a tenant owes at lease signing.

PURPOSE:
  Given a monthly rent, a move-in date, and the parking/storage add-ons,
  derive the fully itemized move-in cost: prorated rent under a
  promotional discount, prorated common expenses, the upfront share of
  the security deposit, and the brokerage commission net of VAT and the
  current waiver.

KEY CONCEPTS:
  - Policy: every tunable rate and flat amount, no hard-wired literals
  - Breakdown: the itemized result, recomputable from its inputs
  - Quoter: resolver -> normalizer -> engine pipeline (quote.go)
  - Cache: caller-owned memoization of breakdowns (cache.go)

DESIGN PRINCIPLES:
  1. Purity: every output is a function of the arguments alone
  2. Precision: decimal.Decimal throughout, integer pesos at rest
  3. Round early: each documented step rounds immediately, so the grand
     total is the exact sum of the returned line items

SEE ALSO:
  - engine.go: the computation
  - calendar: day arithmetic the proration depends on
*/
package pricing

import "github.com/shopspring/decimal"

// =============================================================================
// POLICY - Tunable pricing constants
// =============================================================================

// Policy carries every rate and flat amount the engine applies. All
// monetary fields are CLP minor units.
//
// Note the two divisors: AddonDailyDivisor is a flat 30 used for the
// daily rate of rent, parking and storage, while common expenses are
// prorated over the REAL length of the move-in month. The asymmetry is
// deliberate current policy; keeping both as independent named fields
// makes it visible and separately overridable.
type Policy struct {
	// Flat monthly add-ons when the tenant opts in.
	ParkingRent int64 `json:"parking_rent"`
	StorageRent int64 `json:"storage_rent"`

	// Fraction of base rent billed as common expenses (gastos comunes).
	CommonExpenseRate decimal.Decimal `json:"common_expense_rate"`

	// Promotional window: the first PromoWindowDays charged days are
	// billed at (1 - PromoDiscountRate). The window is measured from the
	// move-in day, not from the start of the calendar month.
	PromoDiscountRate decimal.Decimal `json:"promo_discount_rate"`
	PromoWindowDays   int             `json:"promo_window_days"`

	// Security deposit: DepositMonths months of rent+add-ons, of which
	// DepositInitialFraction is due at signing.
	DepositMonths          int             `json:"deposit_months"`
	DepositInitialFraction decimal.Decimal `json:"deposit_initial_fraction"`

	// Brokerage commission over rent+add-ons, plus VAT, minus the
	// waiver. A waiver fraction of 1 makes the payable commission zero
	// while keeping the arithmetic alive for when policy changes.
	CommissionRate           decimal.Decimal `json:"commission_rate"`
	VATRate                  decimal.Decimal `json:"vat_rate"`
	CommissionWaiverFraction decimal.Decimal `json:"commission_waiver_fraction"`

	// Divisor for the daily rate of rent and add-ons. Fixed at 30
	// regardless of the real month length.
	AddonDailyDivisor int `json:"addon_daily_divisor"`
}

// DefaultPolicy returns the production pricing constants.
func DefaultPolicy() Policy {
	return Policy{
		ParkingRent:              50000,
		StorageRent:              30000,
		CommonExpenseRate:        decimal.RequireFromString("0.21"),
		PromoDiscountRate:        decimal.RequireFromString("0.50"),
		PromoWindowDays:          30,
		DepositMonths:            1,
		DepositInitialFraction:   decimal.RequireFromString("0.33"),
		CommissionRate:           decimal.RequireFromString("0.50"),
		VATRate:                  decimal.RequireFromString("0.19"),
		CommissionWaiverFraction: decimal.RequireFromString("1.00"),
		AddonDailyDivisor:        30,
	}
}
