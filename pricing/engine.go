/*
engine.go - First-payment computation

ALGORITHM (each monetary step rounds to whole pesos immediately):
  1. daysCharged = inclusive days from move-in through month end;
     prorateFactor = daysCharged / realDaysInMonth
  2. promoDays = min(window, daysCharged); regularDays = remainder
  3. rent/parking/storage: dailyRate = monthly / 30 (flat divisor);
     line = round(daily*promoDays*(1-discount)) + round(daily*regularDays)
  4. common expenses: round(round(rent*rate) * prorateFactor) - REAL
     month length here, unlike step 3
  5. deposit: round(months*(rent+flat add-ons)) * initialFraction, rounded
  6. commission: round(rate*(rent+flat add-ons)) + VAT, waived by the
     current waiver fraction
  7. total = net rent+add-ons + prorated GC + initial deposit + commission

ERROR MODEL:
  A zero or invalid move-in date fails fast with ErrInvalidMoveInDate.
  Silently substituting a date would corrupt a financial calculation.
  Nothing else errors: all arithmetic is total over valid dates.
*/
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openhaus/movein-engine/calendar"
)

// ErrInvalidMoveInDate is returned when the move-in date is zero or
// otherwise not a real calendar day.
var ErrInvalidMoveInDate = errors.New("invalid move-in date")

// =============================================================================
// INPUT / OUTPUT TYPES
// =============================================================================

// MoveIn is the tenant's side of a first-payment computation.
type MoveIn struct {
	Date    calendar.Date
	Parking bool
	Storage bool
}

// Breakdown is the itemized first payment. All monetary fields are
// non-negative whole pesos, and TotalFirstPayment is the exact sum of
// NetRentAndAddons + ProratedCommonExpense + InitialDeposit +
// CommissionPayable.
type Breakdown struct {
	RentTotal    int64 `json:"rent_total"`
	ParkingTotal int64 `json:"parking_total"`
	StorageTotal int64 `json:"storage_total"`

	NetRentAndAddons      int64 `json:"net_rent_and_addons"`
	ProratedCommonExpense int64 `json:"prorated_common_expense"`
	InitialDeposit        int64 `json:"initial_deposit"`
	CommissionPayable     int64 `json:"commission_payable"`
	TotalFirstPayment     int64 `json:"total_first_payment"`

	// Diagnostic fields, handy for display and auditing.
	DaysCharged   int             `json:"days_charged"`
	DaysInMonth   int             `json:"days_in_month"`
	ProrateFactor decimal.Decimal `json:"prorate_factor"`
	PromoDays     int             `json:"promo_days"`
	RegularDays   int             `json:"regular_days"`
}

// =============================================================================
// ENGINE
// =============================================================================

var one = decimal.NewFromInt(1)

// ComputeFirstPayment derives the itemized move-in cost for a unit with
// the given monthly rent. Pure and deterministic: identical arguments
// yield an identical Breakdown.
func ComputeFirstPayment(monthlyRent int64, p Policy, mv MoveIn) (Breakdown, error) {
	if err := mv.Date.Validate(); err != nil {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrInvalidMoveInDate, err)
	}

	daysInMonth := mv.Date.DaysInMonth()
	daysCharged := calendar.ChargedDaysFrom(mv.Date)
	prorateFactor := decimal.NewFromInt(int64(daysCharged)).
		Div(decimal.NewFromInt(int64(daysInMonth)))

	promoDays := daysCharged
	if promoDays > p.PromoWindowDays {
		promoDays = p.PromoWindowDays
	}
	regularDays := daysCharged - p.PromoWindowDays
	if regularDays < 0 {
		regularDays = 0
	}

	parkingFlat := int64(0)
	if mv.Parking {
		parkingFlat = p.ParkingRent
	}
	storageFlat := int64(0)
	if mv.Storage {
		storageFlat = p.StorageRent
	}

	rentTotal := prorateLine(monthlyRent, p, promoDays, regularDays)
	parkingTotal := prorateLine(parkingFlat, p, promoDays, regularDays)
	storageTotal := prorateLine(storageFlat, p, promoDays, regularDays)
	netRentAndAddons := rentTotal + parkingTotal + storageTotal

	// Common expenses prorate over the REAL month length, not the flat
	// 30-day divisor used above.
	commonExpenseBase := decimal.NewFromInt(monthlyRent).
		Mul(p.CommonExpenseRate).Round(0)
	proratedCommonExpense := commonExpenseBase.Mul(prorateFactor).Round(0).IntPart()

	// Deposit and commission are computed over the full (unprorated)
	// monthly amounts.
	monthlyWithAddons := decimal.NewFromInt(monthlyRent + parkingFlat + storageFlat)

	fullDeposit := decimal.NewFromInt(int64(p.DepositMonths)).
		Mul(monthlyWithAddons).Round(0)
	initialDeposit := fullDeposit.Mul(p.DepositInitialFraction).Round(0).IntPart()

	commissionBase := p.CommissionRate.Mul(monthlyWithAddons).Round(0)
	commissionVAT := commissionBase.Mul(p.VATRate).Round(0)
	commissionGross := commissionBase.Add(commissionVAT)
	commissionPayable := commissionGross.
		Mul(one.Sub(p.CommissionWaiverFraction)).Round(0).IntPart()
	if commissionPayable < 0 {
		commissionPayable = 0
	}

	return Breakdown{
		RentTotal:             rentTotal,
		ParkingTotal:          parkingTotal,
		StorageTotal:          storageTotal,
		NetRentAndAddons:      netRentAndAddons,
		ProratedCommonExpense: proratedCommonExpense,
		InitialDeposit:        initialDeposit,
		CommissionPayable:     commissionPayable,
		TotalFirstPayment:     netRentAndAddons + proratedCommonExpense + initialDeposit + commissionPayable,
		DaysCharged:           daysCharged,
		DaysInMonth:           daysInMonth,
		ProrateFactor:         prorateFactor,
		PromoDays:             promoDays,
		RegularDays:           regularDays,
	}, nil
}

// prorateLine bills one monthly amount across the promo and regular
// portions of the charged days, using the flat daily divisor. Each
// portion rounds independently before summing.
func prorateLine(monthly int64, p Policy, promoDays, regularDays int) int64 {
	if monthly == 0 {
		return 0
	}
	daily := decimal.NewFromInt(monthly).
		Div(decimal.NewFromInt(int64(p.AddonDailyDivisor)))
	promo := daily.Mul(decimal.NewFromInt(int64(promoDays))).
		Mul(one.Sub(p.PromoDiscountRate)).Round(0)
	regular := daily.Mul(decimal.NewFromInt(int64(regularDays))).Round(0)
	return promo.Add(regular).IntPart()
}
