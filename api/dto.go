/*
dto.go - Data Transfer Objects for API requests and responses

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
*/
package api

import (
	"github.com/openhaus/movein-engine/catalog"
	"github.com/openhaus/movein-engine/factory"
	"github.com/openhaus/movein-engine/pricing"
	"github.com/openhaus/movein-engine/store/sqlite"
)

// =============================================================================
// CATALOG TYPES
// =============================================================================

// UnitDTO represents a unit in API responses.
type UnitDTO struct {
	ID          string  `json:"id"`
	Typology    string  `json:"tipologia"`
	MonthlyRent int64   `json:"price"`
	Available   bool    `json:"disponible"`
	Bedrooms    int     `json:"dormitorios"`
	Bathrooms   int     `json:"banos"`
	M2          float64 `json:"m2,omitempty"`
	Floor       int     `json:"piso,omitempty"`
	HasParking  bool    `json:"estacionamiento,omitempty"`
	HasStorage  bool    `json:"bodega,omitempty"`
}

// BuildingDTO represents a building in API responses.
type BuildingDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Comuna    string    `json:"comuna"`
	BasePrice int64     `json:"precio_desde,omitempty"`
	Units     []UnitDTO `json:"units,omitempty"`
}

// =============================================================================
// QUOTE TYPES
// =============================================================================

// QuoteRequest is the request to price a move-in.
type QuoteRequest struct {
	UnitID         string `json:"unit_id,omitempty"`
	MoveInDate     string `json:"move_in_date"` // ISO 2006-01-02
	IncludeParking bool   `json:"include_parking"`
	IncludeStorage bool   `json:"include_storage"`
}

// SelectionDTO describes which unit the resolver picked and how.
type SelectionDTO struct {
	UnitID      string `json:"unit_id,omitempty"`
	Outcome     string `json:"outcome"`
	RequestedID string `json:"requested_id,omitempty"`
}

// UnitDetailsDTO is the normalized display view of the selected unit.
type UnitDetailsDTO struct {
	Bedrooms  int     `json:"dormitorios"`
	Bathrooms int     `json:"banos"`
	Typology  string  `json:"tipologia"`
	M2        float64 `json:"m2"`
}

// BreakdownDTO is the itemized first payment.
type BreakdownDTO struct {
	RentTotal             int64   `json:"rent_total"`
	ParkingTotal          int64   `json:"parking_total"`
	StorageTotal          int64   `json:"storage_total"`
	NetRentAndAddons      int64   `json:"net_rent_and_addons"`
	ProratedCommonExpense int64   `json:"prorated_common_expense"`
	InitialDeposit        int64   `json:"initial_deposit"`
	CommissionPayable     int64   `json:"commission_payable"`
	TotalFirstPayment     int64   `json:"total_first_payment"`
	DaysCharged           int     `json:"days_charged"`
	DaysInMonth           int     `json:"days_in_month"`
	ProrateFactor         float64 `json:"prorate_factor"`
	PromoDays             int     `json:"promo_days"`
	RegularDays           int     `json:"regular_days"`
}

// QuoteResponse is the complete answer for one quote request.
// Details and Breakdown are absent when no unit is available.
type QuoteResponse struct {
	QuoteID   string          `json:"quote_id"`
	Selection SelectionDTO    `json:"selection"`
	Details   *UnitDetailsDTO `json:"details,omitempty"`
	Rent      int64           `json:"monthly_rent,omitempty"`
	Breakdown *BreakdownDTO   `json:"breakdown,omitempty"`
}

// QuoteRecordDTO is one row of the quote audit log.
type QuoteRecordDTO struct {
	ID                string `json:"id"`
	BuildingID        string `json:"building_id"`
	UnitID            string `json:"unit_id,omitempty"`
	RequestedUnitID   string `json:"requested_unit_id,omitempty"`
	Outcome           string `json:"outcome"`
	MoveIn            string `json:"move_in"`
	Parking           bool   `json:"parking"`
	Storage           bool   `json:"storage"`
	MonthlyRent       int64  `json:"monthly_rent"`
	TotalFirstPayment int64  `json:"total_first_payment"`
	CreatedAt         string `json:"created_at"`
}

// UpdatePolicyRequest replaces the live pricing policy.
type UpdatePolicyRequest struct {
	Config factory.PolicyJSON `json:"config"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toUnitDTO(u catalog.Unit) UnitDTO {
	return UnitDTO{
		ID:          string(u.ID),
		Typology:    u.Typology,
		MonthlyRent: u.MonthlyRent,
		Available:   u.Available,
		Bedrooms:    u.Bedrooms,
		Bathrooms:   u.Bathrooms,
		M2:          u.M2,
		Floor:       u.Floor,
		HasParking:  u.HasParking,
		HasStorage:  u.HasStorage,
	}
}

func toBuildingDTO(b catalog.Building) BuildingDTO {
	dto := BuildingDTO{
		ID:        string(b.ID),
		Name:      b.Name,
		Comuna:    b.Comuna,
		BasePrice: b.BasePrice,
	}
	for _, u := range b.Units {
		dto.Units = append(dto.Units, toUnitDTO(u))
	}
	return dto
}

func toBreakdownDTO(bd pricing.Breakdown) BreakdownDTO {
	return BreakdownDTO{
		RentTotal:             bd.RentTotal,
		ParkingTotal:          bd.ParkingTotal,
		StorageTotal:          bd.StorageTotal,
		NetRentAndAddons:      bd.NetRentAndAddons,
		ProratedCommonExpense: bd.ProratedCommonExpense,
		InitialDeposit:        bd.InitialDeposit,
		CommissionPayable:     bd.CommissionPayable,
		TotalFirstPayment:     bd.TotalFirstPayment,
		DaysCharged:           bd.DaysCharged,
		DaysInMonth:           bd.DaysInMonth,
		ProrateFactor:         bd.ProrateFactor.InexactFloat64(),
		PromoDays:             bd.PromoDays,
		RegularDays:           bd.RegularDays,
	}
}

func toQuoteRecordDTO(q sqlite.QuoteRecord) QuoteRecordDTO {
	return QuoteRecordDTO{
		ID:                q.ID,
		BuildingID:        string(q.BuildingID),
		UnitID:            string(q.UnitID),
		RequestedUnitID:   string(q.RequestedUnitID),
		Outcome:           q.Outcome,
		MoveIn:            q.MoveIn,
		Parking:           q.Parking,
		Storage:           q.Storage,
		MonthlyRent:       q.MonthlyRent,
		TotalFirstPayment: q.TotalFirstPayment,
		CreatedAt:         q.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
