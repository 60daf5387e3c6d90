/*
handlers.go - HTTP API handlers for the move-in pricing service

PURPOSE:
  Exposes the catalog and the pricing pipeline via REST. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Catalog:
    GET  /api/buildings              List buildings
    GET  /api/buildings/{id}         One building with inventory
    GET  /api/buildings/{id}/units   Available units only

  Pricing:
    POST /api/buildings/{id}/quote   Price a move-in
    GET  /api/quotes                 Recent quote audit rows

  Policy:
    GET  /api/policy                 Effective pricing constants
    POST /api/policy                 Replace them from a JSON document

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: invalid move-in date, bad policy document
  - 404: unknown building
  - 500: store failures

A quote against a sold-out building is NOT an error: the response
carries outcome "none" and no breakdown, and the client renders the
unavailable state.
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openhaus/movein-engine/calendar"
	"github.com/openhaus/movein-engine/catalog"
	"github.com/openhaus/movein-engine/factory"
	"github.com/openhaus/movein-engine/pricing"
	"github.com/openhaus/movein-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Factory *factory.PolicyFactory
	Log     zerolog.Logger

	// The live quoter is swapped atomically when the policy changes.
	mu     sync.RWMutex
	quoter *pricing.Quoter
}

// NewHandler creates a handler pricing with the given policy.
func NewHandler(store *sqlite.Store, policy pricing.Policy, log zerolog.Logger, resolverLog catalog.EventLogger) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewPolicyFactory(),
		Log:     log,
		quoter:  pricing.NewQuoter(policy, catalog.NewResolver(resolverLog), pricing.NewCache()),
	}
}

func (h *Handler) currentQuoter() *pricing.Quoter {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.quoter
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListBuildings returns all buildings with inventory.
func (h *Handler) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := h.Store.ListBuildings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list buildings", err)
		return
	}

	dtos := make([]BuildingDTO, len(buildings))
	for i, b := range buildings {
		dtos[i] = toBuildingDTO(b)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetBuilding returns a single building.
func (h *Handler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	id := catalog.BuildingID(chi.URLParam(r, "id"))

	b, err := h.Store.GetBuilding(r.Context(), id)
	if errors.Is(err, sqlite.ErrBuildingNotFound) {
		writeError(w, http.StatusNotFound, "Building not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load building", err)
		return
	}
	writeJSON(w, http.StatusOK, toBuildingDTO(b))
}

// ListUnits returns the available units of a building, catalog order.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	id := catalog.BuildingID(chi.URLParam(r, "id"))

	b, err := h.Store.GetBuilding(r.Context(), id)
	if errors.Is(err, sqlite.ErrBuildingNotFound) {
		writeError(w, http.StatusNotFound, "Building not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load building", err)
		return
	}

	available := b.Units.Available()
	dtos := make([]UnitDTO, len(available))
	for i, u := range available {
		dtos[i] = toUnitDTO(u)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// QUOTE HANDLERS
// =============================================================================

// CreateQuote prices a move-in for one building.
// POST /api/buildings/{id}/quote
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := catalog.BuildingID(chi.URLParam(r, "id"))

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	moveIn, err := calendar.ParseDate(req.MoveInDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid move_in_date, expected YYYY-MM-DD", err)
		return
	}

	b, err := h.Store.GetBuilding(ctx, id)
	if errors.Is(err, sqlite.ErrBuildingNotFound) {
		writeError(w, http.StatusNotFound, "Building not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load building", err)
		return
	}

	quote, err := h.currentQuoter().Quote(b, catalog.UnitID(req.UnitID), pricing.MoveIn{
		Date:    moveIn,
		Parking: req.IncludeParking,
		Storage: req.IncludeStorage,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to price move-in", err)
		return
	}

	resp := QuoteResponse{
		QuoteID: uuid.NewString(),
		Selection: SelectionDTO{
			Outcome:     string(quote.Selection.Outcome),
			RequestedID: string(quote.Selection.RequestedID),
		},
	}
	record := sqlite.QuoteRecord{
		ID:              resp.QuoteID,
		BuildingID:      b.ID,
		RequestedUnitID: quote.Selection.RequestedID,
		Outcome:         string(quote.Selection.Outcome),
		MoveIn:          moveIn.String(),
		Parking:         req.IncludeParking,
		Storage:         req.IncludeStorage,
	}

	if quote.Selection.Unit != nil {
		resp.Selection.UnitID = string(quote.Selection.Unit.ID)
		record.UnitID = quote.Selection.Unit.ID
	}
	if quote.Details != nil {
		resp.Details = &UnitDetailsDTO{
			Bedrooms:  quote.Details.Bedrooms,
			Bathrooms: quote.Details.Bathrooms,
			Typology:  quote.Details.Typology,
			M2:        quote.Details.M2,
		}
	}
	if quote.Breakdown != nil {
		bd := toBreakdownDTO(*quote.Breakdown)
		resp.Breakdown = &bd
		resp.Rent = quote.Rent
		record.MonthlyRent = quote.Rent
		record.TotalFirstPayment = quote.Breakdown.TotalFirstPayment
	}

	if err := h.Store.SaveQuote(ctx, record); err != nil {
		// The quote itself is correct; losing an audit row is logged,
		// not surfaced to the tenant.
		h.Log.Error().Err(err).Str("quote_id", record.ID).Msg("failed to persist quote audit row")
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListQuotes returns recent quote audit rows.
// GET /api/quotes?limit=N
func (h *Handler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.Store.ListQuotes(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list quotes", err)
		return
	}

	dtos := make([]QuoteRecordDTO, len(records))
	for i, q := range records {
		dtos[i] = toQuoteRecordDTO(q)
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": dtos})
}

// =============================================================================
// POLICY HANDLERS
// =============================================================================

// GetPolicy returns the effective pricing constants.
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	policy := h.quoter.Policy
	h.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{"config": factory.ToJSON(policy)})
}

// UpdatePolicy replaces the live pricing policy from a JSON document.
// Cached breakdowns are dropped since they were computed under the old
// constants.
func (h *Handler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req UpdatePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	policy, err := h.Factory.FromJSON(req.Config)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid policy document", err)
		return
	}

	h.mu.Lock()
	h.quoter = pricing.NewQuoter(policy, h.quoter.Resolver, pricing.NewCache())
	h.mu.Unlock()

	h.Log.Info().Msg("pricing policy replaced")
	writeJSON(w, http.StatusOK, map[string]any{"config": factory.ToJSON(policy)})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Code = http.StatusText(status)
	}
	writeJSON(w, status, resp)
}
