/*
resolver.go - Unit selection with fallback semantics

PURPOSE:
  Decides which unit of a building a prospective tenant is pricing.
  Callers may request a specific unit id (deep link, unit selector);
  when that id is missing or unavailable, the resolver degrades to the
  first available unit rather than failing.

ALGORITHM:
  1. Filter the catalog to available units (order preserved)
  2. Requested id matches an available unit  -> exact
  3. Requested id given but unmatched        -> warn, fall through
  4. Any available unit                      -> fallback (first in order)
  5. No available units                      -> none (nil unit), warn

OBSERVABILITY:
  Misses and fallbacks are business anomalies worth tracking (stale
  links, sold-out buildings), so the resolver emits structured events
  through an injected EventLogger. Logging never changes the result.

SEE ALSO:
  - types.go: Unit, Building, UnitCatalog
  - obs/logging.go: zerolog-backed EventLogger
*/
package catalog

// =============================================================================
// RESOLUTION OUTCOME
// =============================================================================

type Outcome string

const (
	// OutcomeExact: the requested unit id matched an available unit.
	OutcomeExact Outcome = "exact"
	// OutcomeFallback: the first available unit was substituted.
	OutcomeFallback Outcome = "fallback"
	// OutcomeNone: the building has no available units at all.
	OutcomeNone Outcome = "none"
)

// Selection is the ephemeral result of one resolution call.
// Unit is a copy; mutating it never touches the catalog.
type Selection struct {
	Unit        *Unit   `json:"unit"`
	Outcome     Outcome `json:"outcome"`
	RequestedID UnitID  `json:"requested_id,omitempty"`
}

// =============================================================================
// EVENT LOGGER - Injected observability collaborator
// =============================================================================

// Fields carries structured event context.
type Fields map[string]any

// EventLogger receives resolution anomaly events. Implementations must
// be side-effect-only: the resolver's return value never depends on them.
type EventLogger interface {
	Warn(event string, fields Fields)
	Info(event string, fields Fields)
}

// Resolution event names.
const (
	EventResolutionMiss     = "unit_resolution_miss"
	EventResolutionFallback = "unit_resolution_fallback"
	EventNoAvailableUnits   = "no_available_units"
)

// NopLogger discards all events. Used when no logger is injected.
type NopLogger struct{}

func (NopLogger) Warn(string, Fields) {}
func (NopLogger) Info(string, Fields) {}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver selects a building's active unit. The zero value works and
// logs nothing.
type Resolver struct {
	Log EventLogger
}

func NewResolver(log EventLogger) *Resolver {
	if log == nil {
		log = NopLogger{}
	}
	return &Resolver{Log: log}
}

// Resolve picks the unit whose price applies. Pass an empty requestedID
// to always take the first available unit. Resolve is pure with respect
// to its result: calling it twice with the same inputs yields
// structurally equal selections.
func (r *Resolver) Resolve(b Building, requestedID UnitID) Selection {
	log := r.Log
	if log == nil {
		log = NopLogger{}
	}

	available := b.Units.Available()

	if requestedID != "" {
		if u := available.Find(requestedID); u != nil {
			return Selection{Unit: u, Outcome: OutcomeExact, RequestedID: requestedID}
		}
		log.Warn(EventResolutionMiss, Fields{
			"building_id":       b.ID,
			"requested_unit_id": requestedID,
			"available_units":   len(available),
		})
	}

	if len(available) > 0 {
		u := available[0]
		if requestedID != "" {
			log.Info(EventResolutionFallback, Fields{
				"building_id":       b.ID,
				"requested_unit_id": requestedID,
				"fallback_unit_id":  u.ID,
			})
		}
		return Selection{Unit: &u, Outcome: OutcomeFallback, RequestedID: requestedID}
	}

	log.Warn(EventNoAvailableUnits, Fields{
		"building_id":       b.ID,
		"requested_unit_id": requestedID,
		"total_units":       len(b.Units),
	})
	return Selection{Unit: nil, Outcome: OutcomeNone, RequestedID: requestedID}
}
