/*
quote.go - The resolve -> normalize -> price pipeline

PURPOSE:
  Bundles the three derivation steps a caller otherwise has to wire by
  hand. A Quote carries everything the presentation layer renders:
  which unit was selected (and how), its normalized details, and the
  first-payment breakdown.

NONE OUTCOME:
  A building with no available units yields a Quote with a nil unit,
  nil details and nil breakdown, and NO error. "Nothing to rent" is a
  normal state the UI renders, not a failure.
*/
package pricing

import (
	"github.com/openhaus/movein-engine/catalog"
)

// Quote is the complete pricing answer for one building + move-in
// context. Plain immutable data, rebuilt on every call.
type Quote struct {
	Selection catalog.Selection    `json:"selection"`
	Details   *catalog.UnitDetails `json:"details,omitempty"`
	Rent      int64                `json:"monthly_rent,omitempty"`
	Breakdown *Breakdown           `json:"breakdown,omitempty"`
}

// Quoter runs the pipeline with a fixed policy and resolver. Safe for
// concurrent use; the optional Cache memoizes breakdowns.
type Quoter struct {
	Policy   Policy
	Resolver *catalog.Resolver
	Cache    *Cache
}

func NewQuoter(p Policy, r *catalog.Resolver, c *Cache) *Quoter {
	if r == nil {
		r = catalog.NewResolver(nil)
	}
	return &Quoter{Policy: p, Resolver: r, Cache: c}
}

// Quote resolves the active unit of b, normalizes it, and prices the
// move-in. The only error condition is an invalid move-in date.
func (q *Quoter) Quote(b catalog.Building, requestedID catalog.UnitID, mv MoveIn) (Quote, error) {
	if err := mv.Date.Validate(); err != nil {
		return Quote{}, ErrInvalidMoveInDate
	}

	sel := q.Resolver.Resolve(b, requestedID)
	if sel.Outcome == catalog.OutcomeNone {
		return Quote{Selection: sel}, nil
	}

	details := catalog.Normalize(*sel.Unit)
	rent := catalog.EffectiveRent(sel.Unit, b)

	key := CacheKey{
		UnitID:  sel.Unit.ID,
		Rent:    rent,
		Parking: mv.Parking,
		Storage: mv.Storage,
		Date:    mv.Date.String(),
	}
	if bd, ok := q.Cache.Get(key); ok {
		return Quote{Selection: sel, Details: &details, Rent: rent, Breakdown: &bd}, nil
	}

	bd, err := ComputeFirstPayment(rent, q.Policy, mv)
	if err != nil {
		return Quote{}, err
	}
	q.Cache.Put(key, bd)

	return Quote{Selection: sel, Details: &details, Rent: rent, Breakdown: &bd}, nil
}
