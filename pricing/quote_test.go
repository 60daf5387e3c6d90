package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhaus/movein-engine/catalog"
	"github.com/openhaus/movein-engine/pricing"
)

func quoterBuilding() catalog.Building {
	return catalog.Building{
		ID:        "bld-nunoa",
		Name:      "Edificio Irarrazaval",
		Comuna:    "Nunoa",
		BasePrice: 390000,
		Units: catalog.UnitCatalog{
			{ID: "st-01", Typology: "Estudio", MonthlyRent: 350000, Available: true, Bedrooms: 0, Bathrooms: 1},
			{ID: "ap-11", Typology: "2D1B", MonthlyRent: 500000, Available: true, Bedrooms: 2, Bathrooms: 1, M2: 58},
			{ID: "ap-12", Typology: "2D2B", Available: true, Bedrooms: 2, Bathrooms: 2},
		},
	}
}

func newQuoter() *pricing.Quoter {
	return pricing.NewQuoter(pricing.DefaultPolicy(), catalog.NewResolver(nil), pricing.NewCache())
}

func TestQuote_EndToEnd(t *testing.T) {
	// GIVEN: an available 2D1B at 500,000 and a full 30-day month
	// THEN: exact selection, normalized details, the pinned 520,000 total

	q := newQuoter()
	mv := pricing.MoveIn{Date: date(2025, time.April, 1)}

	quote, err := q.Quote(quoterBuilding(), "ap-11", mv)
	require.NoError(t, err)

	assert.Equal(t, catalog.OutcomeExact, quote.Selection.Outcome)
	require.NotNil(t, quote.Details)
	assert.Equal(t, 2, quote.Details.Bedrooms)
	assert.Equal(t, 58.0, quote.Details.M2)
	assert.Equal(t, int64(500000), quote.Rent)
	require.NotNil(t, quote.Breakdown)
	assert.Equal(t, int64(520000), quote.Breakdown.TotalFirstPayment)
}

func TestQuote_StudioNormalization(t *testing.T) {
	q := newQuoter()

	quote, err := q.Quote(quoterBuilding(), "st-01", pricing.MoveIn{Date: date(2025, time.April, 1)})
	require.NoError(t, err)

	require.NotNil(t, quote.Details)
	assert.Equal(t, 1, quote.Details.Bedrooms, "estudio reports one room despite raw 0")
	assert.Equal(t, 1, quote.Details.Bathrooms)
}

func TestQuote_BuildingBasePriceFallback(t *testing.T) {
	// GIVEN: ap-12 has no price of its own
	// THEN: the building's precio_desde applies

	q := newQuoter()

	quote, err := q.Quote(quoterBuilding(), "ap-12", pricing.MoveIn{Date: date(2025, time.April, 1)})
	require.NoError(t, err)
	assert.Equal(t, int64(390000), quote.Rent)
}

func TestQuote_NoneOutcome_NoError(t *testing.T) {
	b := quoterBuilding()
	for i := range b.Units {
		b.Units[i].Available = false
	}
	q := newQuoter()

	quote, err := q.Quote(b, "ap-11", pricing.MoveIn{Date: date(2025, time.April, 1)})
	require.NoError(t, err)

	assert.Equal(t, catalog.OutcomeNone, quote.Selection.Outcome)
	assert.Nil(t, quote.Selection.Unit)
	assert.Nil(t, quote.Details)
	assert.Nil(t, quote.Breakdown)
}

func TestQuote_InvalidDate(t *testing.T) {
	q := newQuoter()
	_, err := q.Quote(quoterBuilding(), "ap-11", pricing.MoveIn{})
	assert.ErrorIs(t, err, pricing.ErrInvalidMoveInDate)
}

func TestQuote_CachesBreakdown(t *testing.T) {
	cache := pricing.NewCache()
	q := pricing.NewQuoter(pricing.DefaultPolicy(), catalog.NewResolver(nil), cache)
	mv := pricing.MoveIn{Date: date(2025, time.April, 1), Parking: true}

	first, err := q.Quote(quoterBuilding(), "ap-11", mv)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := q.Quote(quoterBuilding(), "ap-11", mv)
	require.NoError(t, err)
	assert.Equal(t, *first.Breakdown, *second.Breakdown)
	assert.Equal(t, 1, cache.Len(), "repeat quote must hit the cache, not add entries")

	// A changed add-on is a different tuple.
	mv.Parking = false
	_, err = q.Quote(quoterBuilding(), "ap-11", mv)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestQuote_NilCacheWorks(t *testing.T) {
	q := pricing.NewQuoter(pricing.DefaultPolicy(), catalog.NewResolver(nil), nil)
	quote, err := q.Quote(quoterBuilding(), "", pricing.MoveIn{Date: date(2025, time.April, 1)})
	require.NoError(t, err)
	require.NotNil(t, quote.Breakdown)
}
