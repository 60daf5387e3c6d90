/*
Package catalog models the rentable inventory: buildings and their units.

PURPOSE:
  Holds the read-only records the pricing core consumes, plus the two
  derivation steps that must run before any price is computed:
  - Resolve: pick which unit of a building applies (resolver.go)
  - Normalize: apply typology overrides to derived attributes (normalize.go)

KEY CONCEPTS IN THIS FILE (types.go):
  - Unit: a single rentable apartment, priced in CLP minor units
  - Building: one property with an ordered unit list and a base price
  - UnitCatalog: ordered unit collection; order picks the fallback unit

DATA OWNERSHIP:
  Units and buildings come from the listing store. This package never
  mutates them; every derived value is a fresh struct.

JSON FIELD NAMES:
  Wire names follow the upstream listing feed, which is Spanish-language
  (tipologia, disponible, dormitorios, banos, precio_desde).

SEE ALSO:
  - resolver.go: unit selection
  - normalize.go: typology overrides
  - store/sqlite: persistence of these records
*/
package catalog

// =============================================================================
// IDENTIFIERS
// =============================================================================

type UnitID string
type BuildingID string

// =============================================================================
// TYPOLOGY CODES
// =============================================================================

// Reserved typology values. Studio units carry special normalization
// rules; every other code (1D1B, 2D1B, 2D2B, 3D2B...) passes through.
const (
	TypologyStudio  = "Studio"
	TypologyEstudio = "Estudio"

	// DefaultTypology is assumed when a unit record carries no code.
	DefaultTypology = "1D1B"
)

// IsStudio reports whether a typology code denotes a studio apartment.
// The match is case-sensitive: only the two canonical spellings qualify.
func IsStudio(code string) bool {
	return code == TypologyStudio || code == TypologyEstudio
}

// =============================================================================
// UNIT - One rentable apartment
// =============================================================================

// Unit is an immutable inventory record. MonthlyRent is in minor
// currency units (CLP pesos); zero means the building base price applies.
type Unit struct {
	ID         UnitID     `json:"id"`
	BuildingID BuildingID `json:"buildingId"`
	Typology   string     `json:"tipologia"`
	MonthlyRent int64     `json:"price"`
	Available  bool       `json:"disponible"`

	// Raw derived attributes, pre-normalization. Studios may legitimately
	// store 0 bedrooms here.
	Bedrooms  int     `json:"dormitorios"`
	Bathrooms int     `json:"banos"`
	M2        float64 `json:"m2,omitempty"`

	// Descriptive fields, unused by the pricing engine.
	Floor        int    `json:"piso,omitempty"`
	Orientation  string `json:"orientacion,omitempty"`
	HasParking   bool   `json:"estacionamiento,omitempty"`
	HasStorage   bool   `json:"bodega,omitempty"`
	Furnished    bool   `json:"amoblado,omitempty"`
	PetFriendly  bool   `json:"petFriendly,omitempty"`
	InternalCode string `json:"codigoInterno,omitempty"`
}

// =============================================================================
// BUILDING - One property with its unit inventory
// =============================================================================

type Building struct {
	ID      BuildingID `json:"id"`
	Name    string     `json:"name"`
	Comuna  string     `json:"comuna"`

	// BasePrice ("precio desde") is the fallback rent when a unit has no
	// price of its own. Zero means no fallback is published.
	BasePrice int64 `json:"precio_desde,omitempty"`

	// Units in feed insertion order. Order is load-bearing: the resolver
	// picks Units[0] of the available subset as the fallback.
	Units UnitCatalog `json:"units"`
}

// UnitCatalog is an ordered collection of units belonging to one building.
type UnitCatalog []Unit

// Available returns the available subset, preserving catalog order.
func (c UnitCatalog) Available() UnitCatalog {
	out := make(UnitCatalog, 0, len(c))
	for _, u := range c {
		if u.Available {
			out = append(out, u)
		}
	}
	return out
}

// Find returns the unit with the given id, or nil.
func (c UnitCatalog) Find(id UnitID) *Unit {
	for i := range c {
		if c[i].ID == id {
			u := c[i]
			return &u
		}
	}
	return nil
}

// =============================================================================
// RENT RESOLUTION
// =============================================================================

// FallbackBasePrice is the last-resort monthly rent when neither the
// unit nor the building publishes a price. Inherited from the listing
// platform's floor price.
const FallbackBasePrice int64 = 290000

// EffectiveRent returns the monthly rent the pricing engine should use:
// the unit's own price, else the building base price, else the floor.
func EffectiveRent(u *Unit, b Building) int64 {
	if u != nil && u.MonthlyRent > 0 {
		return u.MonthlyRent
	}
	if b.BasePrice > 0 {
		return b.BasePrice
	}
	return FallbackBasePrice
}
