/*
normalize.go - Typology-driven attribute normalization

PURPOSE:
  Raw unit records are imported from heterogeneous listing feeds, so
  derived attributes need fixed business overrides before display or
  pricing. The one hard rule: a studio always reports exactly one room
  and one bathroom, whatever the feed stored.

TOTALITY:
  Normalize never fails. Missing or zero fields degrade to documented
  defaults, never to an error.
*/
package catalog

// DefaultM2 is assumed when a unit record has no area.
const DefaultM2 = 45.0

// UnitDetails is the normalized, display-ready view of a unit.
type UnitDetails struct {
	Bedrooms  int     `json:"dormitorios"`
	Bathrooms int     `json:"banos"`
	Typology  string  `json:"tipologia"`
	M2        float64 `json:"m2"`
}

// Normalize applies typology overrides and defaults to a raw unit.
//
// Studio/Estudio (case-sensitive) force 1 bedroom and 1 bathroom even
// when the raw record says 0 bedrooms or 2 bathrooms. Any other
// typology passes the raw counts through, with absent values defaulting
// to 1 (a listed apartment has at least one room and one bathroom).
func Normalize(u Unit) UnitDetails {
	typology := u.Typology
	if typology == "" {
		typology = DefaultTypology
	}

	d := UnitDetails{
		Typology: typology,
		M2:       u.M2,
	}
	if d.M2 <= 0 {
		d.M2 = DefaultM2
	}

	if IsStudio(typology) {
		d.Bedrooms = 1
		d.Bathrooms = 1
		return d
	}

	d.Bedrooms = u.Bedrooms
	if d.Bedrooms <= 0 {
		d.Bedrooms = 1
	}
	d.Bathrooms = u.Bathrooms
	if d.Bathrooms <= 0 {
		d.Bathrooms = 1
	}
	return d
}
