package sqlite

import (
	"context"

	"github.com/openhaus/movein-engine/catalog"
)

// Seed loads demo buildings for local development. Existing rows with
// the same ids are replaced.
func (s *Store) Seed(ctx context.Context) error {
	for _, b := range demoBuildings() {
		if err := s.SaveBuilding(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func demoBuildings() []catalog.Building {
	return []catalog.Building{
		{
			ID:        "bld-alameda-2024",
			Name:      "Edificio Alameda",
			Comuna:    "Santiago Centro",
			BasePrice: 310000,
			Units: catalog.UnitCatalog{
				{ID: "ala-0301", Typology: "Estudio", MonthlyRent: 330000, Available: true, Bedrooms: 0, Bathrooms: 1, M2: 28, Floor: 3, Orientation: "NE"},
				{ID: "ala-0512", Typology: "1D1B", MonthlyRent: 420000, Available: true, Bedrooms: 1, Bathrooms: 1, M2: 38, Floor: 5, Orientation: "N", HasParking: true},
				{ID: "ala-0907", Typology: "2D1B", MonthlyRent: 495000, Available: false, Bedrooms: 2, Bathrooms: 1, M2: 52, Floor: 9},
				{ID: "ala-1204", Typology: "2D2B", MonthlyRent: 560000, Available: true, Bedrooms: 2, Bathrooms: 2, M2: 61, Floor: 12, HasStorage: true, PetFriendly: true},
			},
		},
		{
			ID:        "bld-irarrazaval-88",
			Name:      "Edificio Irarrazaval 88",
			Comuna:    "Nunoa",
			BasePrice: 390000,
			Units: catalog.UnitCatalog{
				{ID: "irz-0202", Typology: "1D1B", MonthlyRent: 450000, Available: true, Bedrooms: 1, Bathrooms: 1, M2: 41, Floor: 2},
				{ID: "irz-0615", Typology: "Studio", Available: true, Bedrooms: 0, Bathrooms: 1, M2: 26, Floor: 6},
				{ID: "irz-1101", Typology: "3D2B", MonthlyRent: 780000, Available: true, Bedrooms: 3, Bathrooms: 2, M2: 84, Floor: 11, HasParking: true, HasStorage: true, Furnished: true},
			},
		},
		{
			// Sold out: exercises the "none" resolution outcome.
			ID:        "bld-ecuador-710",
			Name:      "Edificio Ecuador",
			Comuna:    "Estacion Central",
			BasePrice: 295000,
			Units: catalog.UnitCatalog{
				{ID: "ecu-0404", Typology: "1D1B", MonthlyRent: 360000, Available: false, Bedrooms: 1, Bathrooms: 1, M2: 35, Floor: 4},
				{ID: "ecu-0808", Typology: "2D1B", MonthlyRent: 430000, Available: false, Bedrooms: 2, Bathrooms: 1, M2: 48, Floor: 8},
			},
		},
	}
}
