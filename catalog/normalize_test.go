package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhaus/movein-engine/catalog"
)

func TestNormalize_StudioAlwaysOneAndOne(t *testing.T) {
	// GIVEN: studio units with arbitrary raw counts (including 0 and 2)
	// THEN: normalized details always report 1 bedroom, 1 bathroom

	cases := []struct {
		name string
		unit catalog.Unit
	}{
		{"studio with zero rooms", catalog.Unit{Typology: "Studio", Bedrooms: 0, Bathrooms: 0}},
		{"estudio with inflated counts", catalog.Unit{Typology: "Estudio", Bedrooms: 3, Bathrooms: 2}},
		{"studio with plausible counts", catalog.Unit{Typology: "Studio", Bedrooms: 1, Bathrooms: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := catalog.Normalize(tc.unit)
			assert.Equal(t, 1, d.Bedrooms)
			assert.Equal(t, 1, d.Bathrooms)
		})
	}
}

func TestNormalize_StudioMatchIsCaseSensitive(t *testing.T) {
	// "studio" lowercase is not a reserved code: raw counts pass through.
	d := catalog.Normalize(catalog.Unit{Typology: "studio", Bedrooms: 2, Bathrooms: 2})
	assert.Equal(t, 2, d.Bedrooms)
	assert.Equal(t, 2, d.Bathrooms)
}

func TestNormalize_PassThroughWithDefaults(t *testing.T) {
	cases := []struct {
		name          string
		unit          catalog.Unit
		wantBedrooms  int
		wantBathrooms int
	}{
		{"full record", catalog.Unit{Typology: "2D2B", Bedrooms: 2, Bathrooms: 2}, 2, 2},
		{"missing bedrooms defaults to 1", catalog.Unit{Typology: "1D1B", Bathrooms: 1}, 1, 1},
		{"missing bathrooms defaults to 1", catalog.Unit{Typology: "3D2B", Bedrooms: 3}, 3, 1},
		{"empty record", catalog.Unit{}, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := catalog.Normalize(tc.unit)
			assert.Equal(t, tc.wantBedrooms, d.Bedrooms)
			assert.Equal(t, tc.wantBathrooms, d.Bathrooms)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	d := catalog.Normalize(catalog.Unit{})
	assert.Equal(t, catalog.DefaultTypology, d.Typology)
	assert.Equal(t, catalog.DefaultM2, d.M2)

	d = catalog.Normalize(catalog.Unit{Typology: "2D1B", M2: 62.5})
	assert.Equal(t, "2D1B", d.Typology)
	assert.Equal(t, 62.5, d.M2)
}

func TestNormalize_NeverFails(t *testing.T) {
	// Totality: arbitrary garbage degrades to defaults, never panics.
	assert.NotPanics(t, func() {
		catalog.Normalize(catalog.Unit{Typology: "???", Bedrooms: -5, Bathrooms: -1, M2: -10})
	})
	d := catalog.Normalize(catalog.Unit{Typology: "???", Bedrooms: -5, Bathrooms: -1, M2: -10})
	assert.Equal(t, 1, d.Bedrooms)
	assert.Equal(t, 1, d.Bathrooms)
	assert.Equal(t, catalog.DefaultM2, d.M2)
}
