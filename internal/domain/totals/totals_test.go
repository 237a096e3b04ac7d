package totals

import (
	"math"
	"testing"

	"meraki_estimator/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kitchenDraft() entities.EstimateDraft {
	return entities.EstimateDraft{
		SelectedAreas: []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}},
		Areas: map[string]entities.DraftArea{
			"kitchen": {Slug: "kitchen", Label: "Kitchen", Rooms: []entities.DraftRoom{
				{Name: "Kitchen 1", Area: 10, Optionals: []entities.DraftRoomOptional{
					{Category: "floorings", ID: "resin", Label: "Resin", Price: 500},
				}},
			}},
		},
	}
}

func TestCompute_SingleKitchen(t *testing.T) {
	got := Compute(kitchenDraft())
	assert.Equal(t, Totals{Areas: 1, Rooms: 1, M2: 10, OptionalsCount: 1, Base: 7000, Optionals: 500, Total: 7500}, got)
}

func TestCompute_Empty(t *testing.T) {
	assert.Equal(t, Totals{}, Compute(entities.NewEstimateDraft()))
}

func TestItemize_IgnoresDeselectedAreas(t *testing.T) {
	d := kitchenDraft()
	d.Areas["parking"] = entities.DraftArea{Slug: "parking", Label: "Parking", Rooms: []entities.DraftRoom{{Name: "P1", Area: 20}}}

	s := Itemize(d)
	require.Len(t, s.Areas, 1)
	assert.Equal(t, "kitchen", s.Areas[0].Slug)
	assert.Equal(t, 7500.0, s.Totals.Total)
}

func TestItemize_FallbackWhenNothingSelected(t *testing.T) {
	d := kitchenDraft()
	d.SelectedAreas = nil
	d.Areas["bathrooms"] = entities.DraftArea{Slug: "bathrooms", Label: "Bathrooms", Rooms: []entities.DraftRoom{{Name: "B1", Area: 2}}}

	s := Itemize(d)
	require.Len(t, s.Areas, 2)
	assert.Equal(t, "bathrooms", s.Areas[0].Slug)
	assert.Equal(t, "kitchen", s.Areas[1].Slug)
	assert.Equal(t, 1000.0+7000.0, s.Totals.Base)
	assert.Equal(t, 2, s.Totals.Rooms)
	assert.Equal(t, 12.0, s.Totals.M2)
}

func TestItemize_ZeroAreaAlerts(t *testing.T) {
	d := entities.EstimateDraft{
		SelectedAreas: []entities.SelectedArea{{Slug: "bedrooms", Label: "Bedrooms"}},
		Areas: map[string]entities.DraftArea{
			"bedrooms": {Slug: "bedrooms", Label: "Bedrooms", Rooms: []entities.DraftRoom{
				{Name: "Guest", Area: 0, Optionals: []entities.DraftRoomOptional{{Category: "walls", ID: "paint", Label: "Paint", Price: 300}}},
				{Name: "", Area: math.Inf(1)},
				{Name: "Main", Area: 12},
			}},
		},
	}
	s := Itemize(d)
	assert.Equal(t, []string{`room "Guest" in Bedrooms has 0 m²`, `room "Bedrooms 2" in Bedrooms has 0 m²`}, s.Alerts)
	assert.Equal(t, 12.0*600, s.Totals.Base)
	assert.Equal(t, 300.0, s.Totals.Optionals)
	assert.Equal(t, 3, s.Totals.Rooms)
	assert.Equal(t, 300.0, s.Areas[0].Rooms[0].Total)
}

func TestItemize_UnknownAreaUsesDefaultRate(t *testing.T) {
	d := entities.EstimateDraft{
		SelectedAreas: []entities.SelectedArea{{Slug: "wine-cellar", Label: "Wine cellar"}},
		Areas: map[string]entities.DraftArea{
			"wine-cellar": {Slug: "wine-cellar", Label: "Wine cellar", Rooms: []entities.DraftRoom{{Name: "W", Area: 2}}},
		},
	}
	s := Itemize(d)
	assert.Equal(t, 800.0, s.Areas[0].UnitPrice)
	assert.Equal(t, 1600.0, s.Totals.Total)
}

func TestItemize_Deterministic(t *testing.T) {
	d := kitchenDraft()
	d.SelectedAreas = nil
	for _, slug := range []string{"storage", "parking", "bedrooms", "dining-area"} {
		d.Areas[slug] = entities.DraftArea{Slug: slug, Label: slug, Rooms: []entities.DraftRoom{{Name: slug, Area: 3.3}}}
	}
	first := Itemize(d)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Itemize(d))
	}
}
