// Package totals derives area, room and money aggregates from a draft.
//
// Everything here is pure: the same draft always yields an identical result,
// which lets callers cache a result until the draft changes.
package totals

import (
	"fmt"
	"math"
	"sort"

	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
)

// Totals is the compact aggregate shown on the dashboard and wizard footers.
type Totals struct {
	Areas          int     `json:"areas"`
	Rooms          int     `json:"rooms"`
	M2             float64 `json:"m2"`
	OptionalsCount int     `json:"optionalsCount"`
	Base           float64 `json:"base"`
	Optionals      float64 `json:"optionals"`
	Total          float64 `json:"total"`
}

// RoomBreakdown prices one room. Index is the 1-based room position.
type RoomBreakdown struct {
	Index          int                          `json:"index"`
	Name           string                       `json:"name"`
	Area           float64                      `json:"area"`
	Base           float64                      `json:"base"`
	Optionals      []entities.DraftRoomOptional `json:"optionals"`
	OptionalsTotal float64                      `json:"optionalsTotal"`
	Total          float64                      `json:"total"`
}

type AreaBreakdown struct {
	Slug      string          `json:"slug"`
	Label     string          `json:"label"`
	UnitPrice float64         `json:"unitPrice"`
	Rooms     []RoomBreakdown `json:"rooms"`
	M2        float64         `json:"m2"`
	Base      float64         `json:"base"`
	Optionals float64         `json:"optionals"`
	Total     float64         `json:"total"`
}

// Summary is the itemized form used by the project summary page.
type Summary struct {
	Totals Totals          `json:"totals"`
	Areas  []AreaBreakdown `json:"areas"`
	Alerts []string        `json:"alerts"`
}

// Compute returns the aggregate totals of a draft.
func Compute(d entities.EstimateDraft) Totals {
	return Itemize(d).Totals
}

// Itemize returns the per-area, per-room breakdown of a draft.
//
// Only selected areas that have an entry in d.Areas are reported, in selection
// order. When nothing is selected every entry of d.Areas is reported, ordered
// by slug.
func Itemize(d entities.EstimateDraft) Summary {
	s := Summary{Areas: []AreaBreakdown{}, Alerts: []string{}}
	for _, area := range reportingScope(d) {
		ab := itemizeArea(area, &s.Alerts)
		s.Areas = append(s.Areas, ab)

		s.Totals.Areas++
		s.Totals.Rooms += len(ab.Rooms)
		s.Totals.M2 += ab.M2
		s.Totals.Base += ab.Base
		s.Totals.Optionals += ab.Optionals
		for _, r := range ab.Rooms {
			s.Totals.OptionalsCount += len(r.Optionals)
		}
	}
	s.Totals.Total = s.Totals.Base + s.Totals.Optionals
	return s
}

func reportingScope(d entities.EstimateDraft) []entities.DraftArea {
	var out []entities.DraftArea
	if len(d.SelectedAreas) > 0 {
		seen := map[string]bool{}
		for _, sel := range d.SelectedAreas {
			area, ok := d.Areas[sel.Slug]
			if !ok || seen[sel.Slug] {
				continue
			}
			seen[sel.Slug] = true
			if area.Label == "" {
				area.Label = sel.Label
			}
			out = append(out, area)
		}
		return out
	}

	slugs := make([]string, 0, len(d.Areas))
	for slug := range d.Areas {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		out = append(out, d.Areas[slug])
	}
	return out
}

func itemizeArea(area entities.DraftArea, alerts *[]string) AreaBreakdown {
	slug := area.Slug
	if slug == "" {
		slug = area.Label
	}
	unit := pricing.UnitPrice(slug)
	ab := AreaBreakdown{Slug: area.Slug, Label: area.Label, UnitPrice: unit, Rooms: []RoomBreakdown{}}

	for i, room := range area.Rooms {
		rb := RoomBreakdown{Index: i + 1, Name: room.Name, Area: room.Area, Optionals: []entities.DraftRoomOptional{}}
		if validArea(room.Area) {
			rb.Base = room.Area * unit
			ab.M2 += room.Area
		} else {
			*alerts = append(*alerts, zeroAreaAlert(area, i, room))
		}
		for _, o := range room.Optionals {
			rb.Optionals = append(rb.Optionals, o)
			rb.OptionalsTotal += o.Price
		}
		rb.Total = rb.Base + rb.OptionalsTotal

		ab.Rooms = append(ab.Rooms, rb)
		ab.Base += rb.Base
		ab.Optionals += rb.OptionalsTotal
	}
	ab.Total = ab.Base + ab.Optionals
	return ab
}

func validArea(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func zeroAreaAlert(area entities.DraftArea, i int, room entities.DraftRoom) string {
	name := room.Name
	if name == "" {
		name = fmt.Sprintf("%s %d", area.Label, i+1)
	}
	return fmt.Sprintf("room %q in %s has 0 m²", name, area.Label)
}
