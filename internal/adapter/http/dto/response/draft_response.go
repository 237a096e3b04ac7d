package response

import (
	"sort"
	"time"

	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/totals"
)

type SelectedAreaResponse struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type OptionalResponse struct {
	Category string  `json:"category"`
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
}

type RoomResponse struct {
	Index     int                `json:"index"`
	Name      string             `json:"name"`
	Area      float64            `json:"area"`
	Optionals []OptionalResponse `json:"optionals"`
}

type AreaResponse struct {
	Slug     string         `json:"slug"`
	Label    string         `json:"label"`
	Selected bool           `json:"selected"`
	Rooms    []RoomResponse `json:"rooms"`
}

type DraftResponse struct {
	EstimateID    string                 `json:"estimate_id"`
	Finalized     bool                   `json:"finalized"`
	SelectedAreas []SelectedAreaResponse `json:"selected_areas"`
	Areas         []AreaResponse         `json:"areas"`
}

// FromDraft lists selected areas first in selection order, then retained
// unselected areas by slug.
func FromDraft(estimateID string, finalized bool, d entities.EstimateDraft) DraftResponse {
	res := DraftResponse{
		EstimateID:    estimateID,
		Finalized:     finalized,
		SelectedAreas: make([]SelectedAreaResponse, 0, len(d.SelectedAreas)),
		Areas:         make([]AreaResponse, 0, len(d.Areas)),
	}
	selected := map[string]bool{}
	for _, a := range d.SelectedAreas {
		selected[a.Slug] = true
		res.SelectedAreas = append(res.SelectedAreas, SelectedAreaResponse{Slug: a.Slug, Label: a.Label})
		if area, ok := d.Areas[a.Slug]; ok {
			res.Areas = append(res.Areas, fromArea(area, true))
		}
	}

	rest := make([]string, 0, len(d.Areas))
	for slug := range d.Areas {
		if !selected[slug] {
			rest = append(rest, slug)
		}
	}
	sort.Strings(rest)
	for _, slug := range rest {
		res.Areas = append(res.Areas, fromArea(d.Areas[slug], false))
	}
	return res
}

func fromArea(a entities.DraftArea, selected bool) AreaResponse {
	return AreaResponse{Slug: a.Slug, Label: a.Label, Selected: selected, Rooms: FromRooms(a.Rooms)}
}

func FromRooms(rooms []entities.DraftRoom) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i, r := range rooms {
		out = append(out, RoomResponse{Index: i + 1, Name: r.Name, Area: r.Area, Optionals: fromOptionals(r.Optionals)})
	}
	return out
}

func fromOptionals(opts []entities.DraftRoomOptional) []OptionalResponse {
	out := make([]OptionalResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, OptionalResponse(o))
	}
	return out
}

type TotalsResponse struct {
	Areas          int     `json:"areas"`
	Rooms          int     `json:"rooms"`
	M2             float64 `json:"m2"`
	OptionalsCount int     `json:"optionals_count"`
	Base           float64 `json:"base"`
	Optionals      float64 `json:"optionals"`
	Total          float64 `json:"total"`
	TotalDisplay   string  `json:"total_display"`
}

func FromTotals(t totals.Totals) TotalsResponse {
	return TotalsResponse{
		Areas:          t.Areas,
		Rooms:          t.Rooms,
		M2:             t.M2,
		OptionalsCount: t.OptionalsCount,
		Base:           t.Base,
		Optionals:      t.Optionals,
		Total:          t.Total,
		TotalDisplay:   pricing.FormatEuro(t.Total),
	}
}

type SummaryResponse struct {
	EstimateID string                 `json:"estimate_id"`
	Totals     TotalsResponse         `json:"totals"`
	Areas      []totals.AreaBreakdown `json:"areas"`
	Alerts     []string               `json:"alerts"`
}

func FromSummary(estimateID string, s *totals.Summary) SummaryResponse {
	res := SummaryResponse{EstimateID: estimateID, Areas: []totals.AreaBreakdown{}, Alerts: []string{}}
	if s == nil {
		return res
	}
	res.Totals = FromTotals(s.Totals)
	if s.Areas != nil {
		res.Areas = s.Areas
	}
	if s.Alerts != nil {
		res.Alerts = s.Alerts
	}
	return res
}

// ExportResponse is the downloadable snapshot of one estimate.
type ExportResponse struct {
	ExportedAt time.Time        `json:"exported_at"`
	Estimate   EstimateResponse `json:"estimate"`
	Draft      DraftResponse    `json:"draft"`
	Summary    SummaryResponse  `json:"summary"`
}

type RateResponse struct {
	Slug      string  `json:"slug"`
	UnitPrice float64 `json:"unit_price"`
	Display   string  `json:"display"`
}

func FromRate(slug string, price float64) RateResponse {
	return RateResponse{Slug: slug, UnitPrice: price, Display: pricing.FormatEuro(price) + "/m²"}
}

// FromRates lists the rate table sorted by slug.
func FromRates(rates map[string]float64) []RateResponse {
	slugs := make([]string, 0, len(rates))
	for slug := range rates {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	out := make([]RateResponse, 0, len(slugs))
	for _, slug := range slugs {
		out = append(out, FromRate(slug, rates[slug]))
	}
	return out
}
