// Package pricing holds the static per-area rate table used to price rooms.
package pricing

import (
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultUnitPrice is charged for areas missing from the rate table.
const DefaultUnitPrice = 800.0

// areaUnitPrice is expressed in € per m².
var areaUnitPrice = map[string]float64{
	"entrance-circulation":   800,
	"living-area":            650,
	"kitchen":                700,
	"dining-area":            600,
	"bedrooms":               600,
	"bathrooms":              500,
	"pantry-laundry-utility": 550,
	"storage":                450,
	"outdoor-living-areas":   500,
	"garden-outdoor-leisure": 400,
	"parking":                350,
	"dressing-room":          550,
	"technical-rooms":        450,
}

// NormalizeSlug decodes URL escapes, trims whitespace and strips a trailing
// colon, so "kitchen:" and " kitchen" resolve to "kitchen". It repeats until
// nothing changes, which makes NormalizeSlug(NormalizeSlug(s)) == NormalizeSlug(s)
// and keeps stored slugs stable across decode passes.
func NormalizeSlug(slug string) string {
	s := slug
	for {
		next := normalizeOnce(s)
		// every change shortens the string, so this terminates
		if next == s {
			return s
		}
		s = next
	}
}

func normalizeOnce(slug string) string {
	s := strings.TrimSpace(slug)
	if decoded, err := url.PathUnescape(s); err == nil {
		s = decoded
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), ":")
	return strings.TrimSpace(s)
}

// UnitPrice returns the €/m² rate of an area. Unknown areas get DefaultUnitPrice.
func UnitPrice(slug string) float64 {
	if p, ok := areaUnitPrice[NormalizeSlug(slug)]; ok {
		return p
	}
	return DefaultUnitPrice
}

// Rates returns a copy of the rate table.
func Rates() map[string]float64 {
	out := make(map[string]float64, len(areaUnitPrice))
	for k, v := range areaUnitPrice {
		out[k] = v
	}
	return out
}

// FormatEuro renders an amount the way the summary pages display it,
// e.g. "12.450 €".
func FormatEuro(v float64) string {
	return humanize.FormatFloat("#.###,", v) + " €"
}
