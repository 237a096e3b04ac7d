// Package draft converts estimate drafts and the estimate index to and from
// their stored JSON form.
//
// Stored payloads are untrusted: they may come from older clients, manual
// edits or partial writes. Decoding therefore validates field by field and
// drops only the records that fail, never the whole collection.
package draft

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
)

// Decode turns a stored payload into a draft. It never fails: malformed input
// yields an empty draft.
func Decode(raw []byte) entities.EstimateDraft {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return entities.NewEstimateDraft()
	}
	return DecodeValue(v)
}

// DecodeValue is Decode for an already parsed JSON value.
func DecodeValue(v any) entities.EstimateDraft {
	d := entities.NewEstimateDraft()
	obj, ok := v.(map[string]any)
	if !ok {
		return d
	}

	if list, ok := obj["selectedAreas"].([]any); ok {
		seen := map[string]bool{}
		for _, item := range list {
			a, ok := DecodeSelectedArea(item)
			if !ok || seen[a.Slug] {
				continue
			}
			seen[a.Slug] = true
			d.SelectedAreas = append(d.SelectedAreas, a)
		}
	}

	if areas, ok := obj["areas"].(map[string]any); ok {
		for _, key := range areaKeyOrder(areas) {
			a, ok := DecodeArea(key, areas[key])
			if !ok {
				continue
			}
			if _, exists := d.Areas[a.Slug]; exists {
				continue
			}
			d.Areas[a.Slug] = a
		}
	}

	for _, sel := range d.SelectedAreas {
		if _, ok := d.Areas[sel.Slug]; !ok {
			d.Areas[sel.Slug] = entities.DraftArea{Slug: sel.Slug, Label: sel.Label, Rooms: []entities.DraftRoom{}}
		}
	}
	return d
}

// areaKeyOrder lists canonical keys first, then the rest sorted, so that when
// "kitchen" and "kitchen:" both exist the canonical entry wins.
func areaKeyOrder(areas map[string]any) []string {
	keys := make([]string, 0, len(areas))
	for k := range areas {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci := keys[i] == pricing.NormalizeSlug(keys[i])
		cj := keys[j] == pricing.NormalizeSlug(keys[j])
		if ci != cj {
			return ci
		}
		return keys[i] < keys[j]
	})
	return keys
}

// DecodeSelectedArea validates one entry of selectedAreas.
func DecodeSelectedArea(v any) (entities.SelectedArea, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entities.SelectedArea{}, false
	}
	slug, ok := stringField(obj, "slug")
	if !ok {
		return entities.SelectedArea{}, false
	}
	slug = pricing.NormalizeSlug(slug)
	if slug == "" {
		return entities.SelectedArea{}, false
	}
	label, ok := stringField(obj, "label")
	if !ok || strings.TrimSpace(label) == "" {
		label = TitleFromSlug(slug)
	}
	return entities.SelectedArea{Slug: slug, Label: label}, true
}

// DecodeArea validates one entry of the areas map. key is the map key the
// entry was stored under; it is used when the entry carries no slug.
func DecodeArea(key string, v any) (entities.DraftArea, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entities.DraftArea{}, false
	}
	slug := pricing.NormalizeSlug(key)
	if slug == "" {
		if s, ok := stringField(obj, "slug"); ok {
			slug = pricing.NormalizeSlug(s)
		}
	}
	if slug == "" {
		return entities.DraftArea{}, false
	}
	label, ok := stringField(obj, "label")
	if !ok || strings.TrimSpace(label) == "" {
		label = TitleFromSlug(slug)
	}

	a := entities.DraftArea{Slug: slug, Label: label, Rooms: []entities.DraftRoom{}}
	if list, ok := obj["rooms"].([]any); ok {
		for _, item := range list {
			if r, ok := DecodeRoom(item); ok {
				a.Rooms = append(a.Rooms, r)
			}
		}
	}
	return a, true
}

// DecodeRoom validates one room. The area must be numeric (a numeric string is
// accepted); non-positive areas are kept and reported by the totals alerts.
func DecodeRoom(v any) (entities.DraftRoom, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entities.DraftRoom{}, false
	}
	area, ok := numberField(obj, "area")
	if !ok {
		return entities.DraftRoom{}, false
	}
	name, _ := stringField(obj, "name")

	r := entities.DraftRoom{Name: name, Area: area}
	if list, ok := obj["optionals"].([]any); ok {
		for _, item := range list {
			if o, ok := DecodeOptional(item); ok {
				r = r.WithOptional(o)
			}
		}
	}
	return r, true
}

// DecodeOptional validates one chosen finish. Category and id are required; a
// missing price counts as zero, a non-numeric one rejects the record.
func DecodeOptional(v any) (entities.DraftRoomOptional, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entities.DraftRoomOptional{}, false
	}
	category, ok := stringField(obj, "category")
	if !ok || strings.TrimSpace(category) == "" {
		return entities.DraftRoomOptional{}, false
	}
	id, ok := stringField(obj, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return entities.DraftRoomOptional{}, false
	}
	label, ok := stringField(obj, "label")
	if !ok {
		label = id
	}
	price := 0.0
	if _, present := obj["price"]; present {
		if price, ok = numberField(obj, "price"); !ok {
			return entities.DraftRoomOptional{}, false
		}
	}
	return entities.DraftRoomOptional{Category: category, ID: id, Label: label, Price: price}, true
}

// Encode serializes a draft. nil collections are written as empty ones so the
// stored form decodes back to an equal value.
func Encode(d entities.EstimateDraft) string {
	out := entities.EstimateDraft{SelectedAreas: d.SelectedAreas, Areas: map[string]entities.DraftArea{}}
	if out.SelectedAreas == nil {
		out.SelectedAreas = []entities.SelectedArea{}
	}
	for slug, a := range d.Areas {
		if a.Rooms == nil {
			a.Rooms = []entities.DraftRoom{}
		}
		out.Areas[slug] = a
	}
	b, err := json.Marshal(out)
	if err != nil {
		// Only reachable with NaN/Inf values, which the mutators never store.
		return `{"selectedAreas":[],"areas":{}}`
	}
	return string(b)
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

func numberField(obj map[string]any, key string) (float64, bool) {
	switch n := obj[key].(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
