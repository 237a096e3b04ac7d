package usecase

import (
	"context"
	"math"
	"strings"

	"meraki_estimator/internal/domain/draft"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/wizard"
	"meraki_estimator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// draftChange edits d in place and returns the wizard step to resume at ("" to
// keep the current one). Returning ok=false discards the change.
type draftChange func(d *entities.EstimateDraft) (resumeHref string, ok bool)

// mutateActiveDraft applies change to the active estimate's draft and touches
// its meta. Must be called with u.mu held. Finalized estimates are left
// untouched.
func (u *EstimateUseCase) mutateActiveDraft(ctx context.Context, op string, change draftChange) bool {
	id := u.ensureActive(ctx)
	if id == "" {
		return false
	}
	index := u.loadIndex(ctx)
	i := findMeta(index, id)
	if i >= 0 && index[i].IsFinalized() {
		metrics.DraftMutations.WithLabelValues(metrics.ResultDroppedFinalized).Inc()
		logrus.WithFields(logrus.Fields{"estimate_id": id, "op": op}).Debug("[estimate][draft] estimate is finalized, change dropped")
		return false
	}

	d := u.loadDraft(ctx, id)
	resume, ok := change(&d)
	if !ok {
		metrics.DraftMutations.WithLabelValues(metrics.ResultRejected).Inc()
		return false
	}
	if !u.saveDraft(ctx, id, d) {
		return false
	}
	if i >= 0 {
		index[i].UpdatedAt = u.nextTimestamp(index[i].UpdatedAt)
		if resume != "" {
			index[i].ResumeHref = resume
		}
		u.saveIndex(ctx, index)
	}

	metrics.DraftMutations.WithLabelValues(metrics.ResultApplied).Inc()
	logrus.WithFields(logrus.Fields{"estimate_id": id, "op": op}).Debug("[estimate][draft] applied")
	return true
}

// SetSelectedAreas replaces the area selection. Newly selected areas get an
// empty DraftArea; deselected areas keep their rooms in case they come back.
func (u *EstimateUseCase) SetSelectedAreas(ctx context.Context, areas []entities.SelectedArea) bool {
	u.lock()
	defer u.unlock()

	selection := normalizeSelection(areas)
	return u.mutateActiveDraft(ctx, "set_selected_areas", func(d *entities.EstimateDraft) (string, bool) {
		d.SelectedAreas = selection
		for _, a := range selection {
			area, ok := d.Areas[a.Slug]
			if !ok {
				area = entities.DraftArea{Slug: a.Slug, Rooms: []entities.DraftRoom{}}
			}
			area.Label = a.Label
			d.Areas[a.Slug] = area
		}
		if len(selection) == 0 {
			return wizard.SelectAreasHref, true
		}
		return wizard.QuantityHref(selection[0].Slug), true
	})
}

func normalizeSelection(areas []entities.SelectedArea) []entities.SelectedArea {
	out := make([]entities.SelectedArea, 0, len(areas))
	seen := map[string]bool{}
	for _, a := range areas {
		slug := pricing.NormalizeSlug(a.Slug)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		label := strings.TrimSpace(a.Label)
		if label == "" {
			label = draft.TitleFromSlug(slug)
		}
		out = append(out, entities.SelectedArea{Slug: slug, Label: label})
	}
	return out
}

// SetAreaRooms replaces the room list of an area wholesale. Callers merge
// partial edits themselves, see ResizeAreaRooms.
func (u *EstimateUseCase) SetAreaRooms(ctx context.Context, slug, label string, rooms []entities.DraftRoom) bool {
	u.lock()
	defer u.unlock()

	slug = pricing.NormalizeSlug(slug)
	if slug == "" {
		return false
	}
	return u.mutateActiveDraft(ctx, "set_area_rooms", func(d *entities.EstimateDraft) (string, bool) {
		area := areaFor(d, slug, label)
		area.Rooms = sanitizeRooms(rooms)
		d.Areas[slug] = area
		return wizard.AreaHref(slug), true
	})
}

// ResizeAreaRooms grows or shrinks the room list of an area to count rooms,
// keeping existing names and floor areas.
func (u *EstimateUseCase) ResizeAreaRooms(ctx context.Context, slug, label string, count int) bool {
	u.lock()
	defer u.unlock()

	slug = pricing.NormalizeSlug(slug)
	if slug == "" {
		return false
	}
	return u.mutateActiveDraft(ctx, "resize_area_rooms", func(d *entities.EstimateDraft) (string, bool) {
		area := areaFor(d, slug, label)
		area.Rooms = draft.ResizeRooms(area.Rooms, area.Label, count)
		d.Areas[slug] = area
		return wizard.AreaHref(slug), true
	})
}

// SetRoomOptional records opt for the room at roomIndex (1-based), replacing
// any optional of the same category.
func (u *EstimateUseCase) SetRoomOptional(ctx context.Context, slug string, roomIndex int, opt entities.DraftRoomOptional) bool {
	u.lock()
	defer u.unlock()

	slug = pricing.NormalizeSlug(slug)
	opt.Category = strings.TrimSpace(opt.Category)
	opt.ID = strings.TrimSpace(opt.ID)
	if slug == "" || opt.Category == "" || opt.ID == "" || !finite(opt.Price) {
		return false
	}
	if strings.TrimSpace(opt.Label) == "" {
		opt.Label = opt.ID
	}
	return u.mutateActiveDraft(ctx, "set_room_optional", func(d *entities.EstimateDraft) (string, bool) {
		area, ok := d.Areas[slug]
		if !ok || roomIndex < 1 || roomIndex > len(area.Rooms) {
			return "", false
		}
		area.Rooms[roomIndex-1] = area.Rooms[roomIndex-1].WithOptional(opt)
		d.Areas[slug] = area
		return wizard.RoomSummaryHref(slug, roomIndex), true
	})
}

// ClearRoomOptional removes the optional of category from a room.
func (u *EstimateUseCase) ClearRoomOptional(ctx context.Context, slug string, roomIndex int, category string) bool {
	u.lock()
	defer u.unlock()

	slug = pricing.NormalizeSlug(slug)
	category = strings.TrimSpace(category)
	return u.mutateActiveDraft(ctx, "clear_room_optional", func(d *entities.EstimateDraft) (string, bool) {
		area, ok := d.Areas[slug]
		if !ok || roomIndex < 1 || roomIndex > len(area.Rooms) {
			return "", false
		}
		area.Rooms[roomIndex-1] = area.Rooms[roomIndex-1].WithoutOptional(category)
		d.Areas[slug] = area
		return wizard.OptionalsHref(slug, roomIndex), true
	})
}

// ReuseRoomOptionals copies the optionals of room fromIndex onto each target
// room of the same area. Targets out of range, or equal to fromIndex, are
// skipped.
func (u *EstimateUseCase) ReuseRoomOptionals(ctx context.Context, slug string, fromIndex int, targets []int) bool {
	u.lock()
	defer u.unlock()

	slug = pricing.NormalizeSlug(slug)
	return u.mutateActiveDraft(ctx, "reuse_room_optionals", func(d *entities.EstimateDraft) (string, bool) {
		area, ok := d.Areas[slug]
		if !ok || fromIndex < 1 || fromIndex > len(area.Rooms) {
			return "", false
		}
		source := area.Rooms[fromIndex-1]
		applied := false
		for _, t := range targets {
			if t < 1 || t > len(area.Rooms) || t == fromIndex {
				continue
			}
			room := area.Rooms[t-1]
			copied := source.Clone()
			area.Rooms[t-1] = entities.DraftRoom{Name: room.Name, Area: room.Area, Optionals: copied.Optionals}
			applied = true
		}
		if !applied {
			return "", false
		}
		d.Areas[slug] = area
		return wizard.RoomSummaryHref(slug, fromIndex), true
	})
}

// areaFor returns the existing area of slug, or a new one. A non-blank label
// refreshes the stored one.
func areaFor(d *entities.EstimateDraft, slug, label string) entities.DraftArea {
	area, ok := d.Areas[slug]
	if !ok {
		area = entities.DraftArea{Slug: slug, Rooms: []entities.DraftRoom{}}
	}
	if l := strings.TrimSpace(label); l != "" {
		area.Label = l
	}
	if area.Label == "" {
		area.Label = draft.TitleFromSlug(slug)
	}
	return area
}

// sanitizeRooms deep-copies rooms, zeroing non-finite numbers (they cannot be
// stored as JSON) and collapsing duplicate optional categories.
func sanitizeRooms(rooms []entities.DraftRoom) []entities.DraftRoom {
	out := make([]entities.DraftRoom, 0, len(rooms))
	for _, r := range rooms {
		clean := entities.DraftRoom{Name: r.Name, Area: r.Area}
		if !finite(clean.Area) {
			clean.Area = 0
		}
		for _, o := range r.Optionals {
			if !finite(o.Price) {
				o.Price = 0
			}
			clean = clean.WithOptional(o)
		}
		out = append(out, clean)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
