package usecase

import (
	"context"
	"strings"

	"meraki_estimator/internal/domain/draft"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/totals"
)

// ListEstimates returns every estimate, most recently updated first.
func (u *EstimateUseCase) ListEstimates(ctx context.Context) []entities.EstimateMeta {
	u.lock()
	defer u.unlock()

	u.ensureMigrated(ctx)
	return byRecency(u.loadIndex(ctx))
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.EstimateMeta, bool) {
	u.lock()
	defer u.unlock()

	index := u.loadIndex(ctx)
	i := findMeta(index, strings.TrimSpace(id))
	if i < 0 {
		return entities.EstimateMeta{}, false
	}
	return index[i], true
}

func (u *EstimateUseCase) IsActiveEstimateFinalized(ctx context.Context) bool {
	u.lock()
	defer u.unlock()

	id, ok := u.readActiveID(ctx)
	if !ok {
		return false
	}
	index := u.loadIndex(ctx)
	i := findMeta(index, id)
	return i >= 0 && index[i].IsFinalized()
}

// GetDraft returns the active estimate id and its draft, resolving (and if
// needed creating) the active estimate first.
func (u *EstimateUseCase) GetDraft(ctx context.Context) (string, entities.EstimateDraft) {
	u.lock()
	defer u.unlock()

	id := u.ensureActive(ctx)
	if id == "" {
		return "", entities.NewEstimateDraft()
	}
	return id, u.loadDraft(ctx, id)
}

// GetEstimateDraft reads the draft of any estimate in the index.
func (u *EstimateUseCase) GetEstimateDraft(ctx context.Context, id string) (entities.EstimateDraft, bool) {
	u.lock()
	defer u.unlock()

	id = strings.TrimSpace(id)
	if findMeta(u.loadIndex(ctx), id) < 0 {
		return entities.NewEstimateDraft(), false
	}
	return u.loadDraft(ctx, id), true
}

func (u *EstimateUseCase) GetSelectedAreas(ctx context.Context) []entities.SelectedArea {
	_, d := u.GetDraft(ctx)
	return d.SelectedAreas
}

// GetSelectedAreaLabel prefers the label of the selection and falls back to
// the stored area.
func (u *EstimateUseCase) GetSelectedAreaLabel(ctx context.Context, slug string) (string, bool) {
	_, d := u.GetDraft(ctx)
	slug = pricing.NormalizeSlug(slug)
	for _, a := range d.SelectedAreas {
		if a.Slug == slug {
			return a.Label, true
		}
	}
	if a, ok := d.Areas[slug]; ok && a.Label != "" {
		return a.Label, true
	}
	return "", false
}

// GetNextSelectedAreaSlug returns the area after currentSlug in selection
// order. An unknown currentSlug yields the first selected area; the last one
// yields false.
func (u *EstimateUseCase) GetNextSelectedAreaSlug(ctx context.Context, currentSlug string) (string, bool) {
	selected := u.GetSelectedAreas(ctx)
	current := pricing.NormalizeSlug(currentSlug)
	for i, a := range selected {
		if a.Slug != current {
			continue
		}
		if i+1 < len(selected) {
			return selected[i+1].Slug, true
		}
		return "", false
	}
	if len(selected) > 0 {
		return selected[0].Slug, true
	}
	return "", false
}

func (u *EstimateUseCase) GetAreaRooms(ctx context.Context, slug string) []entities.DraftRoom {
	_, d := u.GetDraft(ctx)
	if a, ok := d.Areas[pricing.NormalizeSlug(slug)]; ok {
		return a.Rooms
	}
	return []entities.DraftRoom{}
}

func (u *EstimateUseCase) Totals(ctx context.Context) totals.Totals {
	return u.Summary(ctx).Totals
}

// summaryCache holds the last itemized summary with the serialized draft it
// was computed from. The draft is re-read on every call, since other processes
// may write to the store without this engine hearing about it; an unchanged
// draft keeps the same pointer so callers can compare pointers to skip work.
type summaryCache struct {
	id        string
	signature string
	summary   *totals.Summary
}

// Summary returns the itemized totals of the active draft.
func (u *EstimateUseCase) Summary(ctx context.Context) *totals.Summary {
	u.lock()
	defer u.unlock()

	id := u.ensureActive(ctx)
	d := u.loadDraft(ctx, id)
	signature := draft.Encode(d)

	c := &u.cache
	if c.summary != nil && c.id == id && c.signature == signature {
		return c.summary
	}
	s := totals.Itemize(d)
	c.summary = &s
	c.signature = signature
	c.id = id
	return c.summary
}
