package usecase

import (
	"context"
	"fmt"
	"strings"

	"meraki_estimator/internal/domain/draft"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/totals"
	"meraki_estimator/internal/domain/wizard"
	"meraki_estimator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const (
	ImportedEstimateTitle = "Imported estimate"
	duplicateTitleSuffix  = " (copy)"
)

// CreateEstimate adds a draft estimate at the front of the index and makes it
// active. A blank title gets the next "EST-0001 · 2006-01-02" style title.
// The zero EstimateMeta is returned when nothing could be persisted.
func (u *EstimateUseCase) CreateEstimate(ctx context.Context, title string) entities.EstimateMeta {
	u.lock()
	defer u.unlock()

	u.ensureMigrated(ctx)
	meta, _ := u.create(ctx, title, entities.NewEstimateDraft())
	return meta
}

// create must be called with u.mu held. ok is false, with a zero meta, when
// the draft payload or the index could not be written.
func (u *EstimateUseCase) create(ctx context.Context, title string, d entities.EstimateDraft) (entities.EstimateMeta, bool) {
	index := u.loadIndex(ctx)
	now := u.now().UTC()

	title = strings.TrimSpace(title)
	if title == "" {
		title = fmt.Sprintf("EST-%04d · %s", u.nextSequence(ctx, index), now.Format("2006-01-02"))
	}

	meta := entities.EstimateMeta{
		ID:         u.newID(),
		Title:      title,
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
		ResumeHref: wizard.DefaultResumeHref,
	}
	if !u.saveDraft(ctx, meta.ID, d) {
		return entities.EstimateMeta{}, false
	}
	if !u.saveIndex(ctx, append([]entities.EstimateMeta{meta}, index...)) {
		u.remove(ctx, DraftKey(meta.ID))
		return entities.EstimateMeta{}, false
	}
	u.write(ctx, KeyActiveID, meta.ID)

	metrics.EstimatesCreated.Inc()
	logrus.WithFields(logrus.Fields{"estimate_id": meta.ID, "title": meta.Title}).Info("[estimate][usecase] created")
	return meta, true
}

// SetActiveEstimateID switches the wizard context to id. Unknown ids are
// ignored.
func (u *EstimateUseCase) SetActiveEstimateID(ctx context.Context, id string) bool {
	u.lock()
	defer u.unlock()

	id = strings.TrimSpace(id)
	if id == "" || findMeta(u.loadIndex(ctx), id) < 0 {
		return false
	}
	if current, ok := u.readActiveID(ctx); ok && current == id {
		return true
	}
	return u.write(ctx, KeyActiveID, id)
}

// GetActiveEstimateID returns the stored active pointer as is, without
// healing it.
func (u *EstimateUseCase) GetActiveEstimateID(ctx context.Context) (string, bool) {
	u.lock()
	defer u.unlock()
	return u.readActiveID(ctx)
}

// EnsureActiveEstimateID returns the id every draft mutation operates on:
//   - the stored active id, fabricating a default meta if the index lost it
//   - otherwise the most recently updated estimate
//   - otherwise a newly created estimate
//
// It returns "" only when storage is unavailable or failing.
func (u *EstimateUseCase) EnsureActiveEstimateID(ctx context.Context) string {
	u.lock()
	defer u.unlock()
	return u.ensureActive(ctx)
}

func (u *EstimateUseCase) ensureActive(ctx context.Context) string {
	if u.store == nil {
		return ""
	}
	u.ensureMigrated(ctx)

	index := u.loadIndex(ctx)
	if id, ok := u.readActiveID(ctx); ok {
		if findMeta(index, id) < 0 {
			u.heal(ctx, id, index)
		}
		return id
	}
	if len(index) > 0 {
		id := byRecency(index)[0].ID
		u.write(ctx, KeyActiveID, id)
		return id
	}
	meta, ok := u.create(ctx, "", entities.NewEstimateDraft())
	if !ok {
		return ""
	}
	return meta.ID
}

// heal inserts a minimal meta for an active id that has no index entry.
func (u *EstimateUseCase) heal(ctx context.Context, id string, index []entities.EstimateMeta) {
	now := u.now().UTC()
	meta := entities.EstimateMeta{
		ID:         id,
		Title:      fmt.Sprintf("EST-%04d · %s", u.nextSequence(ctx, index), now.Format("2006-01-02")),
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
		ResumeHref: wizard.DefaultResumeHref,
	}
	u.saveIndex(ctx, append([]entities.EstimateMeta{meta}, index...))
	logrus.WithField("estimate_id", id).Warn("[estimate][usecase] active estimate missing from index, fabricated meta")
}

// MigrateLegacy imports the single-draft payload written by older clients.
// A non-empty payload becomes a new "Imported estimate"; an empty one is only
// deleted. It reports whether a legacy payload was found.
func (u *EstimateUseCase) MigrateLegacy(ctx context.Context) bool {
	u.lock()
	defer u.unlock()
	return u.migrateLegacy(ctx)
}

func (u *EstimateUseCase) ensureMigrated(ctx context.Context) {
	if !u.migrated {
		u.migrateLegacy(ctx)
	}
}

func (u *EstimateUseCase) migrateLegacy(ctx context.Context) bool {
	u.migrated = true

	raw, ok := u.read(ctx, KeyLegacyDraft)
	if !ok {
		return false
	}
	legacy := draft.Decode([]byte(raw))
	if legacy.IsEmpty() {
		u.remove(ctx, KeyLegacyDraft)
		metrics.LegacyMigrations.WithLabelValues(metrics.OutcomeDiscardedEmpty).Inc()
		logrus.Info("[estimate][migration] empty legacy draft discarded")
		return true
	}

	meta, ok := u.create(ctx, ImportedEstimateTitle, legacy)
	if !ok {
		// keep the legacy payload so the next call can retry
		u.migrated = false
		return true
	}
	u.remove(ctx, KeyLegacyDraft)
	metrics.LegacyMigrations.WithLabelValues(metrics.OutcomeImported).Inc()
	logrus.WithField("estimate_id", meta.ID).Info("[estimate][migration] legacy draft imported")
	return true
}

// FinalizeActiveEstimate locks the active estimate. total is the display value
// frozen on the meta; when blank it is computed from the draft. Finalizing an
// already finalized estimate changes nothing.
func (u *EstimateUseCase) FinalizeActiveEstimate(ctx context.Context, total string) (entities.EstimateMeta, bool) {
	u.lock()
	defer u.unlock()

	id := u.ensureActive(ctx)
	if id == "" {
		return entities.EstimateMeta{}, false
	}
	index := u.loadIndex(ctx)
	i := findMeta(index, id)
	if i < 0 {
		return entities.EstimateMeta{}, false
	}
	if index[i].IsFinalized() {
		return index[i], false
	}

	total = strings.TrimSpace(total)
	if total == "" {
		total = pricing.FormatEuro(totals.Compute(u.loadDraft(ctx, id)).Total)
	}
	at := u.nextTimestamp(index[i].UpdatedAt)
	index[i].Status = entities.EstimateStatusFinalized
	index[i].FinalizedAt = &at
	index[i].UpdatedAt = at
	index[i].Total = total
	index[i].ResumeHref = wizard.ProjectSummaryHref
	if !u.saveIndex(ctx, index) {
		return entities.EstimateMeta{}, false
	}

	metrics.EstimatesFinalized.Inc()
	logrus.WithFields(logrus.Fields{"estimate_id": id, "total": total}).Info("[estimate][usecase] finalized")
	return index[i], true
}

// DuplicateEstimate copies the draft of id, finalized or not, into a new
// active draft estimate.
func (u *EstimateUseCase) DuplicateEstimate(ctx context.Context, id string) (entities.EstimateMeta, bool) {
	u.lock()
	defer u.unlock()

	u.ensureMigrated(ctx)
	index := u.loadIndex(ctx)
	i := findMeta(index, strings.TrimSpace(id))
	if i < 0 {
		return entities.EstimateMeta{}, false
	}
	source := index[i]
	d := u.loadDraft(ctx, source.ID).Clone()

	meta, ok := u.create(ctx, source.Title+duplicateTitleSuffix, d)
	if !ok {
		return entities.EstimateMeta{}, false
	}
	logrus.WithFields(logrus.Fields{"estimate_id": meta.ID, "source_id": source.ID}).Info("[estimate][usecase] duplicated")
	return meta, true
}

// DeleteEstimate removes the meta and draft payload of id. When id was active
// the most recently updated remaining estimate becomes active, or the pointer
// is cleared.
func (u *EstimateUseCase) DeleteEstimate(ctx context.Context, id string) bool {
	u.lock()
	defer u.unlock()

	id = strings.TrimSpace(id)
	index := u.loadIndex(ctx)
	i := findMeta(index, id)
	if i < 0 {
		return false
	}
	remaining := append(index[:i:i], index[i+1:]...)
	if !u.saveIndex(ctx, remaining) {
		return false
	}
	u.remove(ctx, DraftKey(id))

	if active, ok := u.readActiveID(ctx); ok && active == id {
		if len(remaining) > 0 {
			u.write(ctx, KeyActiveID, byRecency(remaining)[0].ID)
		} else {
			u.remove(ctx, KeyActiveID)
		}
	}

	metrics.EstimatesDeleted.Inc()
	logrus.WithField("estimate_id", id).Info("[estimate][usecase] deleted")
	return true
}

// SetEstimateTitle renames a draft estimate. Finalized estimates and blank
// titles are ignored.
func (u *EstimateUseCase) SetEstimateTitle(ctx context.Context, id, title string) bool {
	u.lock()
	defer u.unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	index := u.loadIndex(ctx)
	i := findMeta(index, strings.TrimSpace(id))
	if i < 0 || index[i].IsFinalized() {
		return false
	}
	index[i].Title = title
	index[i].UpdatedAt = u.nextTimestamp(index[i].UpdatedAt)
	return u.saveIndex(ctx, index)
}
