package usecase

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"meraki_estimator/internal/domain/draft"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// Storage keys, one logical namespace per profile.
const (
	KeyIndex       = "meraki_estimates_index_v1"
	KeyActiveID    = "meraki_active_estimate_id_v1"
	KeyCounter     = "meraki_estimate_counter_v1"
	KeyLegacyDraft = "meraki_estimate_draft_v1"

	draftKeyPrefix = "meraki_estimate_draft_v2:"
)

// DraftKey is the key of one estimate's draft payload.
func DraftKey(id string) string {
	return draftKeyPrefix + id
}

// read and the other helpers below must be called with u.mu held.
func (u *EstimateUseCase) read(ctx context.Context, key string) (string, bool) {
	if u.store == nil {
		return "", false
	}
	v, found, err := u.store.Get(ctx, key)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get").Inc()
		logrus.WithError(err).WithField("key", key).Warn("[estimate][store] read failed, using default")
		return "", false
	}
	return v, found
}

func (u *EstimateUseCase) write(ctx context.Context, key, value string) bool {
	if u.store == nil {
		return false
	}
	if err := u.store.Set(ctx, key, value); err != nil {
		metrics.StoreErrors.WithLabelValues("set").Inc()
		logrus.WithError(err).WithField("key", key).Warn("[estimate][store] write skipped")
		return false
	}
	u.dirty = true
	u.revision++
	return true
}

func (u *EstimateUseCase) remove(ctx context.Context, key string) bool {
	if u.store == nil {
		return false
	}
	if err := u.store.Delete(ctx, key); err != nil {
		metrics.StoreErrors.WithLabelValues("delete").Inc()
		logrus.WithError(err).WithField("key", key).Warn("[estimate][store] delete skipped")
		return false
	}
	u.dirty = true
	u.revision++
	return true
}

func (u *EstimateUseCase) loadIndex(ctx context.Context) []entities.EstimateMeta {
	raw, ok := u.read(ctx, KeyIndex)
	if !ok {
		return []entities.EstimateMeta{}
	}
	return draft.DecodeIndex([]byte(raw))
}

func (u *EstimateUseCase) saveIndex(ctx context.Context, index []entities.EstimateMeta) bool {
	return u.write(ctx, KeyIndex, draft.EncodeIndex(index))
}

func (u *EstimateUseCase) loadDraft(ctx context.Context, id string) entities.EstimateDraft {
	raw, ok := u.read(ctx, DraftKey(id))
	if !ok {
		return entities.NewEstimateDraft()
	}
	return draft.Decode([]byte(raw))
}

func (u *EstimateUseCase) saveDraft(ctx context.Context, id string, d entities.EstimateDraft) bool {
	return u.write(ctx, DraftKey(id), draft.Encode(d))
}

func (u *EstimateUseCase) readActiveID(ctx context.Context) (string, bool) {
	raw, ok := u.read(ctx, KeyActiveID)
	id := strings.TrimSpace(raw)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

var titleSequencePattern = regexp.MustCompile(`EST-(\d+)`)

// nextSequence advances the default-title counter. A missing or corrupt
// counter is rebuilt from the highest sequence found in existing titles.
func (u *EstimateUseCase) nextSequence(ctx context.Context, index []entities.EstimateMeta) int {
	n := maxTitleSequence(index)
	if raw, ok := u.read(ctx, KeyCounter); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v > n {
			n = v
		}
	}
	n++
	u.write(ctx, KeyCounter, strconv.Itoa(n))
	return n
}

func maxTitleSequence(index []entities.EstimateMeta) int {
	highest := 0
	for _, m := range index {
		for _, match := range titleSequencePattern.FindAllStringSubmatch(m.Title, -1) {
			if v, err := strconv.Atoi(match[1]); err == nil && v > highest {
				highest = v
			}
		}
	}
	return highest
}

func findMeta(index []entities.EstimateMeta, id string) int {
	for i, m := range index {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// byRecency returns a copy of index ordered by UpdatedAt, newest first. Ties
// keep index order, which is newest-created first.
func byRecency(index []entities.EstimateMeta) []entities.EstimateMeta {
	out := make([]entities.EstimateMeta, len(index))
	copy(out, index)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
