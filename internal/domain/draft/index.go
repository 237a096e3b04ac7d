package draft

import (
	"encoding/json"
	"strings"
	"time"

	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/wizard"
)

// DecodeIndex turns the stored estimate index into metas, dropping invalid or
// duplicated entries. It never fails.
func DecodeIndex(raw []byte) []entities.EstimateMeta {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return []entities.EstimateMeta{}
	}
	list, ok := v.([]any)
	if !ok {
		return []entities.EstimateMeta{}
	}
	out := make([]entities.EstimateMeta, 0, len(list))
	seen := map[string]bool{}
	for _, item := range list {
		m, ok := DecodeMeta(item)
		if !ok || seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// DecodeMeta validates one index entry. Only the id is mandatory; other
// fields fall back to draft defaults.
func DecodeMeta(v any) (entities.EstimateMeta, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return entities.EstimateMeta{}, false
	}
	id, ok := stringField(obj, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return entities.EstimateMeta{}, false
	}

	m := entities.EstimateMeta{ID: id, Status: entities.EstimateStatusDraft, ResumeHref: wizard.DefaultResumeHref}
	if title, ok := stringField(obj, "title"); ok {
		m.Title = title
	}
	if status, ok := stringField(obj, "status"); ok && entities.EstimateStatus(status) == entities.EstimateStatusFinalized {
		m.Status = entities.EstimateStatusFinalized
	}
	if href, ok := stringField(obj, "resumeHref"); ok && strings.HasPrefix(href, "/") {
		m.ResumeHref = href
	}
	m.CreatedAt, _ = timeField(obj, "createdAt")
	if m.UpdatedAt, ok = timeField(obj, "updatedAt"); !ok {
		m.UpdatedAt = m.CreatedAt
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = m.UpdatedAt
	}
	if at, ok := timeField(obj, "finalizedAt"); ok {
		m.FinalizedAt = &at
	}
	if total, ok := stringField(obj, "total"); ok {
		m.Total = total
	}
	return m, true
}

// EncodeIndex serializes the estimate index.
func EncodeIndex(metas []entities.EstimateMeta) string {
	if metas == nil {
		metas = []entities.EstimateMeta{}
	}
	b, err := json.Marshal(metas)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func timeField(obj map[string]any, key string) (time.Time, bool) {
	s, ok := stringField(obj, key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
