package response

import (
	"testing"
	"time"

	"meraki_estimator/internal/domain/entities"
)

func TestFromEstimateMeta(t *testing.T) {
	now := time.Now().UTC()
	m := entities.EstimateMeta{
		ID:         "est-1",
		Title:      "EST-0001 · 2026-03-14",
		Status:     entities.EstimateStatusFinalized,
		CreatedAt:  now,
		UpdatedAt:  now,
		ResumeHref: "/project-summary",
		Total:      "7.500 €",
	}

	res := FromEstimateMeta(m, "est-1")
	if res.ID != "est-1" || !res.Active {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "finalized" || res.Total != "7.500 €" || res.ResumeHref != "/project-summary" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if FromEstimateMeta(m, "other").Active {
		t.Fatalf("expected inactive")
	}
}

func TestNewDashboardResponse(t *testing.T) {
	metas := []entities.EstimateMeta{
		{ID: "a", Status: entities.EstimateStatusDraft},
		{ID: "b", Status: entities.EstimateStatusFinalized},
		{ID: "c", Status: entities.EstimateStatusDraft},
	}
	res := NewDashboardResponse("ana@example.com", "c", metas)
	if res.UserEmail != "ana@example.com" || res.ActiveEstimateID != "c" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if len(res.InProgress) != 2 || res.InProgress[0].ID != "a" || !res.InProgress[1].Active {
		t.Fatalf("unexpected in progress: %+v", res.InProgress)
	}
	if len(res.Finalized) != 1 || res.Finalized[0].ID != "b" {
		t.Fatalf("unexpected finalized: %+v", res.Finalized)
	}
}
