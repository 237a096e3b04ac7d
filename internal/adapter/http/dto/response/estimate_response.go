package response

import (
	"time"

	"meraki_estimator/internal/domain/entities"
)

type EstimateResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Active      bool       `json:"active"`
	ResumeHref  string     `json:"resume_href"`
	Total       string     `json:"total,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

func FromEstimateMeta(m entities.EstimateMeta, activeID string) EstimateResponse {
	return EstimateResponse{
		ID:          m.ID,
		Title:       m.Title,
		Status:      string(m.Status),
		Active:      m.ID == activeID,
		ResumeHref:  m.ResumeHref,
		Total:       m.Total,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		FinalizedAt: m.FinalizedAt,
	}
}

func FromEstimateMetas(metas []entities.EstimateMeta, activeID string) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(metas))
	for _, m := range metas {
		out = append(out, FromEstimateMeta(m, activeID))
	}
	return out
}

// DashboardResponse splits estimates the way the dashboard lists them:
// drafts can be resumed, finalized ones are view-only.
type DashboardResponse struct {
	UserEmail        string             `json:"user_email"`
	ActiveEstimateID string             `json:"active_estimate_id,omitempty"`
	InProgress       []EstimateResponse `json:"in_progress"`
	Finalized        []EstimateResponse `json:"finalized"`
}

func NewDashboardResponse(userEmail, activeID string, metas []entities.EstimateMeta) DashboardResponse {
	res := DashboardResponse{
		UserEmail:        userEmail,
		ActiveEstimateID: activeID,
		InProgress:       []EstimateResponse{},
		Finalized:        []EstimateResponse{},
	}
	for _, m := range metas {
		if m.IsFinalized() {
			res.Finalized = append(res.Finalized, FromEstimateMeta(m, activeID))
			continue
		}
		res.InProgress = append(res.InProgress, FromEstimateMeta(m, activeID))
	}
	return res
}
