package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTitle    = errors.New("invalid estimate title")
	ErrInvalidEstimate = errors.New("invalid estimate id")
)

// CreateEstimateRequest starts a new estimate. A blank title gets the default
// "EST-0001 · date" style title.
type CreateEstimateRequest struct {
	Title string `json:"title"`
}

func (r CreateEstimateRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

type RenameEstimateRequest struct {
	Title string `json:"title" binding:"required"`
}

func (r RenameEstimateRequest) ResolveTitle() (string, error) {
	if v := strings.TrimSpace(r.Title); v != "" {
		return v, nil
	}
	return "", ErrInvalidTitle
}

// SetActiveEstimateRequest switches the wizard to another estimate.
type SetActiveEstimateRequest struct {
	ID string `json:"id" binding:"required"`
}

func (r SetActiveEstimateRequest) ResolveID() (string, error) {
	if v := strings.TrimSpace(r.ID); v != "" {
		return v, nil
	}
	return "", ErrInvalidEstimate
}

// FinalizeEstimateRequest carries the display total frozen on the estimate.
// When omitted the total is computed from the draft.
type FinalizeEstimateRequest struct {
	Total string `json:"total"`
}
