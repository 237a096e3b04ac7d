package handlers

import (
	"errors"
	"io"
	"net/http"

	request "meraki_estimator/internal/adapter/http/dto/request"
	response "meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler exposes the estimate lifecycle: listing, creation, the
// active estimate pointer and finalization.
type EstimateHandler struct {
	registry usecase.IProfileRegistry
}

func NewEstimateHandler(registry usecase.IProfileRegistry) *EstimateHandler {
	return &EstimateHandler{registry: registry}
}

// ListEstimates godoc
// @Summary  List estimates, most recently updated first
// @Tags     estimates
// @Produce  json
// @Param    X-Profile-ID header string false "Profile namespace"
// @Success  200 {array} response.EstimateResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	metas := uc.ListEstimates(ctx)
	active, _ := uc.GetActiveEstimateID(ctx)
	c.JSON(http.StatusOK, response.FromEstimateMetas(metas, active))
}

// CreateEstimate godoc
// @Summary  Create an estimate and make it active
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateEstimateRequest false "Optional title"
// @Success  201 {object} response.EstimateResponse
// @Failure  503 {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	meta := uc.CreateEstimate(c.Request.Context(), payload.ResolveTitle())
	if meta.ID == "" {
		abortWith(c, errStorageUnavailable)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateMeta(meta, meta.ID))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	meta, found := uc.GetEstimate(ctx, c.Param("id"))
	if !found {
		abortWith(c, errEstimateNotFound)
		return
	}
	active, _ := uc.GetActiveEstimateID(ctx)
	c.JSON(http.StatusOK, response.FromEstimateMeta(meta, active))
}

// RenameEstimate godoc
// @Summary  Rename a draft estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id path string true "Estimate id"
// @Param    payload body request.RenameEstimateRequest true "New title"
// @Success  200 {object} response.EstimateResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /estimates/{id}/title [patch]
func (h *EstimateHandler) RenameEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.RenameEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}
	title, err := payload.ResolveTitle()
	if err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	meta, found := uc.GetEstimate(ctx, id)
	switch {
	case !found:
		abortWith(c, errEstimateNotFound)
		return
	case meta.IsFinalized():
		abortWith(c, errEstimateFinalized)
		return
	}
	if !uc.SetEstimateTitle(ctx, id, title) {
		abortWith(c, errDraftChangeRejected)
		return
	}

	meta, _ = uc.GetEstimate(ctx, id)
	active, _ := uc.GetActiveEstimateID(ctx)
	c.JSON(http.StatusOK, response.FromEstimateMeta(meta, active))
}

func (h *EstimateHandler) DuplicateEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	meta, found := uc.DuplicateEstimate(c.Request.Context(), c.Param("id"))
	if !found {
		abortWith(c, errEstimateNotFound)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateMeta(meta, meta.ID))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	if !uc.DeleteEstimate(c.Request.Context(), c.Param("id")) {
		abortWith(c, errEstimateNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetActiveEstimate resolves the estimate the wizard edits, creating a first
// one when the profile has none.
func (h *EstimateHandler) GetActiveEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := uc.EnsureActiveEstimateID(ctx)
	if id == "" {
		abortWith(c, errStorageUnavailable)
		return
	}
	meta, found := uc.GetEstimate(ctx, id)
	if !found {
		abortWith(c, errEstimateNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateMeta(meta, id))
}

func (h *EstimateHandler) SetActiveEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.SetActiveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}
	id, err := payload.ResolveID()
	if err != nil {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	ctx := c.Request.Context()
	if !uc.SetActiveEstimateID(ctx, id) {
		abortWith(c, errEstimateNotFound)
		return
	}
	meta, _ := uc.GetEstimate(ctx, id)
	c.JSON(http.StatusOK, response.FromEstimateMeta(meta, id))
}

// FinalizeActiveEstimate godoc
// @Summary  Finalize the active estimate (idempotent)
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    payload body request.FinalizeEstimateRequest false "Frozen display total"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/active/finalize [post]
func (h *EstimateHandler) FinalizeActiveEstimate(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.FinalizeEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		abortWith(c, errInvalidEstimatePayload)
		return
	}

	meta, _ := uc.FinalizeActiveEstimate(c.Request.Context(), payload.Total)
	if meta.ID == "" {
		abortWith(c, errStorageUnavailable)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateMeta(meta, meta.ID))
}
