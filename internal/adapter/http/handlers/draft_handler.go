package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	request "meraki_estimator/internal/adapter/http/dto/request"
	response "meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/totals"
	"meraki_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DraftHandler serves the wizard steps: every call reads or edits the draft
// of the active estimate.
type DraftHandler struct {
	registry usecase.IProfileRegistry
	now      func() time.Time
}

func NewDraftHandler(registry usecase.IProfileRegistry) *DraftHandler {
	return &DraftHandler{registry: registry, now: time.Now}
}

// GetDraft godoc
// @Summary  Read the active draft
// @Tags     draft
// @Produce  json
// @Success  200 {object} response.DraftResponse
// @Router   /draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	h.respondDraft(c, uc, http.StatusOK)
}

// SetSelectedAreas godoc
// @Summary  Replace the selected areas
// @Tags     draft
// @Accept   json
// @Produce  json
// @Param    payload body request.SelectedAreasRequest true "Areas in wizard order"
// @Success  200 {object} response.DraftResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /draft/areas [put]
func (h *DraftHandler) SetSelectedAreas(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.SelectedAreasRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.SetSelectedAreas(ctx, payload.ToEntities())
	})
}

func (h *DraftHandler) GetAreaRooms(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	slug := pricing.NormalizeSlug(c.Param("slug"))
	rooms := uc.GetAreaRooms(c.Request.Context(), slug)
	label, _ := uc.GetSelectedAreaLabel(c.Request.Context(), slug)
	next, _ := uc.GetNextSelectedAreaSlug(c.Request.Context(), slug)
	c.JSON(http.StatusOK, gin.H{
		"slug":       slug,
		"label":      label,
		"unit_price": pricing.UnitPrice(slug),
		"rooms":      response.FromRooms(rooms),
		"next_area":  next,
	})
}

// SetAreaRooms godoc
// @Summary  Replace every room of an area
// @Tags     draft
// @Accept   json
// @Produce  json
// @Param    slug path string true "Area slug"
// @Param    payload body request.AreaRoomsRequest true "Rooms"
// @Success  200 {object} response.DraftResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /draft/areas/{slug}/rooms [put]
func (h *DraftHandler) SetAreaRooms(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.AreaRoomsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	rooms, err := payload.ToEntities()
	if err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	slug := c.Param("slug")
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.SetAreaRooms(ctx, slug, h.areaLabel(ctx, uc, slug, payload.Label), rooms)
	})
}

func (h *DraftHandler) ResizeAreaRooms(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	var payload request.RoomCountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	slug := c.Param("slug")
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.ResizeAreaRooms(ctx, slug, h.areaLabel(ctx, uc, slug, payload.Label), payload.Count)
	})
}

func (h *DraftHandler) SetRoomOptional(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	roomIndex, ok := roomIndexParam(c)
	if !ok {
		return
	}
	var payload request.OptionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	opt, err := payload.ToEntity()
	if err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.SetRoomOptional(ctx, c.Param("slug"), roomIndex, opt)
	})
}

func (h *DraftHandler) ClearRoomOptional(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	roomIndex, ok := roomIndexParam(c)
	if !ok {
		return
	}
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.ClearRoomOptional(ctx, c.Param("slug"), roomIndex, c.Param("category"))
	})
}

// ReuseRoomOptionals copies a room's optionals onto other rooms of the area
// ("reuse this setup" on the room summary page).
func (h *DraftHandler) ReuseRoomOptionals(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	roomIndex, ok := roomIndexParam(c)
	if !ok {
		return
	}
	var payload request.ReuseOptionalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	targets, err := payload.ResolveTargets()
	if err != nil {
		abortWith(c, errInvalidDraftPayload)
		return
	}
	h.mutate(c, uc, func(ctx context.Context) bool {
		return uc.ReuseRoomOptionals(ctx, c.Param("slug"), roomIndex, targets)
	})
}

func (h *DraftHandler) GetTotals(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(uc.Totals(c.Request.Context())))
}

// GetSummary godoc
// @Summary  Itemized totals of the active draft
// @Tags     draft
// @Produce  json
// @Success  200 {object} response.SummaryResponse
// @Router   /draft/summary [get]
func (h *DraftHandler) GetSummary(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	summary := uc.Summary(ctx)
	id, _ := uc.GetActiveEstimateID(ctx)
	c.JSON(http.StatusOK, response.FromSummary(id, summary))
}

// ExportDraft returns a downloadable JSON snapshot of the active estimate, or
// of the estimate named by ?id=.
func (h *DraftHandler) ExportDraft(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		id = uc.EnsureActiveEstimateID(ctx)
	}
	meta, found := uc.GetEstimate(ctx, id)
	if !found {
		abortWith(c, errEstimateNotFound)
		return
	}
	d, _ := uc.GetEstimateDraft(ctx, id)
	summary := totals.Itemize(d)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="estimate-%s.json"`, meta.ID))
	c.JSON(http.StatusOK, response.ExportResponse{
		ExportedAt: h.now().UTC(),
		Estimate:   response.FromEstimateMeta(meta, ""),
		Draft:      response.FromDraft(meta.ID, meta.IsFinalized(), d),
		Summary:    response.FromSummary(meta.ID, &summary),
	})
}

// mutate runs change against the active draft and answers with the updated
// draft. Finalized estimates answer 409, other dropped changes 422.
func (h *DraftHandler) mutate(c *gin.Context, uc usecase.IEstimateUseCase, change func(ctx context.Context) bool) {
	ctx := c.Request.Context()
	if uc.IsActiveEstimateFinalized(ctx) {
		abortWith(c, errEstimateFinalized)
		return
	}
	if !change(ctx) {
		if uc.IsActiveEstimateFinalized(ctx) {
			abortWith(c, errEstimateFinalized)
			return
		}
		abortWith(c, errDraftChangeRejected)
		return
	}
	h.respondDraft(c, uc, http.StatusOK)
}

func (h *DraftHandler) respondDraft(c *gin.Context, uc usecase.IEstimateUseCase, status int) {
	ctx := c.Request.Context()
	id, d := uc.GetDraft(ctx)
	if id == "" {
		abortWith(c, errStorageUnavailable)
		return
	}
	c.JSON(status, response.FromDraft(id, uc.IsActiveEstimateFinalized(ctx), d))
}

// areaLabel keeps the label chosen on the selection step when the request
// carries none.
func (h *DraftHandler) areaLabel(ctx context.Context, uc usecase.IEstimateUseCase, slug, label string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	l, _ := uc.GetSelectedAreaLabel(ctx, slug)
	return l
}
