package handlers

import (
	"net/http"
	"testing"
	"time"

	response "meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/adapter/http/handlers/mocks"
	"meraki_estimator/internal/domain/entities"
	"meraki_estimator/internal/domain/totals"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func draftRouter(uc *mocks.MockIEstimateUseCase) *gin.Engine {
	h := NewDraftHandler(stubRegistry{uc: uc})
	h.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	r := gin.New()
	r.GET("/v1/draft", h.GetDraft)
	r.PUT("/v1/draft/areas", h.SetSelectedAreas)
	r.GET("/v1/draft/areas/:slug/rooms", h.GetAreaRooms)
	r.PUT("/v1/draft/areas/:slug/rooms", h.SetAreaRooms)
	r.PUT("/v1/draft/areas/:slug/rooms/count", h.ResizeAreaRooms)
	r.PUT("/v1/draft/areas/:slug/rooms/:roomIndex/optionals", h.SetRoomOptional)
	r.DELETE("/v1/draft/areas/:slug/rooms/:roomIndex/optionals/:category", h.ClearRoomOptional)
	r.POST("/v1/draft/areas/:slug/rooms/:roomIndex/optionals/reuse", h.ReuseRoomOptionals)
	r.GET("/v1/draft/totals", h.GetTotals)
	r.GET("/v1/draft/summary", h.GetSummary)
	r.GET("/v1/draft/export", h.ExportDraft)
	return r
}

func kitchenDraft() entities.EstimateDraft {
	d := entities.NewEstimateDraft()
	d.SelectedAreas = []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}}
	d.Areas["kitchen"] = entities.DraftArea{Slug: "kitchen", Label: "Kitchen", Rooms: []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}}}
	return d
}

func TestDraftHandler_SetSelectedAreas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("finalized estimate answers 409 without calling the mutator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(true)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas", `{"areas":[{"slug":"kitchen"}]}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "ESTIMATE_FINALIZED", errorCode(t, w))
	})

	t.Run("applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(false).Times(2)
		uc.EXPECT().SetSelectedAreas(gomock.Any(), []entities.SelectedArea{{Slug: "kitchen", Label: "Kitchen"}}).Return(true)
		uc.EXPECT().GetDraft(gomock.Any()).Return("est-1", kitchenDraft())

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas", `{"areas":[{"slug":"kitchen","label":"Kitchen"}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
		res := decode[response.DraftResponse](t, w)
		assert.Equal(t, "est-1", res.EstimateID)
		assert.Len(t, res.Areas, 1)
	})

	t.Run("missing slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas", `{"areas":[{"label":"Kitchen"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDraftHandler_SetAreaRooms(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("label falls back to the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(false).Times(2)
		uc.EXPECT().GetSelectedAreaLabel(gomock.Any(), "kitchen").Return("Kitchen", true)
		uc.EXPECT().SetAreaRooms(gomock.Any(), "kitchen", "Kitchen", []entities.DraftRoom{{Name: "Kitchen 1", Area: 10}}).Return(true)
		uc.EXPECT().GetDraft(gomock.Any()).Return("est-1", kitchenDraft())

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms", `{"rooms":[{"name":"Kitchen 1","area":10}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejected change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(false).Times(2)
		uc.EXPECT().SetAreaRooms(gomock.Any(), "kitchen", "Kitchen", gomock.Any()).Return(false)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms", `{"label":"Kitchen","rooms":[]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "DRAFT_CHANGE_REJECTED", errorCode(t, w))
	})

	t.Run("negative area", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms", `{"rooms":[{"name":"x","area":-2}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("room count must be positive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms/count", `{"count":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDraftHandler_RoomOptionals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid room index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms/zero/optionals", `{"category":"floorings","id":"wood"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ROOM_INDEX", errorCode(t, w))
	})

	t.Run("set optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(false).Times(2)
		uc.EXPECT().SetRoomOptional(gomock.Any(), "kitchen", 1, entities.DraftRoomOptional{Category: "floorings", ID: "wood", Label: "Wood", Price: 900}).Return(true)
		uc.EXPECT().GetDraft(gomock.Any()).Return("est-1", kitchenDraft())

		w := serve(draftRouter(uc), http.MethodPut, "/v1/draft/areas/kitchen/rooms/1/optionals", `{"category":"floorings","id":"wood","label":"Wood","price":900}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clear optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().IsActiveEstimateFinalized(gomock.Any()).Return(false).Times(2)
		uc.EXPECT().ClearRoomOptional(gomock.Any(), "kitchen", 2, "floorings").Return(true)
		uc.EXPECT().GetDraft(gomock.Any()).Return("est-1", kitchenDraft())

		w := serve(draftRouter(uc), http.MethodDelete, "/v1/draft/areas/kitchen/rooms/2/optionals/floorings", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reuse needs targets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)

		w := serve(draftRouter(uc), http.MethodPost, "/v1/draft/areas/kitchen/rooms/1/optionals/reuse", `{"targets":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDraftHandler_Totals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().Totals(gomock.Any()).Return(totals.Totals{Areas: 1, Rooms: 1, M2: 10, Base: 7000, Optionals: 500, Total: 7500, OptionalsCount: 1})

		w := serve(draftRouter(uc), http.MethodGet, "/v1/draft/totals", "")
		assert.Equal(t, http.StatusOK, w.Code)
		res := decode[response.TotalsResponse](t, w)
		assert.Equal(t, 7500.0, res.Total)
		assert.Equal(t, "7.500 €", res.TotalDisplay)
	})

	t.Run("export of an unknown estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().GetEstimate(gomock.Any(), "nope").Return(entities.EstimateMeta{}, false)

		w := serve(draftRouter(uc), http.MethodGet, "/v1/draft/export?id=nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		uc.EXPECT().EnsureActiveEstimateID(gomock.Any()).Return("est-1")
		uc.EXPECT().GetEstimate(gomock.Any(), "est-1").Return(entities.EstimateMeta{ID: "est-1", Title: "Flat"}, true)
		uc.EXPECT().GetEstimateDraft(gomock.Any(), "est-1").Return(kitchenDraft(), true)

		w := serve(draftRouter(uc), http.MethodGet, "/v1/draft/export", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="estimate-est-1.json"`, w.Header().Get("Content-Disposition"))
		res := decode[response.ExportResponse](t, w)
		assert.Equal(t, 7000.0, res.Summary.Totals.Total)
		assert.Equal(t, "Flat", res.Estimate.Title)
	})
}
