package routes

import (
	"meraki_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDraft   = "/draft"
	PathPricing = "/pricing"
	PathEvents  = "/events"
	PathPing    = "/ping"
)

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler) {
	draft := rg.Group(PathDraft)
	{
		draft.GET("", draftHandler.GetDraft)
		draft.PUT("/areas", draftHandler.SetSelectedAreas)

		rooms := draft.Group("/areas/:slug/rooms")
		rooms.GET("", draftHandler.GetAreaRooms)
		rooms.PUT("", draftHandler.SetAreaRooms)
		rooms.PUT("/count", draftHandler.ResizeAreaRooms)
		rooms.PUT("/:roomIndex/optionals", draftHandler.SetRoomOptional)
		rooms.DELETE("/:roomIndex/optionals/:category", draftHandler.ClearRoomOptional)
		rooms.POST("/:roomIndex/optionals/reuse", draftHandler.ReuseRoomOptionals)

		draft.GET("/totals", draftHandler.GetTotals)
		draft.GET("/summary", draftHandler.GetSummary)
		draft.GET("/export", draftHandler.ExportDraft)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	rg.GET(PathPricing, pricingHandler.ListRates)
	rg.GET(PathPricing+"/:slug", pricingHandler.GetRate)
}

func addEventRoutes(rg *gin.RouterGroup, eventsHandler *handlers.EventsHandler) {
	rg.GET(PathEvents, eventsHandler.Stream)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
