package routes

import (
	"meraki_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathDashboard = "/dashboard"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, dashboardHandler *handlers.DashboardHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)

		// the active pointer the wizard works on
		estimates.GET("/active", estimateHandler.GetActiveEstimate)
		estimates.PUT("/active", estimateHandler.SetActiveEstimate)
		estimates.POST("/active/finalize", estimateHandler.FinalizeActiveEstimate)

		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/title", estimateHandler.RenameEstimate)
		estimates.POST("/:id/duplicate", estimateHandler.DuplicateEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
}
