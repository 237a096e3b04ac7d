package handlers

import (
	"net/http"

	response "meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	registry usecase.IProfileRegistry
}

func NewDashboardHandler(registry usecase.IProfileRegistry) *DashboardHandler {
	return &DashboardHandler{registry: registry}
}

// GetDashboard godoc
// @Summary  Estimates split into in progress and finalized
// @Tags     dashboard
// @Produce  json
// @Param    X-User-Email header string false "Signed-in user"
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	uc, ok := engine(c, h.registry)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	metas := uc.ListEstimates(ctx)
	active, _ := uc.GetActiveEstimateID(ctx)
	c.JSON(http.StatusOK, response.NewDashboardResponse(userEmail(c), active, metas))
}
