package handlers

import (
	"net/http"

	response "meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/domain/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler publishes the static €/m² rate table.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

func (h *PricingHandler) ListRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRates(pricing.Rates()))
}

// GetRate answers for any slug; unknown areas get the default rate.
func (h *PricingHandler) GetRate(c *gin.Context) {
	slug := pricing.NormalizeSlug(c.Param("slug"))
	c.JSON(http.StatusOK, response.FromRate(slug, pricing.UnitPrice(slug)))
}
