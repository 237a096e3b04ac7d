package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"meraki_estimator/internal/usecase"
	"meraki_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	HeaderProfileID = "X-Profile-ID"
	HeaderUserEmail = "X-User-Email"

	// UnknownUserEmail is shown when the identity header is missing.
	UnknownUserEmail = "unknown"
)

var (
	errInvalidProfile         = pkg.NewDomainErrorSimple("INVALID_PROFILE", "Invalid profile id", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidDraftPayload    = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errInvalidRoomIndex       = pkg.NewDomainErrorSimple("INVALID_ROOM_INDEX", "Room index must be a positive integer", http.StatusBadRequest)
	errEstimateNotFound       = pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	errEstimateFinalized      = pkg.NewDomainErrorSimple("ESTIMATE_FINALIZED", "Estimate is finalized and can no longer be edited", http.StatusConflict)
	errDraftChangeRejected    = pkg.NewDomainErrorSimple("DRAFT_CHANGE_REJECTED", "Draft change could not be applied", http.StatusUnprocessableEntity)
	errStorageUnavailable     = pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Estimate storage is unavailable", http.StatusServiceUnavailable)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		logrus.WithError(appErr.Err).WithField("code", appErr.Code).Error("[http] request failed")
	}
	c.AbortWithStatusJSON(appErr.Status(), appErr.ToHTTPError())
}

// engine resolves the estimate engine of the profile named by X-Profile-ID.
func engine(c *gin.Context, registry usecase.IProfileRegistry) (usecase.IEstimateUseCase, bool) {
	uc, ok := registry.For(strings.TrimSpace(c.GetHeader(HeaderProfileID)))
	if !ok {
		abortWith(c, errInvalidProfile)
		return nil, false
	}
	return uc, true
}

func userEmail(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(HeaderUserEmail)); v != "" {
		return v
	}
	return UnknownUserEmail
}

func roomIndexParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("roomIndex"))
	if err != nil || n < 1 {
		abortWith(c, errInvalidRoomIndex)
		return 0, false
	}
	return n, true
}
