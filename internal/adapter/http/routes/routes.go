package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "meraki_estimator/docs"
	"meraki_estimator/internal/adapter/http/handlers"
	"meraki_estimator/internal/infrastructure/events"
	"meraki_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the long-lived services the handlers are built from.
type Dependencies struct {
	Registry usecase.IProfileRegistry
	Bus      *events.Bus
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	estimateHandler := handlers.NewEstimateHandler(deps.Registry)
	dashboardHandler := handlers.NewDashboardHandler(deps.Registry)
	draftHandler := handlers.NewDraftHandler(deps.Registry)
	pricingHandler := handlers.NewPricingHandler()
	eventsHandler := handlers.NewEventsHandler(deps.Bus)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, dashboardHandler)
	addDraftRoutes(v1, draftHandler)
	addPricingRoutes(v1, pricingHandler)
	addEventRoutes(v1, eventsHandler)
	return router
}

// Run serves router on port until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, port int, router http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("[http] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logrus.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
