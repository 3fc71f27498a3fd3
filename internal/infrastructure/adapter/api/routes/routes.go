package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/dbcoord/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Record routes run inside
// a request-scoped database session.
func SetupRoutes(
	router *gin.Engine,
	recordHandler *handler.RecordHandler,
	healthHandler *handler.HealthHandler,
	sessions middleware.SessionProvider,
	gatherer prometheus.Gatherer,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	recordRoutes := router.Group("/records", middleware.DBSession(sessions, logger))
	{
		recordRoutes.POST("", recordHandler.Create)
		recordRoutes.POST("/batch", recordHandler.CreateBatch)
		recordRoutes.GET("/:id", recordHandler.Get)
		recordRoutes.PUT("/:id", recordHandler.Update)
		recordRoutes.DELETE("/:id", recordHandler.Delete)
		recordRoutes.GET("/:id/versions", recordHandler.Versions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// the logger sees the final status, so it wraps the error handler
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}
