package routes

import (
	"github.com/gin-gonic/gin"

	directoryRepo "condoreserve/database/repository/directory"
	"condoreserve/handlers"
	"condoreserve/middleware"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Directory directoryRepo.ActorDirectory

	AreaHandler    *handlers.AreaHandler
	BookingHandler *handlers.BookingHandler
}

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	RegisterAreaRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}

// RegisterAreaRoutes registers the area-catalog endpoints.
func RegisterAreaRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/areas")
	api.Use(middleware.ActorAuthMiddleware(hb.Directory))
	{
		api.GET("", hb.AreaHandler.ListAreasHandler)
		api.GET("/:areaID", hb.AreaHandler.GetAreaHandler)
		api.GET("/:areaID/availability", hb.BookingHandler.MonthAvailabilityHandler)

		// Catalog mutations require a manager role.
		managed := api.Group("")
		managed.Use(middleware.ManagerOnlyMiddleware())
		managed.POST("", hb.AreaHandler.CreateAreaHandler)
		managed.PUT("/:areaID", hb.AreaHandler.UpdateAreaHandler)
		managed.DELETE("/:areaID", hb.AreaHandler.DeactivateAreaHandler)
	}
}
