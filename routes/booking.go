package routes

import (
	"github.com/gin-gonic/gin"

	"condoreserve/middleware"
)

// RegisterBookingRoutes registers all endpoints for the reservation ledger.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reservations")
	api.Use(middleware.ActorAuthMiddleware(hb.Directory))
	{
		api.POST("", hb.BookingHandler.CreateReservationHandler)
		api.GET("", hb.BookingHandler.ListMyReservationsHandler)
		api.GET("/:reservationID", hb.BookingHandler.GetReservationHandler)
		api.POST("/:reservationID/cancel", hb.BookingHandler.CancelReservationHandler)

		// Approval workflow is manager-only.
		managed := api.Group("")
		managed.Use(middleware.ManagerOnlyMiddleware())
		managed.GET("/pending", hb.BookingHandler.ListPendingReservationsHandler)
		managed.POST("/:reservationID/approve", hb.BookingHandler.ApproveReservationHandler)
		managed.POST("/:reservationID/reject", hb.BookingHandler.RejectReservationHandler)
	}
}
