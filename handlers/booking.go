package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"condoreserve/middleware"
	"condoreserve/services/booking"
)

// BookingHandler exposes the reservation ledger and approval workflow
// over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateReservationHandler books a slot: {areaId, date, timeSlot}.
func (h *BookingHandler) CreateReservationHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	var input struct {
		AreaID   string `json:"areaId"`
		Date     string `json:"date"`
		TimeSlot string `json:"timeSlot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be an ISO date (YYYY-MM-DD)"})
		return
	}

	res, err := h.Service.Create(c.Request.Context(), actor, booking.CreateReservationInput{
		AreaID:   input.AreaID,
		Date:     date,
		TimeSlot: input.TimeSlot,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": res})
}

func (h *BookingHandler) CancelReservationHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	res, err := h.Service.Cancel(c.Request.Context(), actor, c.Param("reservationID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *BookingHandler) ApproveReservationHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	res, err := h.Service.Approve(c.Request.Context(), actor, c.Param("reservationID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *BookingHandler) RejectReservationHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	// A missing body means no reason was given.
	_ = c.ShouldBindJSON(&input)

	res, err := h.Service.Reject(c.Request.Context(), actor, c.Param("reservationID"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *BookingHandler) GetReservationHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	res, err := h.Service.GetReservation(c.Request.Context(), actor, c.Param("reservationID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *BookingHandler) ListMyReservationsHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	reservations, err := h.Service.ListMine(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

func (h *BookingHandler) ListPendingReservationsHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	reservations, err := h.Service.ListPending(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
