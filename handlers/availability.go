package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"condoreserve/middleware"
)

// MonthAvailabilityHandler answers the availability query:
// GET /api/areas/:areaID/availability?month=&year=
func (h *BookingHandler) MonthAvailabilityHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	view, err := h.Service.MonthAvailability(c.Request.Context(), actor, c.Param("areaID"), month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
