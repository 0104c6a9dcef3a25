package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"condoreserve/middleware"
	"condoreserve/models"
	"condoreserve/services/catalog"
)

// AreaHandler exposes the area catalog over HTTP.
type AreaHandler struct {
	Catalog catalog.AreaCatalog
}

func NewAreaHandler(svc catalog.AreaCatalog) *AreaHandler {
	return &AreaHandler{Catalog: svc}
}

func (h *AreaHandler) CreateAreaHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	var input catalog.CreateAreaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	area, err := h.Catalog.CreateArea(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"area": area})
}

func (h *AreaHandler) UpdateAreaHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	var patch models.AreaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	area, err := h.Catalog.UpdateArea(c.Request.Context(), actor, c.Param("areaID"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}

func (h *AreaHandler) DeactivateAreaHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	if err := h.Catalog.DeactivateArea(c.Request.Context(), actor, c.Param("areaID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "area deactivated"})
}

func (h *AreaHandler) ListAreasHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	activeOnly := c.Query("all") != "true"
	areas, err := h.Catalog.ListAreas(c.Request.Context(), actor, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func (h *AreaHandler) GetAreaHandler(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated actor"})
		return
	}

	area, err := h.Catalog.GetArea(c.Request.Context(), actor, c.Param("areaID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}
