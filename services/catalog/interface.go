package catalog

import (
	"context"

	areaRepo "condoreserve/database/repository/area"
	"condoreserve/models"
)

// CreateAreaInput carries a new area definition. Omitted rule fields
// receive the documented defaults.
type CreateAreaInput struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Rules          models.AreaRulesPatch `json:"rules"`
	AvailableSlots []string              `json:"availableSlots"`
	AvailableDays  []int                 `json:"availableDays"`
}

// AreaCatalog owns amenity definitions and their rule sets.
type AreaCatalog interface {
	CreateArea(ctx context.Context, actor models.Actor, input CreateAreaInput) (*models.Area, error)
	UpdateArea(ctx context.Context, actor models.Actor, areaID string, patch models.AreaPatch) (*models.Area, error)
	DeactivateArea(ctx context.Context, actor models.Actor, areaID string) error
	GetArea(ctx context.Context, actor models.Actor, areaID string) (*models.Area, error)
	ListAreas(ctx context.Context, actor models.Actor, activeOnly bool) ([]models.Area, error)
}

// DefaultAreaCatalog is the production implementation.
type DefaultAreaCatalog struct {
	Repo areaRepo.AreaRepository
}
