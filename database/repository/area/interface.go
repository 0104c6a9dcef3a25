// File: database/repository/area/interface.go
package areaRepo

import (
	"context"

	"condoreserve/config"
	"condoreserve/database"
	"condoreserve/models"
	"condoreserve/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type AreaRepository interface {
	Create(ctx context.Context, area *models.Area) error
	GetByID(ctx context.Context, condoID, areaID string) (*models.Area, error)
	GetActiveByName(ctx context.Context, condoID, name string) (*models.Area, error)
	ListByCondominium(ctx context.Context, condoID string, activeOnly bool) ([]models.Area, error)
	Update(ctx context.Context, area *models.Area) error
	Deactivate(ctx context.Context, condoID, areaID string) error
}

type mongoAreaRepo struct {
	coll *mongo.Collection
}

// NewMongoAreaRepo constructs a new MongoDB AreaRepository and makes
// sure its indexes exist.
func NewMongoAreaRepo() AreaRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAreaRepo{
		coll: db.Collection("areas"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("area repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
