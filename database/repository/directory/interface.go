// File: database/repository/directory/interface.go
package directoryRepo

import (
	"context"

	"condoreserve/config"
	"condoreserve/database"
	"condoreserve/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ActorDirectory is the read-only view of the resident/staff registry.
// Account management lives in another service; this service only
// resolves identities, roles and push tokens.
type ActorDirectory interface {
	GetByID(ctx context.Context, id string) (*models.Actor, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Actor, error)
	// ManagersOf returns the porteiro/zelador/sindico actors of a
	// condominium, the recipient set for approval-request notices.
	ManagersOf(ctx context.Context, condoID string) ([]models.Actor, error)
}

type mongoActorDirectory struct {
	coll *mongo.Collection
}

// NewMongoActorDirectory constructs a read-only directory over the
// shared users collection.
func NewMongoActorDirectory() ActorDirectory {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoActorDirectory{
		coll: db.Collection("users"),
	}
}
