// File: database/repository/area/indexes.go
package areaRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the areas collection.
func (r *mongoAreaRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on Area ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Name must be unique among active areas of a condominium.
		{
			Keys: bson.D{{Key: "condominiumId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_condo_name").
				SetPartialFilterExpression(bson.M{"isActive": true}),
		},
		// Primary listing pattern.
		{
			Keys:    bson.D{{Key: "condominiumId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("condo_active_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create area indexes: %w", err)
	}
	return nil
}
