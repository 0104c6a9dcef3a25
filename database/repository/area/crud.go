// File: database/repository/area/crud.go
package areaRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"condoreserve/models"
)

func (r *mongoAreaRepo) Create(ctx context.Context, area *models.Area) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if area.ID == "" {
		area.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, area); err != nil {
		return fmt.Errorf("failed to insert area: %w", err)
	}
	return nil
}

func (r *mongoAreaRepo) Update(ctx context.Context, area *models.Area) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": area.ID, "condominiumId": area.CondominiumID}
	res, err := r.coll.ReplaceOne(ctx, filter, area)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAreaRepo) Deactivate(ctx context.Context, condoID, areaID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": areaID, "condominiumId": condoID}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate area: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
