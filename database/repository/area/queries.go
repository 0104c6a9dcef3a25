// File: database/repository/area/queries.go
package areaRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"condoreserve/models"
)

func (r *mongoAreaRepo) GetByID(ctx context.Context, condoID, areaID string) (*models.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": areaID, "condominiumId": condoID}
	var area models.Area
	if err := r.coll.FindOne(ctx, filter).Decode(&area); err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *mongoAreaRepo) GetActiveByName(ctx context.Context, condoID, name string) (*models.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"condominiumId": condoID, "name": name, "isActive": true}
	var area models.Area
	if err := r.coll.FindOne(ctx, filter).Decode(&area); err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *mongoAreaRepo) ListByCondominium(ctx context.Context, condoID string, activeOnly bool) ([]models.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"condominiumId": condoID}
	if activeOnly {
		filter["isActive"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch areas: %w", err)
	}
	defer cursor.Close(ctx)

	var areas []models.Area
	if err := cursor.All(ctx, &areas); err != nil {
		return nil, fmt.Errorf("error decoding areas: %w", err)
	}
	return areas, nil
}
