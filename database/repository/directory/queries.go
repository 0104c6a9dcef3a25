// File: database/repository/directory/queries.go
package directoryRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"condoreserve/models"
)

func (r *mongoActorDirectory) GetByID(ctx context.Context, id string) (*models.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var actor models.Actor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *mongoActorDirectory) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var actor models.Actor
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *mongoActorDirectory) ManagersOf(ctx context.Context, condoID string) ([]models.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"condominiumId": condoID,
		"role":          bson.M{"$in": models.ManagerRoles()},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch managers: %w", err)
	}
	defer cursor.Close(ctx)

	var managers []models.Actor
	if err := cursor.All(ctx, &managers); err != nil {
		return nil, fmt.Errorf("error decoding managers: %w", err)
	}
	return managers, nil
}
