// File: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"condoreserve/models"
)

// EnsureIndexes creates the necessary indexes on the reservations
// collection. The partial unique index enforces at most one aprovada
// reservation per (areaId, date, timeSlot); a losing approval surfaces
// as a duplicate-key error rather than a silently double-booked slot.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on Reservation ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary availability query pattern.
		{
			Keys:    bson.D{{Key: "areaId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("area_date_status_idx"),
		},
		// User history.
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("user_date_idx"),
		},
		// Manager approval queue.
		{
			Keys:    bson.D{{Key: "condominiumId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("condo_status_idx"),
		},
		// At most one aprovada reservation per area+date+slot.
		{
			Keys: bson.D{{Key: "areaId", Value: 1}, {Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_approved_slot").
				SetPartialFilterExpression(bson.M{"status": string(models.StatusAprovada)}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
