// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"condoreserve/models"
)

func (r *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotApproved
		}
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *mongoReservationRepo) ApproveIfPending(ctx context.Context, id, approverID string, at time.Time) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPendente}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusAprovada,
		"approvedBy": approverID,
		"approvedAt": at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlotApproved
		}
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotPending
		}
		return nil, fmt.Errorf("failed to approve reservation: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) RejectIfPending(ctx context.Context, id, rejecterID, reason string, at time.Time) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusPendente}
	update := bson.M{"$set": bson.M{
		"status":          models.StatusRejeitada,
		"approvedBy":      rejecterID,
		"approvedAt":      at,
		"rejectionReason": reason,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotPending
		}
		return nil, fmt.Errorf("failed to reject reservation: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) Cancel(ctx context.Context, id string, at time.Time) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCancelada,
		"canceledAt": at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var res models.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&res)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return &res, nil
}
