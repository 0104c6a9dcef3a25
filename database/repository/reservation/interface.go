// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"
	"time"

	"condoreserve/config"
	"condoreserve/database"
	"condoreserve/models"
	"condoreserve/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Sentinel errors surfaced by the conditional state-change operations.
var (
	// ErrNotPending means the reservation exists but is no longer pendente.
	ErrNotPending = errors.New("reservation is not pending")
	// ErrSlotApproved means another reservation already holds the
	// aprovada status for the same area, date and slot (partial unique
	// index violation).
	ErrSlotApproved = errors.New("slot already has an approved reservation")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)

	CountBlockingForDay(ctx context.Context, areaID string, date time.Time) (int, error)
	HasBlockingForUserDay(ctx context.Context, areaID, userID string, date time.Time) (bool, error)
	HasBlockingForSlot(ctx context.Context, areaID string, date time.Time, timeSlot string) (bool, error)

	ListForAreaBetween(ctx context.Context, areaID string, from, to time.Time) ([]models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListPendingByCondominium(ctx context.Context, condoID string) ([]models.Reservation, error)

	// ApproveIfPending atomically moves a pendente reservation to
	// aprovada. The partial unique index on (areaId, date, timeSlot,
	// status=aprovada) makes the transition fail with ErrSlotApproved
	// when another reservation already won the slot.
	ApproveIfPending(ctx context.Context, id, approverID string, at time.Time) (*models.Reservation, error)
	RejectIfPending(ctx context.Context, id, rejecterID, reason string, at time.Time) (*models.Reservation, error)
	Cancel(ctx context.Context, id string, at time.Time) (*models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository
// and makes sure its indexes exist. The partial unique approval index is
// load-bearing: without it two racing approvals could both commit.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("reservation repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}
