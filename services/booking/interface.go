package booking

import (
	"context"
	"time"

	areaRepo "condoreserve/database/repository/area"
	directoryRepo "condoreserve/database/repository/directory"
	reservationRepo "condoreserve/database/repository/reservation"
	"condoreserve/models"
	"condoreserve/services/notification"
)

// CreateReservationInput carries a booking request for one area slot
// on one calendar day.
type CreateReservationInput struct {
	AreaID   string
	Date     time.Time
	TimeSlot string
}

// BookingService is the reservation ledger plus the approval workflow
// and the month-availability read side.
type BookingService interface {
	Create(ctx context.Context, actor models.Actor, input CreateReservationInput) (*models.Reservation, error)
	Cancel(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)

	Approve(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	Reject(ctx context.Context, actor models.Actor, reservationID, reason string) (*models.Reservation, error)

	GetReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error)
	ListMine(ctx context.Context, actor models.Actor) ([]models.Reservation, error)
	ListPending(ctx context.Context, actor models.Actor) ([]models.Reservation, error)

	MonthAvailability(ctx context.Context, actor models.Actor, areaID string, month, year int) (*models.MonthAvailability, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Areas        areaRepo.AreaRepository
	Reservations reservationRepo.ReservationRepository
	Directory    directoryRepo.ActorDirectory
	Notifier     notification.Enqueuer

	// Now is the clock used for window checks; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
