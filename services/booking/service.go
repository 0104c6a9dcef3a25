package booking

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	reservationRepo "condoreserve/database/repository/reservation"
	"condoreserve/models"
)

// Create books a slot for the actor. Checks run in order: area lookup,
// booking-window validation, per-user duplicate, daily quota, slot
// conflict. The checks are read-then-write; the partial unique index on
// approved slots is the backstop that keeps the race from producing two
// aprovada reservations (see Approve).
func (s *DefaultBookingService) Create(ctx context.Context, actor models.Actor, input CreateReservationInput) (*models.Reservation, error) {
	if input.AreaID == "" {
		return nil, newError(CodeValidation, "areaId is required", nil)
	}
	if input.TimeSlot == "" {
		return nil, newError(CodeValidation, "timeSlot is required", nil)
	}
	if input.Date.IsZero() {
		return nil, newError(CodeValidation, "date is required", nil)
	}

	area, err := s.activeArea(ctx, actor.CondominiumID, input.AreaID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := models.NormalizeDate(input.Date)
	if err := validateBookingWindow(*area, date, input.TimeSlot, now); err != nil {
		return nil, err
	}

	// Per-user duplicate: one blocking reservation per area per day.
	held, err := s.Reservations.HasBlockingForUserDay(ctx, area.ID, actor.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reservations: %w", err)
	}
	if held {
		return nil, newError(CodeDuplicateBooking, "you already hold a reservation for this area on this date",
			map[string]any{"areaId": area.ID, "date": date.Format("2006-01-02")})
	}

	// Daily quota across all users.
	count, err := s.Reservations.CountBlockingForDay(ctx, area.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	if count >= area.Rules.MaxReservationsPerDay {
		return nil, newError(CodeQuotaExceeded, "the daily reservation limit for this area is reached",
			map[string]any{"reserved": count, "maxReservationsPerDay": area.Rules.MaxReservationsPerDay})
	}

	// Slot conflict.
	taken, err := s.Reservations.HasBlockingForSlot(ctx, area.ID, date, input.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, newError(CodeSlotTaken, "this slot already has a reservation",
			map[string]any{"timeSlot": input.TimeSlot, "date": date.Format("2006-01-02")})
	}

	status := models.StatusAprovada
	if area.Rules.RequiresApproval {
		status = models.StatusPendente
	}
	res := &models.Reservation{
		AreaID:        area.ID,
		CondominiumID: area.CondominiumID,
		UserID:        actor.ID,
		Date:          date,
		TimeSlot:      input.TimeSlot,
		Status:        status,
		CreatedAt:     now,
	}
	if err := s.Reservations.Create(ctx, res); err != nil {
		if err == reservationRepo.ErrSlotApproved {
			// Lost the direct-approval race against a concurrent booking.
			return nil, newError(CodeSlotTaken, "this slot already has a reservation",
				map[string]any{"timeSlot": input.TimeSlot, "date": date.Format("2006-01-02")})
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	if area.Rules.RequiresApproval {
		s.notifyManagers(ctx, *area, *res, actor)
	}
	return res, nil
}

// Cancel moves a reservation to cancelada, subject to ownership and the
// area's cancellation deadline. No notification is sent on cancel.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, err := s.reservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !canActOn(actor, *res) {
		return nil, newError(CodePermission, "you may not cancel this reservation", nil)
	}
	if !res.Status.CanTransitionTo(models.StatusCancelada) {
		return nil, newError(CodeInvalidState, "reservation cannot be cancelled from its current status",
			map[string]any{"status": res.Status})
	}

	area, err := s.Areas.GetByID(ctx, res.CondominiumID, res.AreaID)
	if err != nil {
		return nil, fmt.Errorf("failed to load area: %w", err)
	}

	deadline := area.Rules.CancellationDeadlineHours
	hoursUntil := res.Date.Sub(s.now()).Hours()
	if hoursUntil < float64(deadline) {
		return nil, newError(CodeCancellationWindow, "the cancellation deadline for this reservation has passed",
			map[string]any{"requiredLeadHours": deadline})
	}

	canceled, err := s.Reservations.Cancel(ctx, res.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return canceled, nil
}

func (s *DefaultBookingService) GetReservation(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, err := s.reservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !canActOn(actor, *res) {
		return nil, newError(CodePermission, "you may not view this reservation", nil)
	}
	return res, nil
}

func (s *DefaultBookingService) ListMine(ctx context.Context, actor models.Actor) ([]models.Reservation, error) {
	reservations, err := s.Reservations.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// ListPending surfaces the approval queue to manager roles.
func (s *DefaultBookingService) ListPending(ctx context.Context, actor models.Actor) ([]models.Reservation, error) {
	if !actor.Role.IsManager() {
		return nil, newError(CodePermission, "only manager roles may list pending reservations", nil)
	}
	reservations, err := s.Reservations.ListPendingByCondominium(ctx, actor.CondominiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reservations: %w", err)
	}
	return reservations, nil
}

// activeArea resolves an area for booking flows; deactivated areas are
// invisible here.
func (s *DefaultBookingService) activeArea(ctx context.Context, condoID, areaID string) (*models.Area, error) {
	area, err := s.Areas.GetByID(ctx, condoID, areaID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newError(CodeNotFound, "area not found", map[string]any{"areaId": areaID})
		}
		return nil, fmt.Errorf("failed to load area: %w", err)
	}
	if !area.IsActive {
		return nil, newError(CodeNotFound, "area not found", map[string]any{"areaId": areaID})
	}
	return area, nil
}

func (s *DefaultBookingService) reservation(ctx context.Context, id string) (*models.Reservation, error) {
	if id == "" {
		return nil, newError(CodeValidation, "reservationId is required", nil)
	}
	res, err := s.Reservations.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, newError(CodeNotFound, "reservation not found", map[string]any{"reservationId": id})
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return res, nil
}

// canActOn is the capability check for reservation-level operations:
// the owning resident, or a manager of the same condominium.
func canActOn(actor models.Actor, res models.Reservation) bool {
	if actor.ID == res.UserID {
		return true
	}
	return actor.Role.IsManager() && actor.CondominiumID == res.CondominiumID
}

// validateBookingWindow applies the area's day/slot templates and
// advance-booking rules to a normalized date.
func validateBookingWindow(area models.Area, date time.Time, timeSlot string, now time.Time) error {
	if !area.HasSlot(timeSlot) {
		return newError(CodeValidation, "timeSlot is not offered by this area",
			map[string]any{"timeSlot": timeSlot, "availableSlots": area.AvailableSlots})
	}
	if !area.IsDayAvailable(int(date.Weekday())) {
		return newError(CodeValidation, "this area is not available on the selected weekday",
			map[string]any{"weekday": int(date.Weekday()), "availableDays": area.AvailableDays})
	}

	today := models.NormalizeDate(now)
	if date.Before(today) {
		return newError(CodeValidation, "cannot book a past date",
			map[string]any{"date": date.Format("2006-01-02")})
	}
	if min := area.Rules.MinAdvanceBookingHours; min > 0 {
		if date.Sub(now).Hours() < float64(min) {
			return newError(CodeValidation, "the booking does not respect the minimum advance window",
				map[string]any{"minAdvanceBookingHours": min})
		}
	}
	if max := area.Rules.MaxAdvanceBookingDays; max > 0 {
		if date.After(today.AddDate(0, 0, max)) {
			return newError(CodeValidation, "the booking exceeds the maximum advance window",
				map[string]any{"maxAdvanceBookingDays": max})
		}
	}
	return nil
}
