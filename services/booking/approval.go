package booking

import (
	"context"
	"fmt"

	reservationRepo "condoreserve/database/repository/reservation"
	"condoreserve/models"
)

// noReasonGiven is stored when a rejection arrives without a reason.
const noReasonGiven = "no reason given"

// Approve moves a pendente reservation to aprovada. The transition is a
// conditional update in the ledger plus the partial unique index on
// approved slots, so of two racing approvals for the same area, date
// and slot exactly one commits; the loser gets ApprovalConflictError.
func (s *DefaultBookingService) Approve(ctx context.Context, actor models.Actor, reservationID string) (*models.Reservation, error) {
	res, err := s.reservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := s.checkApprovalRights(actor, *res); err != nil {
		return nil, err
	}
	if res.Status != models.StatusPendente {
		return nil, newError(CodeInvalidState, "only pending reservations can be approved",
			map[string]any{"status": res.Status})
	}

	approved, err := s.Reservations.ApproveIfPending(ctx, res.ID, actor.ID, s.now())
	if err != nil {
		switch err {
		case reservationRepo.ErrSlotApproved:
			return nil, newError(CodeApprovalConflict, "another reservation for this slot was already approved",
				map[string]any{"timeSlot": res.TimeSlot, "date": res.Date.Format("2006-01-02")})
		case reservationRepo.ErrNotPending:
			return nil, newError(CodeInvalidState, "only pending reservations can be approved", nil)
		default:
			return nil, fmt.Errorf("failed to approve reservation: %w", err)
		}
	}

	s.notifyResident(ctx, *approved, "Reserva aprovada",
		fmt.Sprintf("Sua reserva de %s em %s foi aprovada.", approved.TimeSlot, approved.Date.Format("02/01/2006")),
		map[string]string{"type": "reservation_approved", "reservationId": approved.ID})
	return approved, nil
}

// Reject moves a pendente reservation to rejeitada, recording a reason.
func (s *DefaultBookingService) Reject(ctx context.Context, actor models.Actor, reservationID, reason string) (*models.Reservation, error) {
	res, err := s.reservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := s.checkApprovalRights(actor, *res); err != nil {
		return nil, err
	}
	if res.Status != models.StatusPendente {
		return nil, newError(CodeInvalidState, "only pending reservations can be rejected",
			map[string]any{"status": res.Status})
	}

	if reason == "" {
		reason = noReasonGiven
	}
	rejected, err := s.Reservations.RejectIfPending(ctx, res.ID, actor.ID, reason, s.now())
	if err != nil {
		if err == reservationRepo.ErrNotPending {
			return nil, newError(CodeInvalidState, "only pending reservations can be rejected", nil)
		}
		return nil, fmt.Errorf("failed to reject reservation: %w", err)
	}

	s.notifyResident(ctx, *rejected, "Reserva rejeitada",
		fmt.Sprintf("Sua reserva de %s em %s foi rejeitada: %s", rejected.TimeSlot, rejected.Date.Format("02/01/2006"), reason),
		map[string]string{"type": "reservation_rejected", "reservationId": rejected.ID, "reason": reason})
	return rejected, nil
}

func (s *DefaultBookingService) checkApprovalRights(actor models.Actor, res models.Reservation) error {
	if !actor.Role.IsManager() || actor.CondominiumID != res.CondominiumID {
		return newError(CodePermission, "only manager roles may approve or reject reservations", nil)
	}
	return nil
}
