package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"condoreserve/models"
	"condoreserve/utils"
)

// notifyManagers queues an approval-request notice to the condominium's
// manager roles. Failures are logged and swallowed: notification is
// fire-and-forget and must never fail a booking.
func (s *DefaultBookingService) notifyManagers(ctx context.Context, area models.Area, res models.Reservation, requester models.Actor) {
	logger := utils.GetLogger()

	managers, err := s.Directory.ManagersOf(ctx, area.CondominiumID)
	if err != nil {
		logger.Warn("booking: failed to resolve managers for notification",
			zap.String("condominiumId", area.CondominiumID), zap.Error(err))
		return
	}
	if len(managers) == 0 {
		return
	}

	recipientIDs := make([]string, 0, len(managers))
	for _, m := range managers {
		recipientIDs = append(recipientIDs, m.ID)
	}

	s.enqueue(models.NotificationPayload{
		RecipientIDs: recipientIDs,
		Title:        "Nova reserva aguardando aprovacao",
		Body: fmt.Sprintf("%s solicitou %s em %s para %s.",
			requester.Name, area.Name, res.Date.Format("02/01/2006"), res.TimeSlot),
		Data: map[string]string{
			"type":          "reservation_requested",
			"reservationId": res.ID,
			"areaId":        area.ID,
		},
	})
}

// notifyResident queues a status-change notice to the reservation owner.
func (s *DefaultBookingService) notifyResident(_ context.Context, res models.Reservation, title, body string, data map[string]string) {
	s.enqueue(models.NotificationPayload{
		RecipientIDs: []string{res.UserID},
		Title:        title,
		Body:         body,
		Data:         data,
	})
}

func (s *DefaultBookingService) enqueue(payload models.NotificationPayload) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Enqueue(payload); err != nil {
		utils.GetLogger().Warn("booking: failed to enqueue notification",
			zap.String("title", payload.Title), zap.Error(err))
	}
}
