package booking

import (
	"context"
	"fmt"
	"time"

	"condoreserve/models"
)

// BuildMonthAvailability computes the per-day availability summary for
// one area and month. Pure function: same inputs, same output, no
// ledger access and no caching.
func BuildMonthAvailability(area models.Area, month, year int, reservations []models.Reservation, now time.Time) map[string]models.DayAvailability {
	today := models.NormalizeDate(now)
	// The day's capacity is the slot count capped by the daily quota:
	// once the quota is met the day is full, free labels or not.
	totalSlots := area.DailyCapacity()

	// Bucket reservations per day.
	byDay := make(map[string][]models.Reservation)
	for _, r := range reservations {
		key := r.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], r)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	availability := make(map[string]models.DayAvailability, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		key := d.Format("2006-01-02")

		reserved := 0
		slotPairs := make([]models.SlotReservation, 0, len(byDay[key]))
		for _, r := range byDay[key] {
			slotPairs = append(slotPairs, models.SlotReservation{TimeSlot: r.TimeSlot, Status: r.Status})
			if r.Status.Blocking() {
				reserved++
			}
		}

		free := totalSlots - reserved
		if free < 0 {
			free = 0
		}

		dayAvailable := area.IsDayAvailable(int(d.Weekday()))
		pastDate := d.Before(today)

		availability[key] = models.DayAvailability{
			Available:      dayAvailable && !pastDate && free > 0,
			IsDayAvailable: dayAvailable,
			IsPastDate:     pastDate,
			TotalSlots:     totalSlots,
			ReservedSlots:  reserved,
			AvailableSlots: free,
			Reservations:   slotPairs,
		}
	}
	return availability
}

// MonthAvailability is the availability query: it loads the area and
// that month's reservations and projects them through the pure builder.
func (s *DefaultBookingService) MonthAvailability(ctx context.Context, actor models.Actor, areaID string, month, year int) (*models.MonthAvailability, error) {
	if month < 1 || month > 12 {
		return nil, newError(CodeValidation, "month must be between 1 and 12", map[string]any{"month": month})
	}
	if year < 1 {
		return nil, newError(CodeValidation, "year is required", map[string]any{"year": year})
	}

	area, err := s.activeArea(ctx, actor.CondominiumID, areaID)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	reservations, err := s.Reservations.ListForAreaBetween(ctx, area.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	return &models.MonthAvailability{
		Area:         *area,
		Month:        month,
		Year:         year,
		Availability: BuildMonthAvailability(*area, month, year, reservations, s.now()),
	}, nil
}
