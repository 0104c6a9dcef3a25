package booking

import (
	"context"
	"reflect"
	"testing"
	"time"

	"condoreserve/models"
)

func TestBuildMonthAvailability(t *testing.T) {
	area := testArea(false)

	t.Run("quota exhaustion marks the day unavailable", func(t *testing.T) {
		// Two slots configured, both held on the 20th.
		small := area
		small.AvailableSlots = []string{"08:00 - 12:00", "13:00 - 17:00"}
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		reservations := []models.Reservation{
			{AreaID: small.ID, Date: day, TimeSlot: "08:00 - 12:00", Status: models.StatusAprovada},
			{AreaID: small.ID, Date: day, TimeSlot: "13:00 - 17:00", Status: models.StatusPendente},
		}

		avail := BuildMonthAvailability(small, 3, 2026, reservations, fixedNow)

		full := avail["2026-03-20"]
		if full.Available {
			t.Error("expected the fully booked day to be unavailable")
		}
		if full.ReservedSlots != 2 || full.AvailableSlots != 0 {
			t.Errorf("expected 2 reserved / 0 free, got %d / %d", full.ReservedSlots, full.AvailableSlots)
		}
		if len(full.Reservations) != 2 {
			t.Errorf("expected both reservations listed, got %d", len(full.Reservations))
		}

		next := avail["2026-03-21"]
		if !next.Available {
			t.Error("expected the next day to stay available")
		}
		if next.ReservedSlots != 0 || next.AvailableSlots != 2 {
			t.Errorf("expected 0 reserved / 2 free, got %d / %d", next.ReservedSlots, next.AvailableSlots)
		}
	})

	t.Run("daily quota below the slot count caps the day", func(t *testing.T) {
		// Three slot labels but at most two reservations a day: two
		// pendentes close the day even though one label is still free.
		capped := area
		capped.AvailableSlots = []string{"08:00 - 12:00", "13:00 - 17:00", "18:00 - 22:00"}
		capped.Rules.MaxReservationsPerDay = 2
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		reservations := []models.Reservation{
			{AreaID: capped.ID, Date: day, TimeSlot: "08:00 - 12:00", Status: models.StatusPendente},
			{AreaID: capped.ID, Date: day, TimeSlot: "13:00 - 17:00", Status: models.StatusPendente},
		}

		avail := BuildMonthAvailability(capped, 3, 2026, reservations, fixedNow)

		full := avail["2026-03-20"]
		if full.Available {
			t.Error("expected the quota-exhausted day to be unavailable")
		}
		if full.TotalSlots != 2 || full.ReservedSlots != 2 || full.AvailableSlots != 0 {
			t.Errorf("expected totalSlots=2 reserved=2 free=0, got %d/%d/%d",
				full.TotalSlots, full.ReservedSlots, full.AvailableSlots)
		}

		// One reservation leaves room for exactly one more.
		avail = BuildMonthAvailability(capped, 3, 2026, reservations[:1], fixedNow)
		half := avail["2026-03-20"]
		if !half.Available || half.AvailableSlots != 1 {
			t.Errorf("expected one free slot under the quota, got %+v", half)
		}
	})

	t.Run("non-blocking statuses do not consume slots but stay listed", func(t *testing.T) {
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		reservations := []models.Reservation{
			{AreaID: area.ID, Date: day, TimeSlot: "08:00 - 12:00", Status: models.StatusCancelada},
			{AreaID: area.ID, Date: day, TimeSlot: "13:00 - 17:00", Status: models.StatusRejeitada},
		}

		avail := BuildMonthAvailability(area, 3, 2026, reservations, fixedNow)

		d := avail["2026-03-20"]
		if d.ReservedSlots != 0 {
			t.Errorf("expected 0 reserved slots, got %d", d.ReservedSlots)
		}
		if len(d.Reservations) != 2 {
			t.Errorf("expected 2 listed reservations, got %d", len(d.Reservations))
		}
		if !d.Available {
			t.Error("expected the day to be available")
		}
	})

	t.Run("past days are flagged and unavailable", func(t *testing.T) {
		avail := BuildMonthAvailability(area, 3, 2026, nil, fixedNow)

		past := avail["2026-03-05"]
		if !past.IsPastDate || past.Available {
			t.Errorf("expected 2026-03-05 to be past and unavailable, got %+v", past)
		}
		// The projection day itself is not past.
		today := avail["2026-03-10"]
		if today.IsPastDate {
			t.Error("expected the current day not to be flagged as past")
		}
	})

	t.Run("closed weekdays are flagged", func(t *testing.T) {
		weekend := area
		weekend.AvailableDays = []int{0, 6}
		avail := BuildMonthAvailability(weekend, 3, 2026, nil, fixedNow)

		monday := avail["2026-03-16"]
		if monday.IsDayAvailable || monday.Available {
			t.Errorf("expected Monday to be closed, got %+v", monday)
		}
		saturday := avail["2026-03-14"]
		if !saturday.IsDayAvailable || !saturday.Available {
			t.Errorf("expected Saturday to be open, got %+v", saturday)
		}
	})

	t.Run("covers every day of the month exactly once", func(t *testing.T) {
		for _, tc := range []struct {
			month, year, days int
		}{
			{2, 2026, 28},
			{2, 2028, 29},
			{4, 2026, 30},
			{3, 2026, 31},
		} {
			avail := BuildMonthAvailability(area, tc.month, tc.year, nil, fixedNow)
			if len(avail) != tc.days {
				t.Errorf("%d/%d: expected %d days, got %d", tc.month, tc.year, tc.days, len(avail))
			}
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		reservations := []models.Reservation{
			{AreaID: area.ID, Date: day, TimeSlot: "08:00 - 12:00", Status: models.StatusAprovada},
		}
		first := BuildMonthAvailability(area, 3, 2026, reservations, fixedNow)
		second := BuildMonthAvailability(area, 3, 2026, reservations, fixedNow)
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical projections for identical input")
		}
	})

	t.Run("area without slot labels still holds one slot per day", func(t *testing.T) {
		bare := area
		bare.AvailableSlots = nil
		avail := BuildMonthAvailability(bare, 3, 2026, nil, fixedNow)
		d := avail["2026-03-20"]
		if d.TotalSlots != 1 || d.AvailableSlots != 1 {
			t.Errorf("expected a single implicit slot, got %+v", d)
		}
	})
}

func TestMonthAvailabilityQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("projects only the requested month", func(t *testing.T) {
		repo := newFakeReservationRepo()
		s := testService(newFakeAreaRepo(testArea(false)), repo, newFakeDirectory(), &fakeEnqueuer{})

		inMonth := &models.Reservation{
			AreaID: "area-grill", CondominiumID: "condo-1", UserID: "maria",
			Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), TimeSlot: "08:00 - 12:00",
			Status: models.StatusAprovada, CreatedAt: fixedNow,
		}
		nextMonth := &models.Reservation{
			AreaID: "area-grill", CondominiumID: "condo-1", UserID: "maria",
			Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), TimeSlot: "08:00 - 12:00",
			Status: models.StatusAprovada, CreatedAt: fixedNow,
		}
		for _, r := range []*models.Reservation{inMonth, nextMonth} {
			if err := repo.Create(ctx, r); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}

		got, err := s.MonthAvailability(ctx, resident("maria"), "area-grill", 3, 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Month != 3 || got.Year != 2026 {
			t.Errorf("unexpected month/year: %d/%d", got.Month, got.Year)
		}
		if got.Availability["2026-03-20"].ReservedSlots != 1 {
			t.Error("expected the March reservation to be counted")
		}
		if _, ok := got.Availability["2026-04-02"]; ok {
			t.Error("expected no April keys in a March projection")
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		s := testService(newFakeAreaRepo(testArea(false)), newFakeReservationRepo(), newFakeDirectory(), &fakeEnqueuer{})
		_, err := s.MonthAvailability(ctx, resident("maria"), "area-grill", 13, 2026)
		wantCode(t, err, CodeValidation)
	})

	t.Run("unknown area", func(t *testing.T) {
		s := testService(newFakeAreaRepo(), newFakeReservationRepo(), newFakeDirectory(), &fakeEnqueuer{})
		_, err := s.MonthAvailability(ctx, resident("maria"), "area-missing", 3, 2026)
		wantCode(t, err, CodeNotFound)
	})
}
