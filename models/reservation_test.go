package models

import (
	"testing"
	"time"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to ReservationStatus
	}{
		{StatusPendente, StatusAprovada},
		{StatusPendente, StatusRejeitada},
		{StatusPendente, StatusCancelada},
		{StatusAprovada, StatusCancelada},
		{StatusRejeitada, StatusCancelada},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	refused := []struct {
		from, to ReservationStatus
	}{
		{StatusAprovada, StatusPendente},
		{StatusAprovada, StatusRejeitada},
		{StatusCancelada, StatusPendente},
		{StatusCancelada, StatusAprovada},
		{StatusConcluida, StatusCancelada},
		{StatusConcluida, StatusAprovada},
		{StatusRejeitada, StatusAprovada},
	}
	for _, tc := range refused {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be refused", tc.from, tc.to)
		}
	}
}

func TestBlockingStatuses(t *testing.T) {
	blocking := map[ReservationStatus]bool{
		StatusPendente:  true,
		StatusAprovada:  true,
		StatusRejeitada: false,
		StatusCancelada: false,
		StatusConcluida: false,
	}
	for status, want := range blocking {
		if got := status.Blocking(); got != want {
			t.Errorf("%s.Blocking() = %v, want %v", status, got, want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2026, 3, 20, 18, 45, 12, 999, time.UTC)
	got := NormalizeDate(in)
	want := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDate(%v) = %v, want %v", in, got, want)
	}
}
