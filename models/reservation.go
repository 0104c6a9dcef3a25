package models

import "time"

// ReservationStatus is the closed set of reservation states.
type ReservationStatus string

const (
	StatusPendente  ReservationStatus = "pendente"
	StatusAprovada  ReservationStatus = "aprovada"
	StatusRejeitada ReservationStatus = "rejeitada"
	StatusCancelada ReservationStatus = "cancelada"
	StatusConcluida ReservationStatus = "concluida"
)

// Blocking reports whether the status occupies a slot and counts
// against the daily quota.
func (s ReservationStatus) Blocking() bool {
	return s == StatusPendente || s == StatusAprovada
}

// BlockingStatuses lists the statuses that occupy slots/quota.
func BlockingStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPendente, StatusAprovada}
}

// transitions is the explicit state-transition table. concluida has no
// producing transition anywhere in the rules; it stays reachable only
// in the schema pending a product decision.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPendente:  {StatusAprovada, StatusRejeitada, StatusCancelada},
	StatusAprovada:  {StatusCancelada},
	StatusRejeitada: {StatusCancelada},
	StatusCancelada: {},
	StatusConcluida: {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// state-machine transition.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Reservation represents a resident's booking of an area slot on a
// calendar day. Date carries day granularity: the time of day is
// normalized to midnight UTC at creation.
type Reservation struct {
	ID              string            `bson:"id" json:"id"`
	AreaID          string            `bson:"areaId" json:"areaId"`
	CondominiumID   string            `bson:"condominiumId" json:"condominiumId"`
	UserID          string            `bson:"userId" json:"userId"`
	Date            time.Time         `bson:"date" json:"date"`
	TimeSlot        string            `bson:"timeSlot" json:"timeSlot"`
	Status          ReservationStatus `bson:"status" json:"status"`
	ApprovedBy      string            `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time        `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	RejectionReason string            `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CanceledAt      *time.Time        `bson:"canceledAt,omitempty" json:"canceledAt,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
}

// NormalizeDate truncates t to midnight UTC. Reservations are held at
// day granularity, not instant granularity.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
