package models

import "time"

// AreaRules holds the booking rules configured for a common area.
type AreaRules struct {
	MaxReservationsPerDay     int     `bson:"maxReservationsPerDay" json:"maxReservationsPerDay"`         // Ceiling on blocking reservations per day (>= 1)
	Capacity                  *int    `bson:"capacity,omitempty" json:"capacity,omitempty"`               // Optional headcount capacity of the area
	Fee                       float64 `bson:"fee" json:"fee"`                                             // Fixed usage fee (stored, never charged)
	FeePercentage             float64 `bson:"feePercentage" json:"feePercentage"`                         // 0-100
	CancellationDeadlineHours int     `bson:"cancellationDeadlineHours" json:"cancellationDeadlineHours"` // Minimum lead time (hours) to cancel
	MinAdvanceBookingHours    int     `bson:"minAdvanceBookingHours" json:"minAdvanceBookingHours"`
	MaxAdvanceBookingDays     int     `bson:"maxAdvanceBookingDays" json:"maxAdvanceBookingDays"`
	RequiresApproval          bool    `bson:"requiresApproval" json:"requiresApproval"`
}

// Area represents a bookable shared amenity owned by a condominium.
type Area struct {
	ID             string    `bson:"id" json:"id"`
	CondominiumID  string    `bson:"condominiumId" json:"condominiumId"`
	Name           string    `bson:"name" json:"name"` // Unique among active areas of the condominium
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Rules          AreaRules `bson:"rules" json:"rules"`
	AvailableSlots []string  `bson:"availableSlots" json:"availableSlots"` // Ordered slot labels, e.g. "08:00 - 12:00"
	AvailableDays  []int     `bson:"availableDays" json:"availableDays"`   // Weekday indices, 0=Sunday .. 6=Saturday
	IsActive       bool      `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasSlot reports whether label is one of the area's configured slot labels.
// Slot identity is the label string.
func (a Area) HasSlot(label string) bool {
	for _, s := range a.AvailableSlots {
		if s == label {
			return true
		}
	}
	return false
}

// IsDayAvailable reports whether the given weekday (0=Sunday) is bookable.
func (a Area) IsDayAvailable(weekday int) bool {
	for _, d := range a.AvailableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// TotalSlots returns the number of bookable slots per day, never below one:
// an area configured without slot labels still accepts one reservation a day.
func (a Area) TotalSlots() int {
	if len(a.AvailableSlots) == 0 {
		return 1
	}
	return len(a.AvailableSlots)
}

// DailyCapacity returns how many reservations one day actually holds:
// the slot count capped by maxReservationsPerDay. The quota can close a
// day even while slot labels remain nominally free.
func (a Area) DailyCapacity() int {
	capacity := a.TotalSlots()
	if q := a.Rules.MaxReservationsPerDay; q > 0 && q < capacity {
		capacity = q
	}
	return capacity
}

// AreaRulesPatch carries a partial rules update. Nil fields keep the
// stored value.
type AreaRulesPatch struct {
	MaxReservationsPerDay     *int     `json:"maxReservationsPerDay,omitempty"`
	Capacity                  *int     `json:"capacity,omitempty"`
	Fee                       *float64 `json:"fee,omitempty"`
	FeePercentage             *float64 `json:"feePercentage,omitempty"`
	CancellationDeadlineHours *int     `json:"cancellationDeadlineHours,omitempty"`
	MinAdvanceBookingHours    *int     `json:"minAdvanceBookingHours,omitempty"`
	MaxAdvanceBookingDays     *int     `json:"maxAdvanceBookingDays,omitempty"`
	RequiresApproval          *bool    `json:"requiresApproval,omitempty"`
}

// AreaPatch carries a partial area update.
type AreaPatch struct {
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Rules          *AreaRulesPatch `json:"rules,omitempty"`
	AvailableSlots *[]string       `json:"availableSlots,omitempty"`
	AvailableDays  *[]int          `json:"availableDays,omitempty"`
}
