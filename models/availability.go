package models

// SlotReservation is the (timeSlot, status) pair attached to a day so
// the caller can compute which specific labels remain free.
type SlotReservation struct {
	TimeSlot string            `json:"timeSlot"`
	Status   ReservationStatus `json:"status"`
}

// DayAvailability summarizes one calendar day of an area's month view.
type DayAvailability struct {
	Available      bool              `json:"available"`
	IsDayAvailable bool              `json:"isDayAvailable"`
	IsPastDate     bool              `json:"isPastDate"`
	TotalSlots     int               `json:"totalSlots"`
	ReservedSlots  int               `json:"reservedSlots"`
	AvailableSlots int               `json:"availableSlots"`
	Reservations   []SlotReservation `json:"reservations"`
}

// MonthAvailability is the availability-query response for one area
// and month. Keys of Availability are "YYYY-MM-DD" dates.
type MonthAvailability struct {
	Area         Area                       `json:"area"`
	Month        int                        `json:"month"`
	Year         int                        `json:"year"`
	Availability map[string]DayAvailability `json:"availability"`
}
