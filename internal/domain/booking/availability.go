package booking

import "time"

type AvailabilityInput struct {
	SalonID    uint
	StylistID  *uint
	ServiceIDs []uint
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeRange is a concrete interval on a specific day, used for busy filtering.
type TimeRange struct {
	Start time.Time
	End   time.Time
}
