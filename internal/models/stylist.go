package models

import "time"

// DaySchedule is one weekday of a stylist's working schedule. Breaks are
// intervals inside the working window during which the stylist is unavailable.
type DaySchedule struct {
	Start  string     `json:"start"`
	End    string     `json:"end"`
	Breaks []Interval `json:"breaks,omitempty"`
	Off    bool       `json:"off"`
}

// Interval is a "15:04"–"15:04" time-of-day range.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DateRange is an inclusive calendar-date range ("2006-01-02").
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WeekSchedule is indexed by time.Weekday (0 = Sunday).
type WeekSchedule [7]DaySchedule

type Stylist struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	Name        string       `gorm:"size:100;not null" json:"name"`
	Specialties []string     `gorm:"serializer:json" json:"specialties"`
	Schedule    WeekSchedule `gorm:"serializer:json" json:"schedule"`
	Vacations   []DateRange  `gorm:"serializer:json" json:"vacations"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
