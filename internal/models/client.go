package models

import "time"

// Client is a booking customer, no login, scoped to one salon. Phone is the
// soft identity key for matching repeat bookings and voice calls.
type Client struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `json:"salon_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Phone     string `gorm:"size:20;index" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`

	TotalVisits int        `json:"total_visits"`
	TotalSpent  float64    `json:"total_spent"`
	LastVisitAt *time.Time `json:"last_visit_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
