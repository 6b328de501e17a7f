package models

import "time"

type Review struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	ClientID      uint  `json:"client_id"`
	AppointmentID *uint `json:"appointment_id"`
	StylistID     *uint `json:"stylist_id"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
