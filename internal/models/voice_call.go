package models

import "time"

// VoiceCall is an informational log of one voice-assistant interaction.
// ClientID is a loose phone/name match, never a hard reference.
type VoiceCall struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	CallID  string `gorm:"size:36;uniqueIndex" json:"call_id"`
	SalonID uint   `gorm:"index" json:"salon_id"`

	ClientID *uint `json:"client_id"`

	Transcript string            `gorm:"type:text" json:"transcript"`
	Intent     string            `gorm:"size:30" json:"intent"`
	Entities   map[string]string `gorm:"serializer:json" json:"entities"`
	Response   string            `gorm:"type:text" json:"response"`
	Confidence float64           `json:"confidence"`

	CreatedAt time.Time `json:"created_at"`
}
