package models

import "time"

// DayHours is one weekday's operating window. Times are "15:04" strings
// interpreted in the salon's timezone.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeekHours is indexed by time.Weekday (0 = Sunday).
type WeekHours [7]DayHours

type CancellationPolicy struct {
	LeadHours       int     `json:"lead_hours"`
	DepositRequired bool    `json:"deposit_required"`
	DepositPercent  float64 `json:"deposit_percent"`
}

type Branding struct {
	LogoURL     string            `json:"logo_url"`
	PrimaryHex  string            `json:"primary_hex"`
	SocialLinks map[string]string `json:"social_links"`
}

type Salon struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `json:"owner_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone          string `gorm:"size:50" json:"timezone"`
	MinAdvanceMinutes int    `gorm:"default:120" json:"min_advance_minutes"`

	OperatingHours WeekHours          `gorm:"serializer:json" json:"operating_hours"`
	Policy         CancellationPolicy `gorm:"serializer:json" json:"policy"`
	Branding       Branding           `gorm:"serializer:json" json:"branding"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
