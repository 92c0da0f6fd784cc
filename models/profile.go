package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// DayHours is one weekday's schedule. Open/Close are zero-padded "HH:MM"
// strings so lexical comparison matches chronological order.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// OpeningHours maps lowercase weekday names to that day's schedule.
type OpeningHours map[string]DayHours

func (h OpeningHours) Value() (driver.Value, error) {
	if h == nil {
		h = OpeningHours{}
	}
	b, err := json.Marshal(h)
	return string(b), err
}

func (h *OpeningHours) Scan(src interface{}) error { return scanJSON(h, src) }

// HolidayClosure marks a calendar date as fully closed.
type HolidayClosure struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason,omitempty"`
}

type HolidayClosures []HolidayClosure

func (c HolidayClosures) Value() (driver.Value, error) {
	if c == nil {
		c = HolidayClosures{}
	}
	b, err := json.Marshal(c)
	return string(b), err
}

func (c *HolidayClosures) Scan(src interface{}) error { return scanJSON(c, src) }

// SpecialHour overrides the weekly schedule for a single date.
type SpecialHour struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Open   string `json:"open"`
	Close  string `json:"close"`
	Reason string `json:"reason,omitempty"`
}

type SpecialHours []SpecialHour

func (s SpecialHours) Value() (driver.Value, error) {
	if s == nil {
		s = SpecialHours{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *SpecialHours) Scan(src interface{}) error { return scanJSON(s, src) }

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

func (l SocialLinks) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *SocialLinks) Scan(src interface{}) error { return scanJSON(l, src) }

// RestaurantProfile is a singleton row by convention; it is created lazily
// with default hours on first read.
type RestaurantProfile struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"default:'My Restaurant'"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Country     string `json:"country"`

	OpeningHours    OpeningHours    `json:"opening_hours" gorm:"type:text"`
	SocialLinks     SocialLinks     `json:"social_links" gorm:"type:text"`
	HolidayClosures HolidayClosures `json:"holiday_closures" gorm:"type:text"`
	SpecialHours    SpecialHours    `json:"special_hours" gorm:"type:text"`

	// Opaque reference supplied by file storage.
	LogoPath string `json:"logo_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
