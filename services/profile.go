package services

import (
	"errors"
	"strings"
	"time"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Profiles manages the singleton restaurant profile and answers the
// open/closed question for a given instant.
type Profiles struct {
	db *gorm.DB
}

func NewProfiles(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

// defaultOpeningHours seeds the lazily-created profile. This is bootstrap
// convenience only; IsOpenAt always reads whatever is stored.
func defaultOpeningHours() models.OpeningHours {
	return models.OpeningHours{
		"monday":    {Open: "09:00", Close: "22:00"},
		"tuesday":   {Open: "09:00", Close: "22:00"},
		"wednesday": {Open: "09:00", Close: "22:00"},
		"thursday":  {Open: "09:00", Close: "22:00"},
		"friday":    {Open: "09:00", Close: "23:00"},
		"saturday":  {Open: "10:00", Close: "23:00"},
		"sunday":    {Open: "10:00", Close: "21:00"},
	}
}

// Get returns the profile row, creating it with defaults if absent.
func (p *Profiles) Get() (*models.RestaurantProfile, error) {
	var profile models.RestaurantProfile
	err := p.db.First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profile = models.RestaurantProfile{
		Name:            "My Restaurant",
		OpeningHours:    defaultOpeningHours(),
		HolidayClosures: models.HolidayClosures{},
		SpecialHours:    models.SpecialHours{},
	}
	if err := p.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileUpdate lists the editable profile fields; nil means "leave as is".
type ProfileUpdate struct {
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Phone        *string              `json:"phone"`
	Email        *string              `json:"email"`
	Address      *string              `json:"address"`
	City         *string              `json:"city"`
	State        *string              `json:"state"`
	ZipCode      *string              `json:"zip_code"`
	Country      *string              `json:"country"`
	OpeningHours *models.OpeningHours `json:"opening_hours"`
	SocialLinks  *models.SocialLinks  `json:"social_links"`
	LogoPath     *string              `json:"logo_path"`
}

func (p *Profiles) Update(upd ProfileUpdate) (*models.RestaurantProfile, error) {
	profile, err := p.Get()
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Description != nil {
		profile.Description = *upd.Description
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.Email != nil {
		profile.Email = *upd.Email
	}
	if upd.Address != nil {
		profile.Address = *upd.Address
	}
	if upd.City != nil {
		profile.City = *upd.City
	}
	if upd.State != nil {
		profile.State = *upd.State
	}
	if upd.ZipCode != nil {
		profile.ZipCode = *upd.ZipCode
	}
	if upd.Country != nil {
		profile.Country = *upd.Country
	}
	if upd.OpeningHours != nil {
		profile.OpeningHours = *upd.OpeningHours
	}
	if upd.SocialLinks != nil {
		profile.SocialLinks = *upd.SocialLinks
	}
	if upd.LogoPath != nil {
		profile.LogoPath = *upd.LogoPath
	}
	if err := p.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *Profiles) SetHolidayClosures(closures models.HolidayClosures) (*models.RestaurantProfile, error) {
	profile, err := p.Get()
	if err != nil {
		return nil, err
	}
	if closures == nil {
		closures = models.HolidayClosures{}
	}
	profile.HolidayClosures = closures
	if err := p.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (p *Profiles) SetSpecialHours(hours models.SpecialHours) (*models.RestaurantProfile, error) {
	profile, err := p.Get()
	if err != nil {
		return nil, err
	}
	if hours == nil {
		hours = models.SpecialHours{}
	}
	profile.SpecialHours = hours
	if err := p.db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// OpenStatus is the oracle's answer for one instant.
type OpenStatus struct {
	Open         bool             `json:"open"`
	Reason       string           `json:"reason,omitempty"`
	CurrentHours *models.DayHours `json:"current_hours,omitempty"`
}

// IsOpenAt decides open/closed at t. Precedence, first match wins:
// holiday closure, then date-specific special hours, then the weekday's
// regular entry. Windows are half-open [open, close). A day with no entry is
// closed.
func (p *Profiles) IsOpenAt(t time.Time) (OpenStatus, error) {
	profile, err := p.Get()
	if err != nil {
		return OpenStatus{}, err
	}

	dateStr := t.Format("2006-01-02")
	currentTime := t.Format("15:04")
	weekday := strings.ToLower(t.Weekday().String())

	for _, h := range profile.HolidayClosures {
		if h.Date == dateStr {
			reason := h.Reason
			if reason == "" {
				reason = "Closed for holiday"
			}
			return OpenStatus{Open: false, Reason: reason}, nil
		}
	}

	for _, s := range profile.SpecialHours {
		if s.Date == dateStr {
			hours := models.DayHours{Open: s.Open, Close: s.Close}
			// HH:MM strings are zero-padded, so lexical comparison is valid.
			if currentTime >= s.Open && currentTime < s.Close {
				return OpenStatus{Open: true, CurrentHours: &hours}, nil
			}
			reason := s.Reason
			if reason == "" {
				reason = "Special hours"
			}
			return OpenStatus{Open: false, Reason: reason, CurrentHours: &hours}, nil
		}
	}

	today, ok := profile.OpeningHours[weekday]
	if !ok || today.Closed {
		return OpenStatus{Open: false, Reason: "Closed today"}, nil
	}
	hours := models.DayHours{Open: today.Open, Close: today.Close}
	if currentTime >= today.Open && currentTime < today.Close {
		return OpenStatus{Open: true, CurrentHours: &hours}, nil
	}
	return OpenStatus{Open: false, Reason: "Outside business hours", CurrentHours: &hours}, nil
}
