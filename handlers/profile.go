package handlers

import (
	"net/http"
	"time"

	"foodly-api/models"
	"foodly-api/services"

	"github.com/gin-gonic/gin"
)

// GetRestaurantProfile returns the singleton profile, creating defaults on
// first read.
func GetRestaurantProfile(c *gin.Context) {
	profile, err := profiles.Get()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetPublicRestaurantInfo exposes only what the storefront needs.
func GetPublicRestaurantInfo(c *gin.Context) {
	profile, err := profiles.Get()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":          profile.Name,
		"description":   profile.Description,
		"phone":         profile.Phone,
		"address":       profile.Address,
		"logo_path":     profile.LogoPath,
		"opening_hours": profile.OpeningHours,
		"social_links":  profile.SocialLinks,
	})
}

// UpdateRestaurantProfile applies a partial update (staff)
func UpdateRestaurantProfile(c *gin.Context) {
	var upd services.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := profiles.Update(upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": profile})
}

type HolidayClosuresRequest struct {
	HolidayClosures models.HolidayClosures `json:"holiday_closures" binding:"required"`
}

// UpdateHolidayClosures replaces the holiday closure list
func UpdateHolidayClosures(c *gin.Context) {
	var req HolidayClosuresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := profiles.SetHolidayClosures(req.HolidayClosures)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday closures updated", "profile": profile})
}

type SpecialHoursRequest struct {
	SpecialHours models.SpecialHours `json:"special_hours" binding:"required"`
}

// UpdateSpecialHours replaces the special-hours list
func UpdateSpecialHours(c *gin.Context) {
	var req SpecialHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := profiles.SetSpecialHours(req.SpecialHours)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special hours updated", "profile": profile})
}

// CheckOpenNow answers whether the restaurant is currently open. An optional
// ?at=RFC3339 parameter checks another instant (useful for the admin UI).
func CheckOpenNow(c *gin.Context) {
	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at must be RFC3339, e.g. 2026-01-02T15:04:05Z"})
			return
		}
		at = parsed
	}
	status, err := profiles.IsOpenAt(at)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ── Settings ────────────────────────────────────────────────────────────────

func GetSettings(c *gin.Context) {
	setting, err := settings.Get()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": setting})
}

func UpdateSettings(c *gin.Context) {
	var upd services.SettingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting, err := settings.Update(upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "settings": setting})
}
