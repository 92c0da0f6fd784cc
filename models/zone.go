package models

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryZone is a named coverage area matched by postal code or area name.
// PostalCodes and AreaNames are comma-separated lists; matching is
// case-insensitive and whitespace-trimmed per token.
type DeliveryZone struct {
	ID                       uint     `json:"id" gorm:"primaryKey"`
	Name                     string   `json:"name" gorm:"not null"`
	Description              string   `json:"description"`
	DeliveryFee              float64  `json:"delivery_fee" gorm:"not null"`
	MinimumOrder             *float64 `json:"minimum_order"`
	EstimatedDeliveryMinutes *int     `json:"estimated_delivery_minutes"`
	PostalCodes              string   `json:"postal_codes"`
	AreaNames                string   `json:"area_names"`
	IsActive                 bool     `json:"is_active"`
	SortOrder                int      `json:"sort_order" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
