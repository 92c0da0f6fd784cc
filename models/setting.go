package models

import "time"

// Setting is a singleton row by convention, created with defaults on first read.
type Setting struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SiteName        string    `json:"site_name" gorm:"default:'Foodly'"`
	Currency        string    `json:"currency" gorm:"default:'USD'"`
	CurrencySymbol  string    `json:"currency_symbol" gorm:"default:'$'"`
	DeliveryFee     float64   `json:"delivery_fee" gorm:"default:5"`
	TaxRate         float64   `json:"tax_rate" gorm:"default:0"` // percentage, e.g. 5 = 5%
	MinimumOrder    float64   `json:"minimum_order" gorm:"default:0"`
	MaintenanceMode bool      `json:"maintenance_mode" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
