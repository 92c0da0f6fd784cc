package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserAddress is a saved delivery address. DeliveryZoneID is a weak reference
// filled in by postal-code matching; it stays nil when no zone covers the
// address.
type UserAddress struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	UserID       uint     `json:"user_id" gorm:"not null;index"`
	Label        string   `json:"label"` // "Home", "Work", ...
	AddressLine1 string   `json:"address_line1" gorm:"not null"`
	AddressLine2 string   `json:"address_line2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postal_code" gorm:"not null"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Instructions string   `json:"instructions"`
	IsDefault    bool     `json:"is_default" gorm:"default:false"`

	DeliveryZoneID *uint         `json:"delivery_zone_id"`
	DeliveryZone   *DeliveryZone `json:"delivery_zone,omitempty" gorm:"foreignKey:DeliveryZoneID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
