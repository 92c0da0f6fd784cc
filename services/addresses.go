package services

import (
	"errors"
	"fmt"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Addresses manages a user's saved delivery addresses. Each address is
// associated with a delivery zone by postal-code matching at save time; the
// association is weak and goes stale gracefully when zones change.
type Addresses struct {
	db    *gorm.DB
	zones *Zones
}

func NewAddresses(db *gorm.DB) *Addresses {
	return &Addresses{db: db, zones: NewZones(db)}
}

func (a *Addresses) List(userID uint) ([]models.UserAddress, error) {
	var addresses []models.UserAddress
	err := a.db.Preload("DeliveryZone").
		Where("user_id = ?", userID).
		Order("is_default desc, created_at asc").
		Find(&addresses).Error
	return addresses, err
}

func (a *Addresses) Get(userID, id uint) (*models.UserAddress, error) {
	var address models.UserAddress
	err := a.db.Preload("DeliveryZone").
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (a *Addresses) Create(userID uint, address *models.UserAddress) error {
	address.UserID = userID
	a.matchZone(address)
	if address.IsDefault {
		if err := a.clearDefault(userID); err != nil {
			return err
		}
	}
	return a.db.Create(address).Error
}

// AddressUpdate lists the editable address fields; nil means "leave as is".
type AddressUpdate struct {
	Label        *string  `json:"label"`
	AddressLine1 *string  `json:"address_line1"`
	AddressLine2 *string  `json:"address_line2"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	PostalCode   *string  `json:"postal_code"`
	Country      *string  `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Instructions *string  `json:"instructions"`
	IsDefault    *bool    `json:"is_default"`
}

func (a *Addresses) Update(userID, id uint, upd AddressUpdate) (*models.UserAddress, error) {
	address, err := a.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if upd.Label != nil {
		address.Label = *upd.Label
	}
	if upd.AddressLine1 != nil {
		address.AddressLine1 = *upd.AddressLine1
	}
	if upd.AddressLine2 != nil {
		address.AddressLine2 = *upd.AddressLine2
	}
	if upd.City != nil {
		address.City = *upd.City
	}
	if upd.State != nil {
		address.State = *upd.State
	}
	if upd.PostalCode != nil {
		address.PostalCode = *upd.PostalCode
	}
	if upd.Country != nil {
		address.Country = *upd.Country
	}
	if upd.Latitude != nil {
		address.Latitude = upd.Latitude
	}
	if upd.Longitude != nil {
		address.Longitude = upd.Longitude
	}
	if upd.Instructions != nil {
		address.Instructions = *upd.Instructions
	}
	if upd.IsDefault != nil {
		if *upd.IsDefault && !address.IsDefault {
			if err := a.clearDefault(userID); err != nil {
				return nil, err
			}
		}
		address.IsDefault = *upd.IsDefault
	}
	if upd.PostalCode != nil {
		a.matchZone(address)
	}
	if err := a.db.Save(address).Error; err != nil {
		return nil, err
	}
	return a.Get(userID, id)
}

// SetDefault marks one address as default. Last write wins on concurrent
// calls; no locking is taken.
func (a *Addresses) SetDefault(userID, id uint) (*models.UserAddress, error) {
	address, err := a.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if err := a.clearDefault(userID); err != nil {
		return nil, err
	}
	if err := a.db.Model(address).Update("is_default", true).Error; err != nil {
		return nil, err
	}
	return a.Get(userID, id)
}

func (a *Addresses) Delete(userID, id uint) error {
	address, err := a.Get(userID, id)
	if err != nil {
		return err
	}
	return a.db.Delete(address).Error
}

func (a *Addresses) clearDefault(userID uint) error {
	return a.db.Model(&models.UserAddress{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

// matchZone fills DeliveryZoneID from the postal code, or clears it when no
// active zone covers the address.
func (a *Addresses) matchZone(address *models.UserAddress) {
	result, err := a.zones.CheckByPostalCode(address.PostalCode)
	if err == nil && result.Deliverable {
		address.DeliveryZoneID = &result.Zone.ID
	} else {
		address.DeliveryZoneID = nil
	}
}
