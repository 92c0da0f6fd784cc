package services

import (
	"errors"
	"fmt"
	"strings"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Zones resolves delivery addresses against configured delivery zones.
// Zones are not guaranteed disjoint: resolution walks active zones in
// (sort_order, created_at) order and the first match wins, so staff control
// the tie-break via sort_order.
type Zones struct {
	db *gorm.DB
}

func NewZones(db *gorm.DB) *Zones {
	return &Zones{db: db}
}

// Deliverability is the outcome of a zone lookup.
type Deliverability struct {
	Deliverable      bool                 `json:"deliverable"`
	Zone             *models.DeliveryZone `json:"zone,omitempty"`
	DeliveryFee      float64              `json:"delivery_fee,omitempty"`
	EstimatedMinutes *int                 `json:"estimated_minutes,omitempty"`
	MinimumOrder     *float64             `json:"minimum_order,omitempty"`
}

func (z *Zones) Create(zone *models.DeliveryZone) error {
	return z.db.Create(zone).Error
}

func (z *Zones) List(activeOnly bool) ([]models.DeliveryZone, error) {
	q := z.db.Order("sort_order asc, created_at asc")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var zones []models.DeliveryZone
	if err := q.Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

func (z *Zones) Get(id uint) (*models.DeliveryZone, error) {
	var zone models.DeliveryZone
	err := z.db.First(&zone, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("delivery zone %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

// ZoneUpdate lists the fields a zone edit may change; nil means "leave as is".
type ZoneUpdate struct {
	Name                     *string  `json:"name"`
	Description              *string  `json:"description"`
	DeliveryFee              *float64 `json:"delivery_fee"`
	MinimumOrder             *float64 `json:"minimum_order"`
	EstimatedDeliveryMinutes *int     `json:"estimated_delivery_minutes"`
	PostalCodes              *string  `json:"postal_codes"`
	AreaNames                *string  `json:"area_names"`
	IsActive                 *bool    `json:"is_active"`
	SortOrder                *int     `json:"sort_order"`
}

func (z *Zones) Update(id uint, upd ZoneUpdate) (*models.DeliveryZone, error) {
	if _, err := z.Get(id); err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.DeliveryFee != nil {
		changes["delivery_fee"] = *upd.DeliveryFee
	}
	if upd.MinimumOrder != nil {
		changes["minimum_order"] = *upd.MinimumOrder
	}
	if upd.EstimatedDeliveryMinutes != nil {
		changes["estimated_delivery_minutes"] = *upd.EstimatedDeliveryMinutes
	}
	if upd.PostalCodes != nil {
		changes["postal_codes"] = *upd.PostalCodes
	}
	if upd.AreaNames != nil {
		changes["area_names"] = *upd.AreaNames
	}
	if upd.IsActive != nil {
		changes["is_active"] = *upd.IsActive
	}
	if upd.SortOrder != nil {
		changes["sort_order"] = *upd.SortOrder
	}
	if len(changes) > 0 {
		if err := z.db.Model(&models.DeliveryZone{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return z.Get(id)
}

// Delete soft-deletes; orders and addresses keep their weak references.
func (z *Zones) Delete(id uint) error {
	res := z.db.Delete(&models.DeliveryZone{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delivery zone %d: %w", id, ErrNotFound)
	}
	return nil
}

// CheckByPostalCode returns the first active zone whose postal-code list
// contains the given code.
func (z *Zones) CheckByPostalCode(postalCode string) (Deliverability, error) {
	return z.check(postalCode, func(zone models.DeliveryZone) string { return zone.PostalCodes })
}

// CheckByAreaName returns the first active zone whose area-name list contains
// the given name.
func (z *Zones) CheckByAreaName(areaName string) (Deliverability, error) {
	return z.check(areaName, func(zone models.DeliveryZone) string { return zone.AreaNames })
}

func (z *Zones) check(value string, listOf func(models.DeliveryZone) string) (Deliverability, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return Deliverability{Deliverable: false}, nil
	}

	zones, err := z.List(true)
	if err != nil {
		return Deliverability{}, err
	}

	for i := range zones {
		list := listOf(zones[i])
		if list == "" {
			continue
		}
		for _, token := range strings.Split(list, ",") {
			if strings.ToLower(strings.TrimSpace(token)) == needle {
				zone := zones[i]
				return Deliverability{
					Deliverable:      true,
					Zone:             &zone,
					DeliveryFee:      zone.DeliveryFee,
					EstimatedMinutes: zone.EstimatedDeliveryMinutes,
					MinimumOrder:     zone.MinimumOrder,
				}, nil
			}
		}
	}

	return Deliverability{Deliverable: false}, nil
}
