package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusAccepted       OrderStatus = "ACCEPTED"
	StatusCooking        OrderStatus = "COOKING"
	StatusReady          OrderStatus = "READY"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// AddressSnapshot is a denormalized copy of the delivery address captured at
// order time, so later edits or deletion of the saved address never change
// what was agreed for this order.
type AddressSnapshot struct {
	Label        string `json:"label,omitempty"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func (a AddressSnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *AddressSnapshot) Scan(src interface{}) error { return scanJSON(a, src) }

// SelectedAddon is the price/name snapshot of one addon chosen on a line item.
type SelectedAddon struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type SelectedAddons []SelectedAddon

func (s SelectedAddons) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *SelectedAddons) Scan(src interface{}) error { return scanJSON(s, src) }

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OrderNumber string      `json:"order_number" gorm:"uniqueIndex"`
	UserID      *uint       `json:"user_id"` // nil for guest orders
	User        *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// Delivery fields. The live address/zone rows may change or disappear
	// later; the snapshot below is what the order was actually placed with.
	DeliveryAddressID       *uint            `json:"delivery_address_id"`
	DeliveryZoneID          *uint            `json:"delivery_zone_id"`
	DeliveryZone            *DeliveryZone    `json:"delivery_zone,omitempty" gorm:"foreignKey:DeliveryZoneID"`
	DeliveryAddressSnapshot *AddressSnapshot `json:"delivery_address_snapshot" gorm:"type:text"`

	DeliveryFee float64 `json:"delivery_fee" gorm:"default:0"`
	Subtotal    float64 `json:"subtotal" gorm:"default:0"`
	TaxAmount   float64 `json:"tax_amount" gorm:"default:0"`
	TotalAmount float64 `json:"total_amount" gorm:"not null"`

	SpecialInstructions string `json:"special_instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is an immutable snapshot of one priced line. Price is the
// resolved unit price (variant price when a variant was selected, base price
// otherwise); later catalog edits never alter placed orders.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name       string    `json:"name"` // snapshot name
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"` // snapshot unit price

	// Variant snapshot
	VariantID    *uint    `json:"variant_id"`
	VariantName  string   `json:"variant_name"`
	VariantPrice *float64 `json:"variant_price"`

	// Addons snapshot
	SelectedAddons SelectedAddons `json:"selected_addons" gorm:"type:text"`
	AddonsTotal    float64        `json:"addons_total" gorm:"default:0"`

	// (unit price + per-unit addons total) * quantity
	ItemTotal float64 `json:"item_total" gorm:"default:0"`

	ItemNotes string `json:"item_notes"`
}
