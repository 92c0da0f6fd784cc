package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"foodly-api/models"
	"foodly-api/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Orders owns the order lifecycle: creation (pricing + snapshots + the single
// persistence write) and status transitions through the state machine.
type Orders struct {
	db       *gorm.DB
	pricing  *Pricing
	profiles *Profiles
	settings *Settings

	// now is injectable for deterministic open/closed gating in tests.
	now func() time.Time
}

func NewOrders(db *gorm.DB) *Orders {
	return &Orders{
		db:       db,
		pricing:  NewPricing(db),
		profiles: NewProfiles(db),
		settings: NewSettings(db),
		now:      time.Now,
	}
}

// WithClock overrides the clock used for open/closed gating.
func (o *Orders) WithClock(now func() time.Time) *Orders {
	o.now = now
	return o
}

// CreateOrderInput is everything a checkout request carries.
type CreateOrderInput struct {
	Items               []RequestedItem
	UserID              *uint // nil for guest orders
	DeliveryAddressID   *uint // nil for pickup
	SpecialInstructions string

	// TotalAmount overrides the computed total when importing legacy orders.
	TotalAmount *float64

	// IgnoreClosedHours lets staff key in phone orders after hours.
	IgnoreClosedHours bool
}

// Create prices the request, gates on opening hours and minimum-order rules,
// and persists the order with its line snapshots in a single write, in
// status PENDING. Stock is NOT reserved or decremented here.
func (o *Orders) Create(in CreateOrderInput) (*models.Order, error) {
	if !in.IgnoreClosedHours {
		status, err := o.profiles.IsOpenAt(o.now())
		if err != nil {
			return nil, err
		}
		if !status.Open {
			reason := status.Reason
			if reason == "" {
				reason = "closed"
			}
			return nil, fmt.Errorf("%s: %w", reason, ErrRestaurantClosed)
		}
	}

	var address *models.UserAddress
	if in.DeliveryAddressID != nil {
		var addr models.UserAddress
		q := o.db.Where("id = ?", *in.DeliveryAddressID)
		if in.UserID != nil {
			q = q.Where("user_id = ?", *in.UserID)
		}
		if err := q.First(&addr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("delivery address %d: %w", *in.DeliveryAddressID, ErrNotFound)
			}
			return nil, err
		}
		address = &addr
	}

	draft, err := o.pricing.PriceOrder(in.Items, address)
	if err != nil {
		return nil, err
	}

	setting, err := o.settings.Get()
	if err != nil {
		return nil, err
	}
	if setting.MinimumOrder > 0 && draft.Subtotal < setting.MinimumOrder {
		return nil, fmt.Errorf("subtotal %.2f is below the store minimum %.2f: %w",
			draft.Subtotal, setting.MinimumOrder, ErrMinimumNotMet)
	}
	if draft.Zone != nil && draft.Zone.MinimumOrder != nil && draft.Subtotal < *draft.Zone.MinimumOrder {
		return nil, fmt.Errorf("subtotal %.2f is below zone %q minimum %.2f: %w",
			draft.Subtotal, draft.Zone.Name, *draft.Zone.MinimumOrder, ErrMinimumNotMet)
	}

	order := models.Order{
		OrderNumber:             newOrderNumber(),
		UserID:                  in.UserID,
		Status:                  models.StatusPending,
		Items:                   draft.Items,
		DeliveryAddressID:       in.DeliveryAddressID,
		DeliveryAddressSnapshot: draft.AddressSnapshot,
		DeliveryFee:             draft.DeliveryFee,
		Subtotal:                draft.Subtotal,
		TaxAmount:               draft.TaxAmount,
		TotalAmount:             draft.TotalAmount,
		SpecialInstructions:     in.SpecialInstructions,
	}
	if draft.Zone != nil {
		order.DeliveryZoneID = &draft.Zone.ID
	}
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	}

	if err := o.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return o.Get(order.ID)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func (o *Orders) Get(id uint) (*models.Order, error) {
	var order models.Order
	err := o.db.
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("User").
		Preload("DeliveryZone").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns all orders, newest first, optionally filtered by status.
func (o *Orders) List(status models.OrderStatus) ([]models.Order, error) {
	q := o.db.Preload("Items").Preload("User").Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *Orders) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := o.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// FindReadyForDelivery returns READY orders oldest first, for FIFO dispatch.
func (o *Orders) FindReadyForDelivery() ([]models.Order, error) {
	var orders []models.Order
	err := o.db.Preload("Items").Preload("User").
		Where("status = ?", models.StatusReady).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order through the state machine. Setting the current
// status again is a no-op that leaves the order untouched.
func (o *Orders) UpdateStatus(id uint, to models.OrderStatus) (*models.Order, error) {
	order, err := o.Get(id)
	if err != nil {
		return nil, err
	}
	if err := statemachine.CanTransition(order.Status, to); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidTransition)
	}
	if order.Status == to {
		return order, nil
	}
	if err := o.db.Model(order).Update("status", to).Error; err != nil {
		return nil, err
	}
	return o.Get(id)
}

// ForceStatus overwrites the status without transition checks. Administrative
// correction path only; the status must still be a known value.
func (o *Orders) ForceStatus(id uint, to models.OrderStatus) (*models.Order, error) {
	if !statemachine.IsValidStatus(to) {
		return nil, fmt.Errorf("unknown status %q: %w", to, ErrInvalidTransition)
	}
	order, err := o.Get(id)
	if err != nil {
		return nil, err
	}
	if err := o.db.Model(order).Update("status", to).Error; err != nil {
		return nil, err
	}
	return o.Get(id)
}

// Delete hard-deletes an order and its line items. Rare administrative path.
func (o *Orders) Delete(id uint) error {
	if _, err := o.Get(id); err != nil {
		return err
	}
	return o.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}
