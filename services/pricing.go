package services

import (
	"fmt"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Pricing resolves a requested item list against the live catalog and builds
// the immutable snapshots an order is persisted with. It never writes and
// never touches stock: assembly is all-or-nothing before the single order
// insert, and stock is only ever adjusted through explicit staff edits.
type Pricing struct {
	catalog  *Catalog
	zones    *Zones
	settings *Settings
}

func NewPricing(db *gorm.DB) *Pricing {
	return &Pricing{
		catalog:  NewCatalog(db),
		zones:    NewZones(db),
		settings: NewSettings(db),
	}
}

// RequestedAddon selects one addon of the item, with an optional quantity
// (defaults to 1).
type RequestedAddon struct {
	AddonID  uint `json:"addon_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// RequestedItem is one line of a checkout request.
type RequestedItem struct {
	MenuItemID uint             `json:"menu_item_id" binding:"required"`
	VariantID  *uint            `json:"variant_id"`
	Quantity   int              `json:"quantity" binding:"required,min=1"`
	Addons     []RequestedAddon `json:"addons"`
	Notes      string           `json:"notes"`
}

// OrderDraft is a fully priced order that has not been persisted yet.
type OrderDraft struct {
	Items           []models.OrderItem
	Subtotal        float64
	TaxAmount       float64
	DeliveryFee     float64
	TotalAmount     float64
	Zone            *models.DeliveryZone
	AddressSnapshot *models.AddressSnapshot
}

// PriceOrder prices every requested line against the current catalog and, if
// a delivery address is given, resolves the delivery zone and fee. A nil
// address means pickup: no fee, no zone.
func (p *Pricing) PriceOrder(requested []RequestedItem, address *models.UserAddress) (*OrderDraft, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("order has no items: %w", ErrInvalidSelection)
	}

	draft := &OrderDraft{}

	for _, req := range requested {
		line, err := p.priceLine(req)
		if err != nil {
			return nil, err
		}
		draft.Items = append(draft.Items, *line)
		draft.Subtotal += line.ItemTotal
	}
	draft.Subtotal = roundMoney(draft.Subtotal)

	if address != nil {
		result, err := p.zones.CheckByPostalCode(address.PostalCode)
		if err != nil {
			return nil, err
		}
		if !result.Deliverable {
			return nil, fmt.Errorf("postal code %q: %w", address.PostalCode, ErrNotDeliverable)
		}
		draft.Zone = result.Zone
		draft.DeliveryFee = result.DeliveryFee
		draft.AddressSnapshot = &models.AddressSnapshot{
			Label:        address.Label,
			AddressLine1: address.AddressLine1,
			AddressLine2: address.AddressLine2,
			City:         address.City,
			State:        address.State,
			PostalCode:   address.PostalCode,
			Country:      address.Country,
			Instructions: address.Instructions,
		}
	}

	setting, err := p.settings.Get()
	if err != nil {
		return nil, err
	}
	draft.TaxAmount = roundMoney(draft.Subtotal * setting.TaxRate / 100)
	draft.TotalAmount = roundMoney(draft.Subtotal + draft.TaxAmount + draft.DeliveryFee)

	return draft, nil
}

// priceLine resolves one requested line into an immutable snapshot.
func (p *Pricing) priceLine(req RequestedItem) (*models.OrderItem, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("menu item %d: quantity must be at least 1: %w", req.MenuItemID, ErrInvalidSelection)
	}

	item, err := p.catalog.GetItem(req.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("menu item %q: %w", item.Name, ErrUnavailable)
	}
	if item.StockQuantity != nil && req.Quantity > *item.StockQuantity {
		return nil, fmt.Errorf("menu item %q has %d left: %w", item.Name, *item.StockQuantity, ErrOutOfStock)
	}

	line := &models.OrderItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Quantity:   req.Quantity,
		Price:      item.Price,
		ItemNotes:  req.Notes,
	}

	if req.VariantID != nil {
		variant := findVariant(item.Variants, *req.VariantID)
		if variant == nil {
			return nil, fmt.Errorf("variant %d on menu item %q: %w", *req.VariantID, item.Name, ErrInvalidSelection)
		}
		if !variant.IsAvailable {
			return nil, fmt.Errorf("variant %q of %q: %w", variant.Name, item.Name, ErrUnavailable)
		}
		if variant.StockQuantity != nil && req.Quantity > *variant.StockQuantity {
			return nil, fmt.Errorf("variant %q of %q has %d left: %w", variant.Name, item.Name, *variant.StockQuantity, ErrOutOfStock)
		}
		price := variant.Price
		line.Price = price // variant price replaces the base price
		line.VariantID = &variant.ID
		line.VariantName = variant.Name
		line.VariantPrice = &price
	}

	for _, sel := range req.Addons {
		addon := findAddon(item.Addons, sel.AddonID)
		if addon == nil {
			return nil, fmt.Errorf("addon %d on menu item %q: %w", sel.AddonID, item.Name, ErrInvalidSelection)
		}
		if !addon.IsAvailable {
			return nil, fmt.Errorf("addon %q of %q: %w", addon.Name, item.Name, ErrUnavailable)
		}
		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}
		line.SelectedAddons = append(line.SelectedAddons, models.SelectedAddon{
			ID:       addon.ID,
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: qty,
		})
		line.AddonsTotal += addon.Price * float64(qty)
	}
	line.AddonsTotal = roundMoney(line.AddonsTotal)
	line.ItemTotal = roundMoney((line.Price + line.AddonsTotal) * float64(req.Quantity))

	return line, nil
}

func findVariant(variants []models.MenuVariant, id uint) *models.MenuVariant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}

func findAddon(addons []models.MenuAddon, id uint) *models.MenuAddon {
	for i := range addons {
		if addons[i].ID == id {
			return &addons[i]
		}
	}
	return nil
}
