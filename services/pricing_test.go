package services

import (
	"testing"

	"foodly-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pricingFixture struct {
	db      *gorm.DB
	catalog *Catalog
	zones   *Zones
	pricing *Pricing
}

func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()
	db := newTestDB(t)
	return &pricingFixture{
		db:      db,
		catalog: NewCatalog(db),
		zones:   NewZones(db),
		pricing: NewPricing(db),
	}
}

func (f *pricingFixture) setTaxRate(t *testing.T, rate float64) {
	t.Helper()
	_, err := NewSettings(f.db).Update(SettingUpdate{TaxRate: &rate})
	require.NoError(t, err)
}

func TestPriceOrderPickupBasePrice(t *testing.T) {
	f := newPricingFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Bowl", Price: 10.00, IsAvailable: true, LowStockThreshold: 5})

	draft, err := f.pricing.PriceOrder([]RequestedItem{{MenuItemID: item.ID, Quantity: 2}}, nil)
	require.NoError(t, err)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, 20.00, draft.Items[0].ItemTotal)
	assert.Equal(t, 20.00, draft.Subtotal)
	assert.Equal(t, 0.0, draft.DeliveryFee)
	assert.Nil(t, draft.Zone)
	assert.Nil(t, draft.AddressSnapshot)
	assert.Equal(t, 20.00, draft.TotalAmount)
}

func TestPriceOrderAddonsArePerUnit(t *testing.T) {
	f := newPricingFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Bowl", Price: 10.00, IsAvailable: true, LowStockThreshold: 5})
	addon := models.MenuAddon{Name: "Extra Sauce", Price: 1.50, IsAvailable: true}
	require.NoError(t, f.catalog.CreateAddon(item.ID, &addon))

	draft, err := f.pricing.PriceOrder([]RequestedItem{{
		MenuItemID: item.ID, Quantity: 2,
		Addons: []RequestedAddon{{AddonID: addon.ID}},
	}}, nil)
	require.NoError(t, err)
	line := draft.Items[0]
	assert.Equal(t, 1.50, line.AddonsTotal)
	// (10.00 + 1.50) * 2
	assert.Equal(t, 23.00, line.ItemTotal)
	require.Len(t, line.SelectedAddons, 1)
	assert.Equal(t, "Extra Sauce", line.SelectedAddons[0].Name)
	assert.Equal(t, 1, line.SelectedAddons[0].Quantity)
}

func TestPriceOrderVariantReplacesBasePrice(t *testing.T) {
	f := newPricingFixture(t)
	f.setTaxRate(t, 5)
	burger := seedItem(t, f.catalog, models.MenuItem{Name: "Burger", Price: 8.00, IsAvailable: true, LowStockThreshold: 5})
	large := models.MenuVariant{Name: "Large", Price: 10.00, IsAvailable: true}
	require.NoError(t, f.catalog.CreateVariant(burger.ID, &large))
	cheese := models.MenuAddon{Name: "Cheese", Price: 1.00, IsAvailable: true}
	require.NoError(t, f.catalog.CreateAddon(burger.ID, &cheese))

	draft, err := f.pricing.PriceOrder([]RequestedItem{{
		MenuItemID: burger.ID, VariantID: &large.ID, Quantity: 1,
		Addons: []RequestedAddon{{AddonID: cheese.ID}},
	}}, nil)
	require.NoError(t, err)

	line := draft.Items[0]
	assert.Equal(t, 10.00, line.Price)
	assert.Equal(t, "Large", line.VariantName)
	require.NotNil(t, line.VariantPrice)
	assert.Equal(t, 10.00, *line.VariantPrice)
	assert.Equal(t, 11.00, line.ItemTotal)
	assert.Equal(t, 11.00, draft.Subtotal)
	assert.Equal(t, 0.55, draft.TaxAmount)
	assert.Equal(t, 11.55, draft.TotalAmount)
}

func TestPriceOrderResolvesDeliveryZone(t *testing.T) {
	f := newPricingFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Bowl", Price: 10.00, IsAvailable: true, LowStockThreshold: 5})
	seedZone(t, f.zones, models.DeliveryZone{Name: "Central", DeliveryFee: 4.50, PostalCodes: "10001", IsActive: true})

	address := &models.UserAddress{
		Label: "Home", AddressLine1: "1 Main St", City: "Springfield", PostalCode: "10001",
	}
	draft, err := f.pricing.PriceOrder([]RequestedItem{{MenuItemID: item.ID, Quantity: 1}}, address)
	require.NoError(t, err)
	require.NotNil(t, draft.Zone)
	assert.Equal(t, "Central", draft.Zone.Name)
	assert.Equal(t, 4.50, draft.DeliveryFee)
	assert.Equal(t, 14.50, draft.TotalAmount)
	require.NotNil(t, draft.AddressSnapshot)
	assert.Equal(t, "1 Main St", draft.AddressSnapshot.AddressLine1)
	assert.Equal(t, "10001", draft.AddressSnapshot.PostalCode)
}

func TestPriceOrderOutsideZonesFails(t *testing.T) {
	f := newPricingFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Bowl", Price: 10.00, IsAvailable: true, LowStockThreshold: 5})
	seedZone(t, f.zones, models.DeliveryZone{Name: "Central", DeliveryFee: 4.50, PostalCodes: "10001", IsActive: true})

	_, err := f.pricing.PriceOrder(
		[]RequestedItem{{MenuItemID: item.ID, Quantity: 1}},
		&models.UserAddress{PostalCode: "99999"},
	)
	assert.ErrorIs(t, err, ErrNotDeliverable)
}

func TestPriceOrderRejectsBadSelections(t *testing.T) {
	f := newPricingFixture(t)
	bowl := seedItem(t, f.catalog, models.MenuItem{Name: "Bowl", Price: 10.00, IsAvailable: true, LowStockThreshold: 5})
	other := seedItem(t, f.catalog, models.MenuItem{Name: "Other", Price: 5.00, IsAvailable: true, LowStockThreshold: 5})
	otherVariant := models.MenuVariant{Name: "Big", Price: 7.00, IsAvailable: true}
	require.NoError(t, f.catalog.CreateVariant(other.ID, &otherVariant))

	_, err := f.pricing.PriceOrder(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = f.pricing.PriceOrder([]RequestedItem{{MenuItemID: 9999, Quantity: 1}}, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// Variant belongs to a different item.
	_, err = f.pricing.PriceOrder([]RequestedItem{{MenuItemID: bowl.ID, VariantID: &otherVariant.ID, Quantity: 1}}, nil)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	// Addon belongs to a different item.
	otherAddon := models.MenuAddon{Name: "Side", Price: 2.00, IsAvailable: true}
	require.NoError(t, f.catalog.CreateAddon(other.ID, &otherAddon))
	_, err = f.pricing.PriceOrder([]RequestedItem{{
		MenuItemID: bowl.ID, Quantity: 1, Addons: []RequestedAddon{{AddonID: otherAddon.ID}},
	}}, nil)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestPriceOrderRejectsUnavailableAndOutOfStock(t *testing.T) {
	f := newPricingFixture(t)
	off := seedItem(t, f.catalog, models.MenuItem{Name: "Off", Price: 5.00, IsAvailable: false, LowStockThreshold: 5})
	_, err := f.pricing.PriceOrder([]RequestedItem{{MenuItemID: off.ID, Quantity: 1}}, nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	scarce := seedItem(t, f.catalog, models.MenuItem{
		Name: "Scarce", Price: 5.00, IsAvailable: true, LowStockThreshold: 5, StockQuantity: intPtr(2),
	})
	_, err = f.pricing.PriceOrder([]RequestedItem{{MenuItemID: scarce.ID, Quantity: 3}}, nil)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// Exactly the remaining stock is fine.
	_, err = f.pricing.PriceOrder([]RequestedItem{{MenuItemID: scarce.ID, Quantity: 2}}, nil)
	assert.NoError(t, err)

	// Unavailable variant fails even though the base item is fine.
	withVariant := seedItem(t, f.catalog, models.MenuItem{Name: "Combo", Price: 9.00, IsAvailable: true, LowStockThreshold: 5})
	disabled := models.MenuVariant{Name: "XL", Price: 12.00, IsAvailable: false}
	require.NoError(t, f.catalog.CreateVariant(withVariant.ID, &disabled))
	_, err = f.pricing.PriceOrder([]RequestedItem{{MenuItemID: withVariant.ID, VariantID: &disabled.ID, Quantity: 1}}, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPriceOrderVariantStockChecked(t *testing.T) {
	f := newPricingFixture(t)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Combo", Price: 9.00, IsAvailable: true, LowStockThreshold: 5})
	variant := models.MenuVariant{Name: "XL", Price: 12.00, IsAvailable: true, StockQuantity: intPtr(1)}
	require.NoError(t, f.catalog.CreateVariant(item.ID, &variant))

	_, err := f.pricing.PriceOrder([]RequestedItem{{MenuItemID: item.ID, VariantID: &variant.ID, Quantity: 2}}, nil)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestPriceOrderRoundsToCents(t *testing.T) {
	f := newPricingFixture(t)
	f.setTaxRate(t, 7.25)
	item := seedItem(t, f.catalog, models.MenuItem{Name: "Taco", Price: 3.33, IsAvailable: true, LowStockThreshold: 5})

	draft, err := f.pricing.PriceOrder([]RequestedItem{{MenuItemID: item.ID, Quantity: 3}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9.99, draft.Subtotal)
	// 9.99 * 0.0725 = 0.724275 -> 0.72
	assert.Equal(t, 0.72, draft.TaxAmount)
	assert.Equal(t, 10.71, draft.TotalAmount)
}
