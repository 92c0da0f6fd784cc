package services

import (
	"testing"

	"foodly-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, c *Catalog, item models.MenuItem) *models.MenuItem {
	t.Helper()
	require.NoError(t, c.CreateItem(&item))
	return &item
}

func TestSetStockAutoDisablesOnStockout(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	item := seedItem(t, c, models.MenuItem{
		Name: "Margherita", Price: 9.50,
		IsAvailable: true, AutoDisableOnStockout: true, LowStockThreshold: 5,
	})

	updated, err := c.SetStock(item.ID, intPtr(0))
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	require.NotNil(t, updated.StockQuantity)
	assert.Equal(t, 0, *updated.StockQuantity)
}

func TestSetStockKeepsAvailabilityWhenAutoDisableOff(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	item := seedItem(t, c, models.MenuItem{
		Name: "Pasta", Price: 11.00,
		IsAvailable: true, AutoDisableOnStockout: false, LowStockThreshold: 5,
	})

	updated, err := c.SetStock(item.ID, intPtr(0))
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable)
}

func TestSetStockNilStopsTracking(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	item := seedItem(t, c, models.MenuItem{
		Name: "Salad", Price: 6.00,
		IsAvailable: true, AutoDisableOnStockout: true, LowStockThreshold: 5,
		StockQuantity: intPtr(3),
	})

	updated, err := c.SetStock(item.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.StockQuantity)
	assert.True(t, updated.IsAvailable)
}

func TestListLowStockAscendingByRemaining(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	seedItem(t, c, models.MenuItem{Name: "Plenty", Price: 5, IsAvailable: true, LowStockThreshold: 5, StockQuantity: intPtr(50)})
	seedItem(t, c, models.MenuItem{Name: "Untracked", Price: 5, IsAvailable: true, LowStockThreshold: 5})
	seedItem(t, c, models.MenuItem{Name: "Low", Price: 5, IsAvailable: true, LowStockThreshold: 5, StockQuantity: intPtr(4)})
	seedItem(t, c, models.MenuItem{Name: "Lower", Price: 5, IsAvailable: true, LowStockThreshold: 5, StockQuantity: intPtr(1)})

	items, err := c.ListLowStock()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Lower", items[0].Name)
	assert.Equal(t, "Low", items[1].Name)
}

func TestVariantScopedToParentItem(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	burger := seedItem(t, c, models.MenuItem{Name: "Burger", Price: 8, IsAvailable: true, LowStockThreshold: 5})
	pizza := seedItem(t, c, models.MenuItem{Name: "Pizza", Price: 12, IsAvailable: true, LowStockThreshold: 5})

	variant := models.MenuVariant{Name: "Large", Price: 10, IsAvailable: true}
	require.NoError(t, c.CreateVariant(burger.ID, &variant))

	// Editing the variant through the wrong parent must fail, not leak.
	_, err := c.UpdateVariant(pizza.ID, variant.ID, VariantUpdate{Price: floatPtr(99)})
	assert.ErrorIs(t, err, ErrNotFound)
	err = c.DeleteVariant(pizza.ID, variant.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := c.UpdateVariant(burger.ID, variant.ID, VariantUpdate{Price: floatPtr(10.50)})
	require.NoError(t, err)
	assert.Equal(t, 10.50, updated.Price)
}

func TestAddonScopedToParentItem(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	burger := seedItem(t, c, models.MenuItem{Name: "Burger", Price: 8, IsAvailable: true, LowStockThreshold: 5})
	pizza := seedItem(t, c, models.MenuItem{Name: "Pizza", Price: 12, IsAvailable: true, LowStockThreshold: 5})

	addon := models.MenuAddon{Name: "Cheese", Price: 1, IsAvailable: true}
	require.NoError(t, c.CreateAddon(burger.ID, &addon))

	_, err := c.UpdateAddon(pizza.ID, addon.ID, AddonUpdate{Price: floatPtr(2)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.DeleteAddon(pizza.ID, addon.ID), ErrNotFound)
}

func TestDeleteItemIsSoft(t *testing.T) {
	db := newTestDB(t)
	c := NewCatalog(db)
	item := seedItem(t, c, models.MenuItem{Name: "Retired", Price: 4, IsAvailable: true, LowStockThreshold: 5})

	require.NoError(t, c.DeleteItem(item.ID))
	_, err := c.GetItem(item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The row survives for historical order references.
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.MenuItem{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateItemPartial(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	item := seedItem(t, c, models.MenuItem{Name: "Wrap", Description: "plain", Price: 7, IsAvailable: true, LowStockThreshold: 5})

	updated, err := c.UpdateItem(item.ID, ItemUpdate{Price: floatPtr(7.50)})
	require.NoError(t, err)
	assert.Equal(t, 7.50, updated.Price)
	assert.Equal(t, "Wrap", updated.Name)
	assert.Equal(t, "plain", updated.Description)
}

func TestBulkSetStock(t *testing.T) {
	c := NewCatalog(newTestDB(t))
	a := seedItem(t, c, models.MenuItem{Name: "A", Price: 1, IsAvailable: true, LowStockThreshold: 5, AutoDisableOnStockout: true})
	b := seedItem(t, c, models.MenuItem{Name: "B", Price: 1, IsAvailable: true, LowStockThreshold: 5, AutoDisableOnStockout: true})

	items, err := c.BulkSetStock([]StockUpdate{
		{ID: a.ID, StockQuantity: intPtr(10)},
		{ID: b.ID, StockQuantity: intPtr(0)},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].IsAvailable)
	assert.False(t, items[1].IsAvailable)
}
