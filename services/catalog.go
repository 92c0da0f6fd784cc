package services

import (
	"errors"
	"fmt"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Catalog owns menu items and their nested variants and addons. Variant and
// addon mutations are always scoped by the parent item id, so a guessed id
// from another item fails with ErrNotFound.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// ItemUpdate lists the fields a staff edit may change; nil means "leave as is".
type ItemUpdate struct {
	Name                  *string  `json:"name"`
	Description           *string  `json:"description"`
	Price                 *float64 `json:"price"`
	PhotoPath             *string  `json:"photo_path"`
	CategoryID            *uint    `json:"category_id"`
	IsAvailable           *bool    `json:"is_available"`
	LowStockThreshold     *int     `json:"low_stock_threshold"`
	AutoDisableOnStockout *bool    `json:"auto_disable_on_stockout"`
	SortOrder             *int     `json:"sort_order"`
}

func (u ItemUpdate) changes() map[string]interface{} {
	m := map[string]interface{}{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Description != nil {
		m["description"] = *u.Description
	}
	if u.Price != nil {
		m["price"] = *u.Price
	}
	if u.PhotoPath != nil {
		m["photo_path"] = *u.PhotoPath
	}
	if u.CategoryID != nil {
		m["category_id"] = *u.CategoryID
	}
	if u.IsAvailable != nil {
		m["is_available"] = *u.IsAvailable
	}
	if u.LowStockThreshold != nil {
		m["low_stock_threshold"] = *u.LowStockThreshold
	}
	if u.AutoDisableOnStockout != nil {
		m["auto_disable_on_stockout"] = *u.AutoDisableOnStockout
	}
	if u.SortOrder != nil {
		m["sort_order"] = *u.SortOrder
	}
	return m
}

func (c *Catalog) CreateItem(item *models.MenuItem) error {
	return c.db.Create(item).Error
}

// GetItem loads an item with its variants and addons in display order.
func (c *Catalog) GetItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := c.db.
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at asc")
		}).
		Preload("Addons", func(db *gorm.DB) *gorm.DB {
			return db.Order("group_name asc, sort_order asc, created_at asc")
		}).
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns items in display order; onlyAvailable limits the result
// to what a storefront may sell.
func (c *Catalog) ListItems(onlyAvailable bool) ([]models.MenuItem, error) {
	q := c.db.
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at asc")
		}).
		Preload("Addons", func(db *gorm.DB) *gorm.DB {
			return db.Order("group_name asc, sort_order asc, created_at asc")
		}).
		Order("sort_order asc, created_at desc")
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Catalog) UpdateItem(id uint, upd ItemUpdate) (*models.MenuItem, error) {
	if _, err := c.GetItem(id); err != nil {
		return nil, err
	}
	changes := upd.changes()
	if len(changes) > 0 {
		if err := c.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return c.GetItem(id)
}

// DeleteItem soft-deletes; historical order items keep referencing the row.
func (c *Catalog) DeleteItem(id uint) error {
	res := c.db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	return nil
}

func (c *Catalog) SetAvailability(id uint, available bool) (*models.MenuItem, error) {
	if _, err := c.GetItem(id); err != nil {
		return nil, err
	}
	if err := c.db.Model(&models.MenuItem{}).Where("id = ?", id).
		Update("is_available", available).Error; err != nil {
		return nil, err
	}
	return c.GetItem(id)
}

// SetStock updates the tracked stock (nil = stop tracking). When the new
// quantity is zero or below and the item opted into auto-disable, the item is
// marked unavailable in the same update.
func (c *Catalog) SetStock(id uint, quantity *int) (*models.MenuItem, error) {
	item, err := c.GetItem(id)
	if err != nil {
		return nil, err
	}
	changes := map[string]interface{}{"stock_quantity": quantity}
	if quantity != nil && *quantity <= 0 && item.AutoDisableOnStockout {
		changes["is_available"] = false
	}
	if err := c.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(changes).Error; err != nil {
		return nil, err
	}
	return c.GetItem(id)
}

// StockUpdate pairs an item with its new stock level for bulk edits.
type StockUpdate struct {
	ID            uint `json:"id" binding:"required"`
	StockQuantity *int `json:"stock_quantity"`
}

func (c *Catalog) BulkSetStock(updates []StockUpdate) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0, len(updates))
	for _, u := range updates {
		item, err := c.SetStock(u.ID, u.StockQuantity)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// ListLowStock returns tracked items at or below their low-stock threshold,
// emptiest first.
func (c *Catalog) ListLowStock() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := c.db.
		Preload("Category").
		Where("stock_quantity IS NOT NULL AND stock_quantity <= low_stock_threshold").
		Order("stock_quantity asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SortUpdate pairs an item with its new menu position.
type SortUpdate struct {
	ID        uint `json:"id" binding:"required"`
	SortOrder int  `json:"sort_order"`
}

func (c *Catalog) UpdateSortOrder(updates []SortUpdate) error {
	for _, u := range updates {
		if err := c.db.Model(&models.MenuItem{}).Where("id = ?", u.ID).
			Update("sort_order", u.SortOrder).Error; err != nil {
			return err
		}
	}
	return nil
}

// ── Variants ────────────────────────────────────────────────────────────────

type VariantUpdate struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	StockQuantity *int     `json:"stock_quantity"`
	ClearStock    bool     `json:"clear_stock"`
	IsAvailable   *bool    `json:"is_available"`
	SortOrder     *int     `json:"sort_order"`
}

func (u VariantUpdate) changes() map[string]interface{} {
	m := map[string]interface{}{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Price != nil {
		m["price"] = *u.Price
	}
	if u.ClearStock {
		m["stock_quantity"] = nil
	} else if u.StockQuantity != nil {
		m["stock_quantity"] = *u.StockQuantity
	}
	if u.IsAvailable != nil {
		m["is_available"] = *u.IsAvailable
	}
	if u.SortOrder != nil {
		m["sort_order"] = *u.SortOrder
	}
	return m
}

func (c *Catalog) CreateVariant(menuItemID uint, variant *models.MenuVariant) error {
	if _, err := c.GetItem(menuItemID); err != nil {
		return err
	}
	variant.MenuItemID = menuItemID
	return c.db.Create(variant).Error
}

func (c *Catalog) ListVariants(menuItemID uint) ([]models.MenuVariant, error) {
	if _, err := c.GetItem(menuItemID); err != nil {
		return nil, err
	}
	var variants []models.MenuVariant
	err := c.db.Where("menu_item_id = ?", menuItemID).
		Order("sort_order asc, created_at asc").
		Find(&variants).Error
	return variants, err
}

func (c *Catalog) findVariant(menuItemID, variantID uint) (*models.MenuVariant, error) {
	var variant models.MenuVariant
	err := c.db.Where("id = ? AND menu_item_id = ?", variantID, menuItemID).First(&variant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("variant %d for menu item %d: %w", variantID, menuItemID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

func (c *Catalog) UpdateVariant(menuItemID, variantID uint, upd VariantUpdate) (*models.MenuVariant, error) {
	if _, err := c.findVariant(menuItemID, variantID); err != nil {
		return nil, err
	}
	changes := upd.changes()
	if len(changes) > 0 {
		if err := c.db.Model(&models.MenuVariant{}).Where("id = ?", variantID).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return c.findVariant(menuItemID, variantID)
}

func (c *Catalog) DeleteVariant(menuItemID, variantID uint) error {
	if _, err := c.findVariant(menuItemID, variantID); err != nil {
		return err
	}
	return c.db.Delete(&models.MenuVariant{}, variantID).Error
}

// ── Addons ──────────────────────────────────────────────────────────────────

type AddonUpdate struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	GroupName     *string  `json:"group_name"`
	IsRequired    *bool    `json:"is_required"`
	StockQuantity *int     `json:"stock_quantity"`
	ClearStock    bool     `json:"clear_stock"`
	IsAvailable   *bool    `json:"is_available"`
	SortOrder     *int     `json:"sort_order"`
}

func (u AddonUpdate) changes() map[string]interface{} {
	m := map[string]interface{}{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Price != nil {
		m["price"] = *u.Price
	}
	if u.GroupName != nil {
		m["group_name"] = *u.GroupName
	}
	if u.IsRequired != nil {
		m["is_required"] = *u.IsRequired
	}
	if u.ClearStock {
		m["stock_quantity"] = nil
	} else if u.StockQuantity != nil {
		m["stock_quantity"] = *u.StockQuantity
	}
	if u.IsAvailable != nil {
		m["is_available"] = *u.IsAvailable
	}
	if u.SortOrder != nil {
		m["sort_order"] = *u.SortOrder
	}
	return m
}

func (c *Catalog) CreateAddon(menuItemID uint, addon *models.MenuAddon) error {
	if _, err := c.GetItem(menuItemID); err != nil {
		return err
	}
	addon.MenuItemID = menuItemID
	return c.db.Create(addon).Error
}

func (c *Catalog) ListAddons(menuItemID uint) ([]models.MenuAddon, error) {
	if _, err := c.GetItem(menuItemID); err != nil {
		return nil, err
	}
	var addons []models.MenuAddon
	err := c.db.Where("menu_item_id = ?", menuItemID).
		Order("group_name asc, sort_order asc, created_at asc").
		Find(&addons).Error
	return addons, err
}

func (c *Catalog) findAddon(menuItemID, addonID uint) (*models.MenuAddon, error) {
	var addon models.MenuAddon
	err := c.db.Where("id = ? AND menu_item_id = ?", addonID, menuItemID).First(&addon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("addon %d for menu item %d: %w", addonID, menuItemID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (c *Catalog) UpdateAddon(menuItemID, addonID uint, upd AddonUpdate) (*models.MenuAddon, error) {
	if _, err := c.findAddon(menuItemID, addonID); err != nil {
		return nil, err
	}
	changes := upd.changes()
	if len(changes) > 0 {
		if err := c.db.Model(&models.MenuAddon{}).Where("id = ?", addonID).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return c.findAddon(menuItemID, addonID)
}

func (c *Catalog) DeleteAddon(menuItemID, addonID uint) error {
	if _, err := c.findAddon(menuItemID, addonID); err != nil {
		return err
	}
	return c.db.Delete(&models.MenuAddon{}, addonID).Error
}

// ── Categories ──────────────────────────────────────────────────────────────

func (c *Catalog) CreateCategory(category *models.Category) error {
	return c.db.Create(category).Error
}

func (c *Catalog) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := c.db.Order("sort_order asc, created_at asc").Find(&categories).Error
	return categories, err
}

func (c *Catalog) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := c.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

func (c *Catalog) UpdateCategory(id uint, upd CategoryUpdate) (*models.Category, error) {
	if _, err := c.GetCategory(id); err != nil {
		return nil, err
	}
	changes := map[string]interface{}{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.SortOrder != nil {
		changes["sort_order"] = *upd.SortOrder
	}
	if len(changes) > 0 {
		if err := c.db.Model(&models.Category{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return c.GetCategory(id)
}

func (c *Catalog) DeleteCategory(id uint) error {
	res := c.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return nil
}
