package handlers

import (
	"net/http"
	"strconv"

	"foodly-api/models"
	"foodly-api/services"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// ── Menu items ──────────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name                  string  `json:"name" binding:"required"`
	Description           string  `json:"description"`
	Price                 float64 `json:"price" binding:"required,gte=0"`
	PhotoPath             string  `json:"photo_path"`
	CategoryID            *uint   `json:"category_id"`
	StockQuantity         *int    `json:"stock_quantity"`
	LowStockThreshold     *int    `json:"low_stock_threshold"`
	AutoDisableOnStockout *bool   `json:"auto_disable_on_stockout"`
	SortOrder             int     `json:"sort_order"`
}

// AddMenuItem creates a menu item (staff)
func AddMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:                  req.Name,
		Description:           req.Description,
		Price:                 req.Price,
		PhotoPath:             req.PhotoPath,
		CategoryID:            req.CategoryID,
		StockQuantity:         req.StockQuantity,
		LowStockThreshold:     5,
		AutoDisableOnStockout: true,
		IsAvailable:           true,
		SortOrder:             req.SortOrder,
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}
	if req.AutoDisableOnStockout != nil {
		item.AutoDisableOnStockout = *req.AutoDisableOnStockout
	}

	if err := catalog.CreateItem(&item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// ListMenuItems returns the full menu (staff view includes unavailable items)
func ListMenuItems(c *gin.Context) {
	items, err := catalog.ListItems(false)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetMenuItem returns one item with variants and addons
func GetMenuItem(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	item, err := catalog.GetItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateMenuItem applies a partial update to a menu item
func UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var upd services.ItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := catalog.UpdateItem(id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem soft-deletes a menu item
func DeleteMenuItem(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	if err := catalog.DeleteItem(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetMenuItemAvailability toggles an item on or off the storefront
func SetMenuItemAvailability(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := catalog.SetAvailability(id, *req.IsAvailable)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "item": item})
}

type SetStockRequest struct {
	StockQuantity *int `json:"stock_quantity"`
}

// SetMenuItemStock updates tracked stock; may auto-disable on stockout
func SetMenuItemStock(c *gin.Context) {
	id, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := catalog.SetStock(id, req.StockQuantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "item": item})
}

// BulkSetStock updates several items' stock in one call
func BulkSetStock(c *gin.Context) {
	var req []services.StockUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items, err := catalog.BulkSetStock(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "items": items})
}

// ListLowStock returns items at or below their low-stock threshold
func ListLowStock(c *gin.Context) {
	items, err := catalog.ListLowStock()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// UpdateMenuSortOrder repositions items on the menu
func UpdateMenuSortOrder(c *gin.Context) {
	var req []services.SortUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := catalog.UpdateSortOrder(req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sort order updated"})
}

// ── Variants ────────────────────────────────────────────────────────────────

type CreateVariantRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"required,gte=0"`
	StockQuantity *int    `json:"stock_quantity"`
	SortOrder     int     `json:"sort_order"`
}

func AddVariant(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variant := models.MenuVariant{
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsAvailable:   true,
		SortOrder:     req.SortOrder,
	}
	if err := catalog.CreateVariant(itemID, &variant); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Variant added", "variant": variant})
}

func ListVariants(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	variants, err := catalog.ListVariants(itemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(variants), "variants": variants})
}

func UpdateVariant(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	variantID, ok := paramID(c, "variantId")
	if !ok {
		return
	}
	var upd services.VariantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variant, err := catalog.UpdateVariant(itemID, variantID, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant updated", "variant": variant})
}

func DeleteVariant(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	variantID, ok := paramID(c, "variantId")
	if !ok {
		return
	}
	if err := catalog.DeleteVariant(itemID, variantID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
}

// ── Addons ──────────────────────────────────────────────────────────────────

type CreateAddonRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"gte=0"`
	GroupName     string  `json:"group_name"`
	IsRequired    bool    `json:"is_required"`
	StockQuantity *int    `json:"stock_quantity"`
	SortOrder     int     `json:"sort_order"`
}

func AddAddon(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	var req CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addon := models.MenuAddon{
		Name:          req.Name,
		Price:         req.Price,
		GroupName:     req.GroupName,
		IsRequired:    req.IsRequired,
		StockQuantity: req.StockQuantity,
		IsAvailable:   true,
		SortOrder:     req.SortOrder,
	}
	if err := catalog.CreateAddon(itemID, &addon); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Addon added", "addon": addon})
}

func ListAddons(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	addons, err := catalog.ListAddons(itemID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(addons), "addons": addons})
}

func UpdateAddon(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	addonID, ok := paramID(c, "addonId")
	if !ok {
		return
	}
	var upd services.AddonUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addon, err := catalog.UpdateAddon(itemID, addonID, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon updated", "addon": addon})
}

func DeleteAddon(c *gin.Context) {
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}
	addonID, ok := paramID(c, "addonId")
	if !ok {
		return
	}
	if err := catalog.DeleteAddon(itemID, addonID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon deleted"})
}

// ── Categories ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func AddCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := catalog.CreateCategory(&category); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added", "category": category})
}

func ListCategories(c *gin.Context) {
	categories, err := catalog.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

func UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	var upd services.CategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := catalog.UpdateCategory(id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

func DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "categoryId")
	if !ok {
		return
	}
	if err := catalog.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
