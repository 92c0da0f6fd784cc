package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	SortOrder   int            `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	PhotoPath   string    `json:"photo_path"`
	CategoryID  *uint     `json:"category_id"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsAvailable bool      `json:"is_available"`

	// StockQuantity is nil when stock is not tracked for this item.
	StockQuantity         *int `json:"stock_quantity"`
	LowStockThreshold     int  `json:"low_stock_threshold" gorm:"default:5"`
	AutoDisableOnStockout bool `json:"auto_disable_on_stockout"`

	SortOrder int           `json:"sort_order" gorm:"default:0"`
	Variants  []MenuVariant `json:"variants,omitempty" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	Addons    []MenuAddon   `json:"addons,omitempty" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// MenuVariant replaces the item's base price when selected.
type MenuVariant struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MenuItemID    uint      `json:"menu_item_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	StockQuantity *int      `json:"stock_quantity"`
	IsAvailable   bool      `json:"is_available"`
	SortOrder     int       `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MenuAddon is priced additively on top of the base/variant price.
type MenuAddon struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MenuItemID    uint      `json:"menu_item_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Price         float64   `json:"price" gorm:"not null"`
	GroupName     string    `json:"group_name"`
	IsRequired    bool      `json:"is_required" gorm:"default:false"`
	StockQuantity *int      `json:"stock_quantity"`
	IsAvailable   bool      `json:"is_available"`
	SortOrder     int       `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
