package services

import (
	"time"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Stats aggregates order data for the admin dashboard. Simple SUM/GROUP BY
// material, read-only.
type Stats struct {
	db *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{db: db}
}

type DashboardStats struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalMenuItems int64   `json:"total_menu_items"`
	PendingOrders  int64   `json:"pending_orders"`
}

func (s *Stats) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	var revenue *float64
	if err := s.db.Model(&models.Order{}).
		Select("SUM(total_amount)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = roundMoney(*revenue)
	}
	if err := s.db.Model(&models.MenuItem{}).Count(&stats.TotalMenuItems).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// Revenue buckets COMPLETED orders of the last `days` days per calendar day,
// including empty days.
func (s *Stats) Revenue(days int) ([]DailyRevenue, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	var orders []models.Order
	if err := s.db.
		Where("status = ? AND created_at >= ?", models.StatusCompleted, since).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	byDate := map[string]float64{}
	for _, o := range orders {
		byDate[o.CreatedAt.Format("2006-01-02")] += o.TotalAmount
	}

	result := make([]DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		result = append(result, DailyRevenue{Date: date, Revenue: roundMoney(byDate[date])})
	}
	return result, nil
}

type DailyStatusCounts struct {
	Date      string `json:"date"`
	Pending   int    `json:"pending"`
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
}

// OrdersByStatus counts pending/completed/cancelled orders per day for the
// last `days` days.
func (s *Stats) OrdersByStatus(days int) ([]DailyStatusCounts, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	var orders []models.Order
	if err := s.db.Where("created_at >= ?", since).Find(&orders).Error; err != nil {
		return nil, err
	}

	byDate := map[string]*DailyStatusCounts{}
	result := make([]DailyStatusCounts, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		result[days-1-i] = DailyStatusCounts{Date: date}
		byDate[date] = &result[days-1-i]
	}
	for _, o := range orders {
		counts, ok := byDate[o.CreatedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		switch o.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusCancelled:
			counts.Cancelled++
		}
	}
	return result, nil
}

func (s *Stats) RecentOrders(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []models.Order
	err := s.db.Preload("Items").Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

type PopularItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// PopularItems ranks menu items by total quantity sold across all orders,
// using the snapshot name/price on the line items.
func (s *Stats) PopularItems(limit int) ([]PopularItem, error) {
	if limit <= 0 {
		limit = 5
	}
	var items []PopularItem
	err := s.db.Model(&models.OrderItem{}).
		Select("menu_item_id, name, SUM(quantity) AS order_count, SUM(item_total) AS revenue").
		Group("menu_item_id, name").
		Order("order_count DESC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Revenue = roundMoney(items[i].Revenue)
	}
	return items, nil
}
