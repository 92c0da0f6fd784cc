package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns headline totals for the admin dashboard
func GetDashboardStats(c *gin.Context) {
	result, err := stats.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRevenueStats returns per-day revenue for the last 7 days (override with ?days=)
func GetRevenueStats(c *gin.Context) {
	days := queryInt(c, "days", 7)
	daily, err := stats.Revenue(days)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily": daily})
}

// GetOrdersByStatus returns per-day order counts per status
func GetOrdersByStatus(c *gin.Context) {
	days := queryInt(c, "days", 7)
	daily, err := stats.OrdersByStatus(days)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily": daily})
}

// GetRecentOrders returns the newest orders for the dashboard table
func GetRecentOrders(c *gin.Context) {
	list, err := stats.RecentOrders(queryInt(c, "limit", 10))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// GetPopularItems ranks menu items by quantity sold
func GetPopularItems(c *gin.Context) {
	items, err := stats.PopularItems(queryInt(c, "limit", 5))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
