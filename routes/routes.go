package routes

import (
	"foodly-api/handlers"
	"foodly-api/middleware"
	"foodly-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Storefront reads (no auth needed)
		public.GET("/menu", handlers.GetPublicMenu)
		public.GET("/menu/:itemId", handlers.GetMenuItem)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/restaurant", handlers.GetPublicRestaurantInfo)
		public.GET("/restaurant/open", handlers.CheckOpenNow)
		public.GET("/delivery-zones/check", handlers.CheckDeliverability)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)

		// Checkout — guests allowed, claims attached when present
		public.POST("/orders", middleware.AuthOptional(), handlers.PlaceOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/orders/me", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderDetail)
		auth.PUT("/orders/:id/cancel", handlers.CancelOrder)

		// Saved addresses
		auth.POST("/addresses", handlers.AddAddress)
		auth.GET("/addresses", handlers.ListAddresses)
		auth.PUT("/addresses/:addressId", handlers.UpdateAddress)
		auth.PUT("/addresses/:addressId/default", handlers.SetDefaultAddress)
		auth.DELETE("/addresses/:addressId", handlers.DeleteAddress)
	}

	// ── Staff routes (staff + admin) ───────────────────────────────
	staff := r.Group("/api/admin")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStaff, models.RoleAdmin))
	{
		// Menu management
		staff.POST("/menu", handlers.AddMenuItem)
		staff.GET("/menu", handlers.ListMenuItems)
		staff.GET("/menu/low-stock", handlers.ListLowStock)
		staff.PUT("/menu/sort-order", handlers.UpdateMenuSortOrder)
		staff.PUT("/menu/stock", handlers.BulkSetStock)
		staff.GET("/menu/:itemId", handlers.GetMenuItem)
		staff.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		staff.DELETE("/menu/:itemId", handlers.DeleteMenuItem)
		staff.PUT("/menu/:itemId/availability", handlers.SetMenuItemAvailability)
		staff.PUT("/menu/:itemId/stock", handlers.SetMenuItemStock)

		// Variants & addons, scoped under the parent item
		staff.POST("/menu/:itemId/variants", handlers.AddVariant)
		staff.GET("/menu/:itemId/variants", handlers.ListVariants)
		staff.PUT("/menu/:itemId/variants/:variantId", handlers.UpdateVariant)
		staff.DELETE("/menu/:itemId/variants/:variantId", handlers.DeleteVariant)
		staff.POST("/menu/:itemId/addons", handlers.AddAddon)
		staff.GET("/menu/:itemId/addons", handlers.ListAddons)
		staff.PUT("/menu/:itemId/addons/:addonId", handlers.UpdateAddon)
		staff.DELETE("/menu/:itemId/addons/:addonId", handlers.DeleteAddon)

		// Categories
		staff.POST("/categories", handlers.AddCategory)
		staff.PUT("/categories/:categoryId", handlers.UpdateCategory)
		staff.DELETE("/categories/:categoryId", handlers.DeleteCategory)

		// Delivery zones
		staff.POST("/delivery-zones", handlers.AddZone)
		staff.GET("/delivery-zones", handlers.ListZones)
		staff.GET("/delivery-zones/:zoneId", handlers.GetZone)
		staff.PUT("/delivery-zones/:zoneId", handlers.UpdateZone)
		staff.DELETE("/delivery-zones/:zoneId", handlers.DeleteZone)

		// Restaurant profile & hours
		staff.GET("/restaurant-profile", handlers.GetRestaurantProfile)
		staff.PUT("/restaurant-profile", handlers.UpdateRestaurantProfile)
		staff.PUT("/restaurant-profile/holiday-closures", handlers.UpdateHolidayClosures)
		staff.PUT("/restaurant-profile/special-hours", handlers.UpdateSpecialHours)

		// Order management
		staff.POST("/orders", handlers.StaffPlaceOrder)
		staff.GET("/orders", handlers.ListOrders)
		staff.GET("/orders/ready", handlers.ListReadyOrders)
		staff.GET("/orders/:id", handlers.GetOrderDetail)
		staff.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Dashboard
		staff.GET("/stats/dashboard", handlers.GetDashboardStats)
		staff.GET("/stats/revenue", handlers.GetRevenueStats)
		staff.GET("/stats/orders-by-status", handlers.GetOrdersByStatus)
		staff.GET("/stats/recent-orders", handlers.GetRecentOrders)
		staff.GET("/stats/popular-items", handlers.GetPopularItems)
	}

	// ── Admin-only routes ──────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/settings", handlers.GetSettings)
		admin.PUT("/settings", handlers.UpdateSettings)
		admin.PUT("/orders/:id/force-status", handlers.ForceOrderStatus)
		admin.DELETE("/orders/:id", handlers.DeleteOrder)
		admin.GET("/users", handlers.ListUsers)
	}
}
