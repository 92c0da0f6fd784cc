package handlers

import (
	"errors"
	"net/http"

	"foodly-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Service instances shared by all handlers, wired once at startup.
var (
	catalog   *services.Catalog
	zones     *services.Zones
	profiles  *services.Profiles
	settings  *services.Settings
	orders    *services.Orders
	addresses *services.Addresses
	stats     *services.Stats
)

// Init wires the handler package to the database. Must run after config.InitDB.
func Init(db *gorm.DB) {
	catalog = services.NewCatalog(db)
	zones = services.NewZones(db)
	profiles = services.NewProfiles(db)
	settings = services.NewSettings(db)
	orders = services.NewOrders(db)
	addresses = services.NewAddresses(db)
	stats = services.NewStats(db)
}

// fail translates service errors into specific HTTP responses so the UI can
// render an actionable message per failure condition.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUnavailable),
		errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrNotDeliverable),
		errors.Is(err, services.ErrMinimumNotMet),
		errors.Is(err, services.ErrRestaurantClosed):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
