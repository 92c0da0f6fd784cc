package handlers

import (
	"net/http"

	"foodly-api/models"
	"foodly-api/services"

	"github.com/gin-gonic/gin"
)

type CreateZoneRequest struct {
	Name                     string   `json:"name" binding:"required"`
	Description              string   `json:"description"`
	DeliveryFee              float64  `json:"delivery_fee" binding:"gte=0"`
	MinimumOrder             *float64 `json:"minimum_order"`
	EstimatedDeliveryMinutes *int     `json:"estimated_delivery_minutes"`
	PostalCodes              string   `json:"postal_codes"`
	AreaNames                string   `json:"area_names"`
	SortOrder                int      `json:"sort_order"`
}

// AddZone creates a delivery zone (staff)
func AddZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	zone := models.DeliveryZone{
		Name:                     req.Name,
		Description:              req.Description,
		DeliveryFee:              req.DeliveryFee,
		MinimumOrder:             req.MinimumOrder,
		EstimatedDeliveryMinutes: req.EstimatedDeliveryMinutes,
		PostalCodes:              req.PostalCodes,
		AreaNames:                req.AreaNames,
		IsActive:                 true,
		SortOrder:                req.SortOrder,
	}
	if err := zones.Create(&zone); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Delivery zone added", "zone": zone})
}

// ListZones returns all zones, staff view
func ListZones(c *gin.Context) {
	list, err := zones.List(false)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "zones": list})
}

func GetZone(c *gin.Context) {
	id, ok := paramID(c, "zoneId")
	if !ok {
		return
	}
	zone, err := zones.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"zone": zone})
}

func UpdateZone(c *gin.Context) {
	id, ok := paramID(c, "zoneId")
	if !ok {
		return
	}
	var upd services.ZoneUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	zone, err := zones.Update(id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery zone updated", "zone": zone})
}

func DeleteZone(c *gin.Context) {
	id, ok := paramID(c, "zoneId")
	if !ok {
		return
	}
	if err := zones.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery zone deleted"})
}

// CheckDeliverability answers "can you deliver here?" for a postal code or an
// area name. Public endpoint used by the storefront checkout.
func CheckDeliverability(c *gin.Context) {
	postalCode := c.Query("postal_code")
	areaName := c.Query("area")

	var result services.Deliverability
	var err error
	switch {
	case postalCode != "":
		result, err = zones.CheckByPostalCode(postalCode)
	case areaName != "":
		result, err = zones.CheckByAreaName(areaName)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "postal_code or area query parameter required"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
