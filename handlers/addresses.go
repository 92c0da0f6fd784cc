package handlers

import (
	"net/http"

	"foodly-api/middleware"
	"foodly-api/models"
	"foodly-api/services"

	"github.com/gin-gonic/gin"
)

type CreateAddressRequest struct {
	Label        string   `json:"label"`
	AddressLine1 string   `json:"address_line1" binding:"required"`
	AddressLine2 string   `json:"address_line2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postal_code" binding:"required"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Instructions string   `json:"instructions"`
	IsDefault    bool     `json:"is_default"`
}

// AddAddress saves a delivery address for the logged-in user
func AddAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address := models.UserAddress{
		Label:        req.Label,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Instructions: req.Instructions,
		IsDefault:    req.IsDefault,
	}
	if err := addresses.Create(middleware.GetUserID(c), &address); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved", "address": address})
}

// ListAddresses returns the logged-in user's saved addresses
func ListAddresses(c *gin.Context) {
	list, err := addresses.List(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "addresses": list})
}

// UpdateAddress applies a partial update to one of the user's addresses
func UpdateAddress(c *gin.Context) {
	id, ok := paramID(c, "addressId")
	if !ok {
		return
	}
	var upd services.AddressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	address, err := addresses.Update(middleware.GetUserID(c), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated", "address": address})
}

// SetDefaultAddress marks one address as the default
func SetDefaultAddress(c *gin.Context) {
	id, ok := paramID(c, "addressId")
	if !ok {
		return
	}
	address, err := addresses.SetDefault(middleware.GetUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default address set", "address": address})
}

// DeleteAddress removes a saved address
func DeleteAddress(c *gin.Context) {
	id, ok := paramID(c, "addressId")
	if !ok {
		return
	}
	if err := addresses.Delete(middleware.GetUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
