package handlers

import (
	"net/http"

	"foodly-api/middleware"
	"foodly-api/models"
	"foodly-api/services"
	"foodly-api/statemachine"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	Items               []services.RequestedItem `json:"items" binding:"required,min=1"`
	DeliveryAddressID   *uint                    `json:"delivery_address_id"`
	SpecialInstructions string                   `json:"special_instructions"`
}

// PlaceOrder creates a new order. Guests may order too; the order is simply
// not attached to an account.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Create(services.CreateOrderInput{
		Items:               req.Items,
		UserID:              middleware.GetOptionalUserID(c),
		DeliveryAddressID:   req.DeliveryAddressID,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

type StaffPlaceOrderRequest struct {
	Items               []services.RequestedItem `json:"items" binding:"required,min=1"`
	UserID              *uint                    `json:"user_id"`
	DeliveryAddressID   *uint                    `json:"delivery_address_id"`
	SpecialInstructions string                   `json:"special_instructions"`
	TotalAmount         *float64                 `json:"total_amount"`
	IgnoreClosedHours   bool                     `json:"ignore_closed_hours"`
}

// StaffPlaceOrder lets staff key in phone orders, optionally after hours and
// with a caller-supplied total for legacy imports.
func StaffPlaceOrder(c *gin.Context) {
	var req StaffPlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Create(services.CreateOrderInput{
		Items:               req.Items,
		UserID:              req.UserID,
		DeliveryAddressID:   req.DeliveryAddressID,
		SpecialInstructions: req.SpecialInstructions,
		TotalAmount:         req.TotalAmount,
		IgnoreClosedHours:   req.IgnoreClosedHours,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

// GetMyOrders returns all orders for the logged-in customer
func GetMyOrders(c *gin.Context) {
	list, err := orders.ListByUser(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}

// GetOrderDetail returns a single order; customers only see their own.
func GetOrderDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orders.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	if middleware.GetRole(c) == models.RoleCustomer {
		userID := middleware.GetUserID(c)
		if order.UserID == nil || *order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels the customer's own order if the state machine allows it
func CancelOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, err := orders.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	userID := middleware.GetUserID(c)
	if order.UserID == nil || *order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	updated, err := orders.UpdateStatus(id, models.StatusCancelled)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": updated})
}

// ListOrders returns all orders for staff, optionally filtered by ?status=
func ListOrders(c *gin.Context) {
	list, err := orders.List(models.OrderStatus(c.Query("status")))
	if err != nil {
		fail(c, err)
		return
	}

	// Dashboard summary: counts per status
	summary := map[string]int{}
	for _, o := range list {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(list),
		"orders":        list,
	})
}

// ListReadyOrders returns READY orders oldest first for dispatch
func ListReadyOrders(c *gin.Context) {
	list, err := orders.FindReadyForDelivery()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "orders": list})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the state machine (staff)
func UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	prevStatus := order.Status

	updated, err := orders.UpdateStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    prevStatus,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(prevStatus),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        updated.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(updated.Status),
	})
}

// ForceOrderStatus overwrites an order's status without transition checks
// (admin correction path)
func ForceOrderStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := orders.ForceStatus(id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status forced", "order": order})
}

// DeleteOrder hard-deletes an order (admin)
func DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := orders.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// GetStateMachineInfo documents the order lifecycle for API consumers
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":      []models.OrderStatus{models.StatusPending, models.StatusAccepted, models.StatusCooking, models.StatusReady, models.StatusOutForDelivery, models.StatusCompleted, models.StatusCancelled},
		"transitions": statemachine.GetAllTransitions(),
	})
}
