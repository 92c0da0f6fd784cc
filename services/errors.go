package services

import "errors"

// Sentinel errors for the distinct failure conditions the ordering core can
// produce. Handlers translate these with errors.Is so the client always gets
// a specific, actionable message.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("not available")
	ErrOutOfStock        = errors.New("insufficient stock")
	ErrInvalidSelection  = errors.New("selection does not belong to this item")
	ErrNotDeliverable    = errors.New("address is outside all delivery zones")
	ErrMinimumNotMet     = errors.New("order is below the minimum amount")
	ErrRestaurantClosed  = errors.New("restaurant is closed for orders")
	ErrInvalidTransition = errors.New("invalid status transition")
)
