package statemachine

import (
	"errors"

	"foodly-api/models"
)

// successor is the single allowed "advance" transition per state. CANCELLED
// is reachable from every non-terminal state; COMPLETED and CANCELLED are
// terminal.
var successor = map[models.OrderStatus]models.OrderStatus{
	models.StatusPending:        models.StatusAccepted,
	models.StatusAccepted:       models.StatusCooking,
	models.StatusCooking:        models.StatusReady,
	models.StatusReady:          models.StatusOutForDelivery,
	models.StatusOutForDelivery: models.StatusCompleted,
}

var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusCooking,
	models.StatusReady,
	models.StatusOutForDelivery,
	models.StatusCompleted,
	models.StatusCancelled,
}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s models.OrderStatus) bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted out of s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusCompleted || s == models.StatusCancelled
}

// ValidTransitionsFrom returns all states reachable from the given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	if IsTerminal(status) {
		return nil
	}
	var nexts []models.OrderStatus
	if next, ok := successor[status]; ok {
		nexts = append(nexts, next)
	}
	nexts = append(nexts, models.StatusCancelled)
	return nexts
}

// CanTransition checks if an order may move from one state to another.
// Setting a status to its current value is an allowed no-op.
func CanTransition(from, to models.OrderStatus) error {
	if !IsValidStatus(to) {
		return errors.New("unknown status '" + string(to) + "'")
	}
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return errors.New(string(from) + " is a terminal state, no further transitions allowed")
	}
	if to == models.StatusCancelled {
		return nil
	}
	if successor[from] == to {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// Transition describes one edge of the state machine for documentation.
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// GetAllTransitions returns the full state machine for documentation.
func GetAllTransitions() []Transition {
	var ts []Transition
	for _, s := range allStatuses {
		for _, next := range ValidTransitionsFrom(s) {
			ts = append(ts, Transition{From: s, To: next})
		}
	}
	return ts
}
