package services

import "math"

// roundMoney rounds to two decimal places so float arithmetic never leaks
// sub-cent noise into stored amounts.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
