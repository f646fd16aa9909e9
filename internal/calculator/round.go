package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds half away from zero to 2 decimal places.
// The rounding happens in decimal so values like 1.005 round up.
// NaN and ±Inf are returned unchanged.
func RoundCents(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
