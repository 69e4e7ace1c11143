// Package finance implements the personal finance calculators.
//
// Every calculator is a pure function over scalar (or slice) inputs: inputs
// are coerced, validated fail-fast, used once, and discarded. All monetary
// results are rounded to 2 decimal places with a single rounding rule,
// round-half-away-from-zero, so expectations are reproducible across callers.
package finance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary amount to 2 decimal places,
// half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Months converts a possibly fractional year count to a whole month count,
// rounding half away from zero. Shared by every monthly-compounding
// calculator so tenure handling is identical across them.
func Months(years float64) int {
	return int(math.Round(years * 12))
}

// monthlyRate converts an annual percent rate to a monthly fractional rate.
func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 100.0 / 12.0
}

// annuityFV is the future value of n equal monthly payments at monthly rate
// r, with each deposit compounding one extra period. The trailing (1+r)
// factor is deliberate: deposits are treated as due at period start, and
// downstream expectations are derived from exactly this form.
func annuityFV(payment, r float64, n int) float64 {
	if r == 0 {
		return payment * float64(n)
	}
	return payment * ((math.Pow(1+r, float64(n)) - 1) / r) * (1 + r)
}
