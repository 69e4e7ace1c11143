package finance

import (
	"math"

	"fincalc/internal/errors"
)

// TaxableIncome calculates yearly taxable income after the standard and
// other deductions. Deductions exceeding gross income clamp the result to
// zero rather than erroring.
func TaxableIncome(grossYearly, standardDeduction, otherDeductions float64) (float64, error) {
	if grossYearly < 0 || standardDeduction < 0 || otherDeductions < 0 {
		return 0, errors.InvalidValue("income/deductions cannot be negative")
	}

	return Round2(math.Max(0, grossYearly-standardDeduction-otherDeductions)), nil
}
