package finance

import (
	"math"

	"fincalc/internal/errors"
)

// EMI calculates the equated monthly installment for a loan.
//
// principal must be > 0, annualRatePercent >= 0, tenureYears > 0. Tenure is
// converted to whole months via Months. A zero rate degrades to straight
// division so the amortization formula never divides by zero.
func EMI(principal, annualRatePercent, tenureYears float64) (float64, error) {
	if principal <= 0 {
		return 0, errors.InvalidValue("principal must be > 0")
	}
	if tenureYears <= 0 {
		return 0, errors.InvalidValue("tenure_years must be > 0")
	}
	if annualRatePercent < 0 {
		return 0, errors.InvalidValue("annual_rate_percent cannot be negative")
	}

	n := Months(tenureYears)
	if n <= 0 {
		return 0, errors.InvalidValue("tenure in months must be > 0")
	}

	r := monthlyRate(annualRatePercent)
	var emi float64
	if r == 0 {
		emi = principal / float64(n)
	} else {
		pow := math.Pow(1+r, float64(n))
		emi = principal * r * pow / (pow - 1)
	}

	return Round2(emi), nil
}

// HomeLoanEligibility estimates the maximum loan principal a household can
// service. The allowed EMI is disposable income (floored at zero) capped at
// maxEMIPercent of gross income; the EMI formula is then inverted to solve
// for principal.
func HomeLoanEligibility(monthlyIncome, monthlyExpenses, interestRatePercent, tenureYears, maxEMIPercent float64) (float64, error) {
	if monthlyIncome < 0 || monthlyExpenses < 0 {
		return 0, errors.InvalidValue("income/expenses cannot be negative")
	}
	if tenureYears <= 0 {
		return 0, errors.InvalidValue("tenure_years must be > 0")
	}
	if interestRatePercent < 0 {
		return 0, errors.InvalidValue("interest_rate_percent cannot be negative")
	}
	if maxEMIPercent < 0 || maxEMIPercent > 100 {
		return 0, errors.InvalidValue("max_emi_percent must be between 0 and 100")
	}

	n := Months(tenureYears)
	if n <= 0 {
		return 0, errors.InvalidValue("tenure in months must be > 0")
	}

	disposable := math.Max(0, monthlyIncome-monthlyExpenses)
	emiCap := math.Min(disposable, monthlyIncome*maxEMIPercent/100.0)

	r := monthlyRate(interestRatePercent)
	var principal float64
	if r == 0 {
		principal = emiCap * float64(n)
	} else {
		pow := math.Pow(1+r, float64(n))
		principal = emiCap * (pow - 1) / (r * pow)
	}

	return Round2(principal), nil
}
