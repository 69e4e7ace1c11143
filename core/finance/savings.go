package finance

import (
	"math"

	"fincalc/internal/errors"
)

// SIP calculates the maturity amount of a systematic investment plan with
// monthly contributions.
func SIP(monthlyInvestment, annualReturnPercent, years float64) (float64, error) {
	if monthlyInvestment < 0 {
		return 0, errors.InvalidValue("monthly_investment cannot be negative")
	}
	if years <= 0 {
		return 0, errors.InvalidValue("years must be > 0")
	}
	if annualReturnPercent < 0 {
		return 0, errors.InvalidValue("annual_return_percent cannot be negative")
	}

	return Round2(annuityFV(monthlyInvestment, monthlyRate(annualReturnPercent), Months(years))), nil
}

// FD calculates the maturity amount of a lump-sum fixed deposit compounded
// compoundingPerYear times per year. Fractional years are allowed; the
// exponent is the real-valued product freq*years, not a month count.
func FD(principal, annualRatePercent, years float64, compoundingPerYear int) (float64, error) {
	if principal <= 0 {
		return 0, errors.InvalidValue("principal must be > 0")
	}
	if years <= 0 {
		return 0, errors.InvalidValue("years must be > 0")
	}
	if annualRatePercent < 0 {
		return 0, errors.InvalidValue("annual_rate_percent cannot be negative")
	}
	if compoundingPerYear <= 0 {
		return 0, errors.InvalidValue("compounding_frequency_per_year must be > 0")
	}

	freq := float64(compoundingPerYear)
	amount := principal * math.Pow(1+annualRatePercent/100.0/freq, freq*years)
	return Round2(amount), nil
}

// RD calculates the maturity amount of a recurring deposit with monthly
// deposits. Same annuity as SIP.
func RD(monthlyDeposit, annualRatePercent, years float64) (float64, error) {
	if monthlyDeposit < 0 {
		return 0, errors.InvalidValue("monthly_deposit cannot be negative")
	}
	if years <= 0 {
		return 0, errors.InvalidValue("years must be > 0")
	}
	if annualRatePercent < 0 {
		return 0, errors.InvalidValue("annual_rate_percent cannot be negative")
	}

	return Round2(annuityFV(monthlyDeposit, monthlyRate(annualRatePercent), Months(years))), nil
}

// RetirementCorpus estimates the corpus at retirement: the future value of
// current savings compounded monthly plus the future value of the monthly
// additions as an annuity.
func RetirementCorpus(currentSavings, monthlyAddition, annualReturnPercent, yearsToRetirement float64) (float64, error) {
	if currentSavings < 0 || monthlyAddition < 0 {
		return 0, errors.InvalidValue("savings and monthly additions cannot be negative")
	}
	if yearsToRetirement <= 0 {
		return 0, errors.InvalidValue("years_to_retirement must be > 0")
	}
	if annualReturnPercent < 0 {
		return 0, errors.InvalidValue("annual_return_percent cannot be negative")
	}

	r := monthlyRate(annualReturnPercent)
	n := Months(yearsToRetirement)

	fvSavings := currentSavings * math.Pow(1+r, float64(n))
	fvAdditions := annuityFV(monthlyAddition, r, n)
	return Round2(fvSavings + fvAdditions), nil
}
