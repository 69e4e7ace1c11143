package finance

import (
	"math"

	"fincalc/internal/errors"
)

// CreditCardBalance simulates the balance remaining after months of paying
// only the minimum. Each month interest is applied first, then a payment of
// minimumPaymentPercent of the post-interest balance is subtracted, floored
// at zero. The loop always runs the full horizon; iterating on a zero
// balance is a no-op and is not special-cased.
func CreditCardBalance(currentBalance, monthlyInterestPercent, minimumPaymentPercent float64, months int) (float64, error) {
	if currentBalance < 0 {
		return 0, errors.InvalidValue("current_balance cannot be negative")
	}
	if monthlyInterestPercent < 0 || minimumPaymentPercent < 0 {
		return 0, errors.InvalidValue("rates cannot be negative")
	}
	if months < 1 {
		return 0, errors.InvalidValue("months must be >= 1")
	}

	bal := currentBalance
	rate := monthlyInterestPercent / 100.0
	for i := 0; i < months; i++ {
		bal *= 1 + rate
		payment := bal * (minimumPaymentPercent / 100.0)
		bal = math.Max(0, bal-payment)
	}

	return Round2(bal), nil
}
