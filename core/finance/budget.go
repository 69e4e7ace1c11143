package finance

import (
	"fincalc/internal/errors"
)

// BudgetPlan is the structured result of PlanBudget.
type BudgetPlan struct {
	// SavingsTarget is the recommended monthly savings amount
	SavingsTarget float64 `json:"savings_target"`

	// RecommendedSavingsPercent is the selected savings tier
	RecommendedSavingsPercent float64 `json:"recommended_savings_percent"`

	// SurplusOrDeficit is income minus expenses
	SurplusOrDeficit float64 `json:"surplus_or_deficit"`
}

// PlanBudget recommends a savings tier from the expense ratio:
// 20% of income when expenses are at most 70% of income, 10% up to 90%,
// otherwise 0%. Zero income selects the 0% tier without dividing.
func PlanBudget(monthlyIncome, monthlyExpenses float64) (BudgetPlan, error) {
	if monthlyIncome < 0 || monthlyExpenses < 0 {
		return BudgetPlan{}, errors.InvalidValue("income/expenses cannot be negative")
	}

	var percent float64
	if monthlyIncome > 0 {
		switch ratio := monthlyExpenses / monthlyIncome; {
		case ratio <= 0.7:
			percent = 20.0
		case ratio <= 0.9:
			percent = 10.0
		default:
			percent = 0.0
		}
	}

	return BudgetPlan{
		SavingsTarget:             Round2(monthlyIncome * percent / 100.0),
		RecommendedSavingsPercent: percent,
		SurplusOrDeficit:          Round2(monthlyIncome - monthlyExpenses),
	}, nil
}
