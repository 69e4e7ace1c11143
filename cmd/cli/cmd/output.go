package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fincalc/core/finance"
)

// money formats an amount with exactly two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func printAmount(label string, v float64) {
	fmt.Printf("%-32s %18s\n", label, money(v))
}

func printBudget(plan finance.BudgetPlan) {
	printAmount("Recommended monthly savings", plan.SavingsTarget)
	fmt.Printf("%-32s %17.1f%%\n", "Savings tier", plan.RecommendedSavingsPercent)
	if plan.SurplusOrDeficit >= 0 {
		printAmount("Monthly surplus", plan.SurplusOrDeficit)
	} else {
		printAmount("Monthly deficit", -plan.SurplusOrDeficit)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
