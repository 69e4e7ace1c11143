// Package cmd - loan calculators
package cmd

import (
	"github.com/spf13/cobra"

	"fincalc/core/finance"
)

var (
	emiPrincipal float64
	emiRate      float64
	emiTenure    float64
)

// emiCmd calculates the monthly installment for a loan
var emiCmd = &cobra.Command{
	Use:     "emi",
	Short:   "Calculate the equated monthly installment for a loan",
	Example: `  fincalc emi --principal 2500000 --rate 8.5 --tenure 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.EMI(emiPrincipal, emiRate, emiTenure)
		if err != nil {
			return err
		}
		printAmount("Monthly EMI", v)
		return nil
	},
}

var (
	eligIncome   float64
	eligExpenses float64
	eligRate     float64
	eligTenure   float64
	eligMaxEMI   float64
)

// eligibilityCmd estimates the maximum affordable loan principal
var eligibilityCmd = &cobra.Command{
	Use:   "eligibility",
	Short: "Estimate the maximum home loan principal a household can service",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.HomeLoanEligibility(eligIncome, eligExpenses, eligRate, eligTenure, eligMaxEMI)
		if err != nil {
			return err
		}
		printAmount("Maximum eligible principal", v)
		return nil
	},
}

var (
	ccBalance  float64
	ccInterest float64
	ccMinimum  float64
	ccMonths   int
)

// creditCardCmd simulates minimum-payment-only repayment
var creditCardCmd = &cobra.Command{
	Use:   "credit-card",
	Short: "Project the balance left after months of minimum payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.CreditCardBalance(ccBalance, ccInterest, ccMinimum, ccMonths)
		if err != nil {
			return err
		}
		printAmount("Remaining balance", v)
		return nil
	},
}

func init() {
	emiCmd.Flags().Float64Var(&emiPrincipal, "principal", 0, "loan principal")
	emiCmd.Flags().Float64Var(&emiRate, "rate", 0, "annual interest rate in percent")
	emiCmd.Flags().Float64Var(&emiTenure, "tenure", 0, "tenure in years")
	emiCmd.MarkFlagRequired("principal")
	emiCmd.MarkFlagRequired("tenure")

	eligibilityCmd.Flags().Float64Var(&eligIncome, "income", 0, "gross monthly income")
	eligibilityCmd.Flags().Float64Var(&eligExpenses, "expenses", 0, "monthly expenses")
	eligibilityCmd.Flags().Float64Var(&eligRate, "rate", 0, "annual interest rate in percent")
	eligibilityCmd.Flags().Float64Var(&eligTenure, "tenure", 0, "tenure in years")
	eligibilityCmd.Flags().Float64Var(&eligMaxEMI, "max-emi-percent", 50, "income share banks allow for EMI")
	eligibilityCmd.MarkFlagRequired("income")
	eligibilityCmd.MarkFlagRequired("tenure")

	creditCardCmd.Flags().Float64Var(&ccBalance, "balance", 0, "outstanding balance")
	creditCardCmd.Flags().Float64Var(&ccInterest, "interest", 0, "monthly interest rate in percent")
	creditCardCmd.Flags().Float64Var(&ccMinimum, "minimum", 0, "minimum payment as percent of balance")
	creditCardCmd.Flags().IntVar(&ccMonths, "months", 12, "months to simulate")
	creditCardCmd.MarkFlagRequired("balance")

	rootCmd.AddCommand(emiCmd)
	rootCmd.AddCommand(eligibilityCmd)
	rootCmd.AddCommand(creditCardCmd)
}
