// Package cmd - household planning calculators
package cmd

import (
	"github.com/spf13/cobra"

	"fincalc/core/finance"
	"fincalc/internal/config"
)

var (
	taxGross    float64
	taxStandard float64
	taxOther    float64
)

// taxCmd calculates taxable income
var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Calculate yearly taxable income after deductions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("standard") {
			taxStandard = config.Get().Defaults.StandardDeduction
		}
		v, err := finance.TaxableIncome(taxGross, taxStandard, taxOther)
		if err != nil {
			return err
		}
		printAmount("Taxable income", v)
		return nil
	},
}

var (
	budgetIncome   float64
	budgetExpenses float64
)

// budgetCmd recommends a monthly savings target
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Recommend a monthly savings target from income and expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := finance.PlanBudget(budgetIncome, budgetExpenses)
		if err != nil {
			return err
		}
		printBudget(plan)
		return nil
	},
}

var (
	nwAssets      []float64
	nwLiabilities []float64
)

// networthCmd computes net worth from asset and liability lists
var networthCmd = &cobra.Command{
	Use:     "networth",
	Short:   "Compute net worth from asset and liability values",
	Example: `  fincalc networth --assets 100000,50000 --liabilities 20000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.NetWorth(nwAssets, nwLiabilities)
		if err != nil {
			return err
		}
		printAmount("Net worth", v)
		return nil
	},
}

func init() {
	taxCmd.Flags().Float64Var(&taxGross, "gross", 0, "gross yearly income")
	taxCmd.Flags().Float64Var(&taxStandard, "standard", 50000, "standard deduction")
	taxCmd.Flags().Float64Var(&taxOther, "other", 0, "other deductions")
	taxCmd.MarkFlagRequired("gross")

	budgetCmd.Flags().Float64Var(&budgetIncome, "income", 0, "monthly income")
	budgetCmd.Flags().Float64Var(&budgetExpenses, "expenses", 0, "monthly expenses")
	budgetCmd.MarkFlagRequired("income")

	networthCmd.Flags().Float64SliceVar(&nwAssets, "assets", nil, "asset values")
	networthCmd.Flags().Float64SliceVar(&nwLiabilities, "liabilities", nil, "liability values")

	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(networthCmd)
}
