// Package cmd - savings and investment calculators
package cmd

import (
	"github.com/spf13/cobra"

	"fincalc/core/finance"
)

var (
	sipMonthly float64
	sipRate    float64
	sipYears   float64
)

// sipCmd calculates SIP maturity
var sipCmd = &cobra.Command{
	Use:   "sip",
	Short: "Calculate the maturity amount of a monthly investment plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.SIP(sipMonthly, sipRate, sipYears)
		if err != nil {
			return err
		}
		printAmount("Maturity amount", v)
		return nil
	},
}

var (
	fdPrincipal float64
	fdRate      float64
	fdYears     float64
	fdFreq      int
)

// fdCmd calculates fixed deposit maturity
var fdCmd = &cobra.Command{
	Use:   "fd",
	Short: "Calculate the maturity amount of a lump-sum fixed deposit",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.FD(fdPrincipal, fdRate, fdYears, fdFreq)
		if err != nil {
			return err
		}
		printAmount("Maturity amount", v)
		return nil
	},
}

var (
	rdMonthly float64
	rdRate    float64
	rdYears   float64
)

// rdCmd calculates recurring deposit maturity
var rdCmd = &cobra.Command{
	Use:   "rd",
	Short: "Calculate the maturity amount of a recurring deposit",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.RD(rdMonthly, rdRate, rdYears)
		if err != nil {
			return err
		}
		printAmount("Maturity amount", v)
		return nil
	},
}

var (
	retSavings  float64
	retAddition float64
	retRate     float64
	retYears    float64
)

// retirementCmd estimates the corpus at retirement
var retirementCmd = &cobra.Command{
	Use:   "retirement",
	Short: "Estimate the corpus accumulated by retirement",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := finance.RetirementCorpus(retSavings, retAddition, retRate, retYears)
		if err != nil {
			return err
		}
		printAmount("Estimated corpus", v)
		return nil
	},
}

func init() {
	sipCmd.Flags().Float64Var(&sipMonthly, "monthly", 0, "monthly investment")
	sipCmd.Flags().Float64Var(&sipRate, "rate", 0, "expected annual return in percent")
	sipCmd.Flags().Float64Var(&sipYears, "years", 0, "investment period in years")
	sipCmd.MarkFlagRequired("monthly")
	sipCmd.MarkFlagRequired("years")

	fdCmd.Flags().Float64Var(&fdPrincipal, "principal", 0, "deposit amount")
	fdCmd.Flags().Float64Var(&fdRate, "rate", 0, "annual interest rate in percent")
	fdCmd.Flags().Float64Var(&fdYears, "years", 0, "deposit period in years")
	fdCmd.Flags().IntVar(&fdFreq, "freq", 1, "compounding frequency per year")
	fdCmd.MarkFlagRequired("principal")
	fdCmd.MarkFlagRequired("years")

	rdCmd.Flags().Float64Var(&rdMonthly, "monthly", 0, "monthly deposit")
	rdCmd.Flags().Float64Var(&rdRate, "rate", 0, "annual interest rate in percent")
	rdCmd.Flags().Float64Var(&rdYears, "years", 0, "deposit period in years")
	rdCmd.MarkFlagRequired("monthly")
	rdCmd.MarkFlagRequired("years")

	retirementCmd.Flags().Float64Var(&retSavings, "savings", 0, "current savings")
	retirementCmd.Flags().Float64Var(&retAddition, "monthly", 0, "monthly addition")
	retirementCmd.Flags().Float64Var(&retRate, "rate", 0, "expected annual return in percent")
	retirementCmd.Flags().Float64Var(&retYears, "years", 0, "years to retirement")
	retirementCmd.MarkFlagRequired("years")

	rootCmd.AddCommand(sipCmd)
	rootCmd.AddCommand(fdCmd)
	rootCmd.AddCommand(rdCmd)
	rootCmd.AddCommand(retirementCmd)
}
