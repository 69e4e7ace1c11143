// Package cmd - loan-amount estimate command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fincalc/core/estimator"
	"fincalc/internal/config"
	"fincalc/internal/logging"
)

var (
	estModelPath string
	estFeatures  estimator.Features
)

// estimateCmd predicts a loan amount from applicant features
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate an eligible loan amount from applicant details",
	Long: `Estimate an eligible loan amount using the trained model when one is
available, falling back to a rule of thumb otherwise.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estModelPath, "model", "", "model coefficients file (default from config)")
	estimateCmd.Flags().Float64Var(&estFeatures.Age, "age", 0, "applicant age")
	estimateCmd.Flags().Float64Var(&estFeatures.MonthlyIncome, "income", 0, "monthly income")
	estimateCmd.Flags().Float64Var(&estFeatures.CreditScore, "credit-score", 0, "credit score")
	estimateCmd.Flags().Float64Var(&estFeatures.LoanTenureYears, "tenure", 0, "desired tenure in years")
	estimateCmd.Flags().Float64Var(&estFeatures.ExistingLoanAmount, "existing-loan", 0, "existing loan amount")
	estimateCmd.Flags().Float64Var(&estFeatures.Dependents, "dependents", 0, "number of dependents")
	estimateCmd.MarkFlagRequired("age")
	estimateCmd.MarkFlagRequired("income")
	estimateCmd.MarkFlagRequired("tenure")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	path := estModelPath
	if path == "" {
		path = config.Get().Estimator.ModelPath
	}

	var predictor estimator.Predictor
	if model, err := estimator.LoadLinearModel(path); err == nil {
		predictor = model
	} else {
		logging.Warn("model unavailable, using rule of thumb",
			zap.String("path", path),
			zap.Error(err))
		predictor = estimator.RuleOfThumb{}
	}

	amount, err := predictor.Predict(estFeatures)
	if err != nil {
		return err
	}

	printAmount("Estimated loan amount", amount)
	return nil
}
