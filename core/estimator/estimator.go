// Package estimator provides the loan-amount estimator: a pure function
// from a fixed-order applicant feature vector to one scalar estimate. The
// model itself is opaque to callers; picking a fallback when no trained
// model is available is the caller's decision, not this package's.
package estimator

import (
	"fincalc/core/finance"
	"fincalc/internal/errors"
)

// Features is the applicant feature vector, in the order the trained
// model expects it.
type Features struct {
	Age                float64 `json:"age"`
	MonthlyIncome      float64 `json:"monthly_income"`
	CreditScore        float64 `json:"credit_score"`
	LoanTenureYears    float64 `json:"loan_tenure_years"`
	ExistingLoanAmount float64 `json:"existing_loan_amount"`
	Dependents         float64 `json:"num_of_dependents"`
}

// Vector returns the features in model order.
func (f Features) Vector() []float64 {
	return []float64{
		f.Age,
		f.MonthlyIncome,
		f.CreditScore,
		f.LoanTenureYears,
		f.ExistingLoanAmount,
		f.Dependents,
	}
}

// Validate checks the domain constraints on the feature vector.
func (f Features) Validate() error {
	switch {
	case f.Age <= 0:
		return errors.InvalidValue("age must be > 0")
	case f.MonthlyIncome < 0:
		return errors.InvalidValue("monthly_income cannot be negative")
	case f.CreditScore < 0:
		return errors.InvalidValue("credit_score cannot be negative")
	case f.LoanTenureYears <= 0:
		return errors.InvalidValue("loan_tenure_years must be > 0")
	case f.ExistingLoanAmount < 0:
		return errors.InvalidValue("existing_loan_amount cannot be negative")
	case f.Dependents < 0:
		return errors.InvalidValue("num_of_dependents cannot be negative")
	}
	return nil
}

// Predictor estimates a loan amount from applicant features.
type Predictor interface {
	// Name identifies the predictor in responses and logs
	Name() string

	// Predict returns the estimated loan amount, rounded to 2 decimals
	Predict(f Features) (float64, error)
}

// RuleOfThumb is the fallback predictor: 60% of yearly income.
type RuleOfThumb struct{}

// Name implements Predictor.
func (RuleOfThumb) Name() string { return "rule-of-thumb" }

// Predict implements Predictor.
func (RuleOfThumb) Predict(f Features) (float64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	return finance.Round2(f.MonthlyIncome * 12 * 0.6), nil
}
