package estimator

import (
	"os"
	"path/filepath"
	"testing"

	"fincalc/internal/errors"
)

func validFeatures() Features {
	return Features{
		Age:                35,
		MonthlyIncome:      50000,
		CreditScore:        720,
		LoanTenureYears:    15,
		ExistingLoanAmount: 0,
		Dependents:         2,
	}
}

func TestRuleOfThumbPredict(t *testing.T) {
	got, err := RuleOfThumb{}.Predict(validFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 50000*12*0.6 {
		t.Errorf("expected %.2f, got %.2f", 50000*12*0.6, got)
	}
}

func TestFeaturesValidate(t *testing.T) {
	f := validFeatures()
	f.Age = 0
	if err := f.Validate(); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR for zero age, got %v", err)
	}

	f = validFeatures()
	f.ExistingLoanAmount = -1
	if err := f.Validate(); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR for negative existing loan, got %v", err)
	}
}

func TestLoadLinearModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	src := `{"intercept": 10000, "weights": [0, 5, 100, 0, -0.1, 0]}`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("failed to write model: %v", err)
	}

	m, err := LoadLinearModel(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Predict(validFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10000 + 5*50000 + 100*720 = 332000
	if got != 332000.00 {
		t.Errorf("expected 332000.00, got %.2f", got)
	}
}

func TestLoadLinearModelWrongWeightCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"intercept": 1, "weights": [1, 2]}`), 0644); err != nil {
		t.Fatalf("failed to write model: %v", err)
	}

	if _, err := LoadLinearModel(path); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadLinearModelMissingFile(t *testing.T) {
	if _, err := LoadLinearModel(filepath.Join(t.TempDir(), "absent.json")); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestLinearModelClampsNegative(t *testing.T) {
	m := &LinearModel{Intercept: -1e9, Weights: make([]float64, 6)}
	got, err := m.Predict(validFeatures())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0.00, got %.2f", got)
	}
}
