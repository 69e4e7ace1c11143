package finance

import (
	"testing"

	"fincalc/internal/errors"
)

func TestPlanBudgetTiers(t *testing.T) {
	cases := []struct {
		income, expenses float64
		wantPercent      float64
	}{
		{50000, 30000, 20.0}, // ratio 0.6
		{50000, 35000, 20.0}, // ratio 0.7, boundary stays in top tier
		{50000, 40000, 10.0}, // ratio 0.8
		{50000, 45000, 10.0}, // ratio 0.9, boundary
		{50000, 48000, 0.0},  // ratio 0.96
	}
	for _, c := range cases {
		plan, err := PlanBudget(c.income, c.expenses)
		if err != nil {
			t.Fatalf("PlanBudget(%.0f, %.0f): unexpected error: %v", c.income, c.expenses, err)
		}
		if plan.RecommendedSavingsPercent != c.wantPercent {
			t.Errorf("PlanBudget(%.0f, %.0f): percent = %.1f, want %.1f",
				c.income, c.expenses, plan.RecommendedSavingsPercent, c.wantPercent)
		}
	}
}

func TestPlanBudgetFields(t *testing.T) {
	plan, err := PlanBudget(50000, 30000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.SavingsTarget != 10000.00 {
		t.Errorf("savings target = %.2f, want 10000.00", plan.SavingsTarget)
	}
	if plan.SurplusOrDeficit != 20000.00 {
		t.Errorf("surplus = %.2f, want 20000.00", plan.SurplusOrDeficit)
	}
}

func TestPlanBudgetZeroIncome(t *testing.T) {
	plan, err := PlanBudget(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.RecommendedSavingsPercent != 0.0 {
		t.Errorf("percent = %.1f, want 0.0", plan.RecommendedSavingsPercent)
	}
	if plan.SavingsTarget != 0.0 {
		t.Errorf("savings target = %.2f, want 0.00", plan.SavingsTarget)
	}
}

func TestPlanBudgetDeficit(t *testing.T) {
	plan, err := PlanBudget(30000, 40000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.SurplusOrDeficit != -10000.00 {
		t.Errorf("deficit = %.2f, want -10000.00", plan.SurplusOrDeficit)
	}
}

func TestPlanBudgetNegativeInputs(t *testing.T) {
	if _, err := PlanBudget(-100, 0); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR, got %v", err)
	}
}

func TestTaxableIncomeNormal(t *testing.T) {
	tax, err := TaxableIncome(100000, 50000, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax != 45000.00 {
		t.Errorf("expected 45000.00, got %.2f", tax)
	}
}

func TestTaxableIncomeClampsAtZero(t *testing.T) {
	tax, err := TaxableIncome(40000, 50000, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tax != 0.00 {
		t.Errorf("expected 0.00, got %.2f", tax)
	}
}

func TestTaxableIncomeNegativeInputs(t *testing.T) {
	if _, err := TaxableIncome(-1000, 100, 50); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR, got %v", err)
	}
}

func TestNetWorthNormal(t *testing.T) {
	nw, err := NetWorth([]float64{100000, 50000}, []float64{20000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nw != 130000.00 {
		t.Errorf("expected 130000.00, got %.2f", nw)
	}
}

func TestNetWorthEmptySequences(t *testing.T) {
	nw, err := NetWorth(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nw != 0 {
		t.Errorf("expected 0.00, got %.2f", nw)
	}
}

func TestNetWorthNegativeElementNamesIndex(t *testing.T) {
	_, err := NetWorth([]float64{100, -5}, nil)
	if !errors.IsType(err, errors.TypeInvalidValue) {
		t.Fatalf("expected VALUE_ERROR, got %v", err)
	}
	if got := err.Error(); got != "[VALUE_ERROR] asset_1 cannot be negative" {
		t.Errorf("unexpected message: %s", got)
	}

	_, err = NetWorth(nil, []float64{-1})
	if !errors.IsType(err, errors.TypeInvalidValue) {
		t.Fatalf("expected VALUE_ERROR, got %v", err)
	}
	if got := err.Error(); got != "[VALUE_ERROR] liability_0 cannot be negative" {
		t.Errorf("unexpected message: %s", got)
	}
}
