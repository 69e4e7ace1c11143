package finance

import (
	"testing"

	"fincalc/internal/errors"
)

func TestEMINormal(t *testing.T) {
	emi, err := EMI(100000, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emi != 8791.59 {
		t.Errorf("expected 8791.59, got %.2f", emi)
	}
}

func TestEMIZeroInterest(t *testing.T) {
	emi, err := EMI(120000, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emi != 10000.00 {
		t.Errorf("expected 10000.00, got %.2f", emi)
	}
}

func TestEMIMonotoneInRate(t *testing.T) {
	prev := 0.0
	for _, rate := range []float64{0, 2, 5, 8, 12, 18} {
		emi, err := EMI(250000, rate, 5)
		if err != nil {
			t.Fatalf("rate %.0f: unexpected error: %v", rate, err)
		}
		if emi <= prev {
			t.Errorf("EMI at rate %.0f (%.2f) not greater than at lower rate (%.2f)", rate, emi, prev)
		}
		prev = emi
	}
}

func TestEMIInvalidInputs(t *testing.T) {
	cases := []struct {
		name                    string
		principal, rate, tenure float64
	}{
		{"zero principal", 0, 10, 1},
		{"negative principal", -5000, 10, 1},
		{"negative rate", 100000, -1, 1},
		{"zero tenure", 100000, 10, 0},
	}
	for _, c := range cases {
		if _, err := EMI(c.principal, c.rate, c.tenure); !errors.IsType(err, errors.TypeInvalidValue) {
			t.Errorf("%s: expected VALUE_ERROR, got %v", c.name, err)
		}
	}
}

func TestEMIPure(t *testing.T) {
	a, err := EMI(100000, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EMI(100000, 10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("identical inputs produced %.10f and %.10f", a, b)
	}
}

func TestHomeLoanEligibilityNormal(t *testing.T) {
	principal, err := HomeLoanEligibility(50000, 20000, 8, 20, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal <= 0 {
		t.Errorf("expected positive principal, got %.2f", principal)
	}
}

func TestHomeLoanEligibilityZeroRate(t *testing.T) {
	// emi cap = min(30000, 25000) = 25000; zero rate so principal = cap * months
	principal, err := HomeLoanEligibility(50000, 20000, 0, 10, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal != 25000*120 {
		t.Errorf("expected %.2f, got %.2f", 25000.0*120, principal)
	}
}

func TestHomeLoanEligibilityPercentBounds(t *testing.T) {
	if _, err := HomeLoanEligibility(50000, 10000, 8, 20, 200); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR for max_emi_percent=200, got %v", err)
	}
	if _, err := HomeLoanEligibility(50000, 10000, 8, 20, -1); !errors.IsType(err, errors.TypeInvalidValue) {
		t.Errorf("expected VALUE_ERROR for max_emi_percent=-1, got %v", err)
	}

	principal, err := HomeLoanEligibility(50000, 10000, 8, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal != 0 {
		t.Errorf("expected 0.00 at max_emi_percent=0, got %.2f", principal)
	}
}

func TestHomeLoanEligibilityExpensesExceedIncome(t *testing.T) {
	// disposable income floors at zero, so the eligible principal is zero
	principal, err := HomeLoanEligibility(20000, 30000, 8, 20, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal != 0 {
		t.Errorf("expected 0.00, got %.2f", principal)
	}
}
