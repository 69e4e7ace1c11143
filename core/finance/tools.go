package finance

import (
	"sort"

	"fincalc/internal/errors"
)

// Args is a bag of raw named inputs for a calculator, as produced by a JSON
// body, an HCL block, or a flag parser. Values are coerced per parameter.
type Args map[string]interface{}

// Defaults carries the values used for optional inputs that callers omit.
type Defaults struct {
	StandardDeduction  float64
	MaxEMIPercent      float64
	CompoundingPerYear int
}

// StandardDefaults returns the library's built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{
		StandardDeduction:  50000,
		MaxEMIPercent:      50,
		CompoundingPerYear: 1,
	}
}

// Outcome is the result of running a tool: a single rounded amount, or a
// structured budget plan for the budget tool.
type Outcome struct {
	Value  float64     `json:"value"`
	Budget *BudgetPlan `json:"budget,omitempty"`
}

type toolFunc func(args Args, d Defaults) (*Outcome, error)

// tools maps tool names to their entry points. Names match the calculator
// slugs the consuming web layer exposes.
var tools = map[string]toolFunc{
	"emi":         runEMI,
	"sip":         runSIP,
	"fd":          runFD,
	"rd":          runRD,
	"retirement":  runRetirement,
	"eligibility": runEligibility,
	"credit":      runCreditCard,
	"tax":         runTax,
	"budget":      runBudget,
	"networth":    runNetWorth,
}

// ToolNames returns the registered tool names, sorted.
func ToolNames() []string {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunTool coerces args and dispatches to the named calculator.
// Unknown tools fail with NOT_FOUND.
func RunTool(name string, args Args, d Defaults) (*Outcome, error) {
	fn, ok := tools[name]
	if !ok {
		return nil, errors.NotFound("calculator tool", name)
	}
	return fn(args, d)
}

// required coerces a mandatory argument. A missing key reaches Coerce as
// nil and fails with the same TYPE_ERROR an unparsable value would.
func required(args Args, name string) (float64, error) {
	return Coerce(name, args[name])
}

// optional coerces an argument, substituting def when the key is absent.
func optional(args Args, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	return Coerce(name, v)
}

func runEMI(args Args, _ Defaults) (*Outcome, error) {
	principal, err := required(args, "principal")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "annual_rate_percent")
	if err != nil {
		return nil, err
	}
	tenure, err := required(args, "tenure_years")
	if err != nil {
		return nil, err
	}
	v, err := EMI(principal, rate, tenure)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runSIP(args Args, _ Defaults) (*Outcome, error) {
	monthly, err := required(args, "monthly_investment")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "annual_return_percent")
	if err != nil {
		return nil, err
	}
	years, err := required(args, "years")
	if err != nil {
		return nil, err
	}
	v, err := SIP(monthly, rate, years)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runFD(args Args, d Defaults) (*Outcome, error) {
	principal, err := required(args, "principal")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "annual_rate_percent")
	if err != nil {
		return nil, err
	}
	years, err := required(args, "years")
	if err != nil {
		return nil, err
	}
	freq, err := optional(args, "compounding_frequency_per_year", float64(d.CompoundingPerYear))
	if err != nil {
		return nil, err
	}
	v, err := FD(principal, rate, years, int(freq))
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runRD(args Args, _ Defaults) (*Outcome, error) {
	monthly, err := required(args, "monthly_deposit")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "annual_rate_percent")
	if err != nil {
		return nil, err
	}
	years, err := required(args, "years")
	if err != nil {
		return nil, err
	}
	v, err := RD(monthly, rate, years)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runRetirement(args Args, _ Defaults) (*Outcome, error) {
	savings, err := required(args, "current_savings")
	if err != nil {
		return nil, err
	}
	addition, err := required(args, "monthly_addition")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "annual_return_percent")
	if err != nil {
		return nil, err
	}
	years, err := required(args, "years_to_retirement")
	if err != nil {
		return nil, err
	}
	v, err := RetirementCorpus(savings, addition, rate, years)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runEligibility(args Args, d Defaults) (*Outcome, error) {
	income, err := required(args, "monthly_income")
	if err != nil {
		return nil, err
	}
	expenses, err := required(args, "monthly_expenses")
	if err != nil {
		return nil, err
	}
	rate, err := required(args, "interest_rate_percent")
	if err != nil {
		return nil, err
	}
	tenure, err := required(args, "tenure_years")
	if err != nil {
		return nil, err
	}
	maxEMI, err := optional(args, "max_emi_percent", d.MaxEMIPercent)
	if err != nil {
		return nil, err
	}
	v, err := HomeLoanEligibility(income, expenses, rate, tenure, maxEMI)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runCreditCard(args Args, _ Defaults) (*Outcome, error) {
	balance, err := required(args, "current_balance")
	if err != nil {
		return nil, err
	}
	interest, err := required(args, "monthly_interest_percent")
	if err != nil {
		return nil, err
	}
	minimum, err := required(args, "minimum_payment_percent")
	if err != nil {
		return nil, err
	}
	months, err := required(args, "months")
	if err != nil {
		return nil, err
	}
	v, err := CreditCardBalance(balance, interest, minimum, int(months))
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runTax(args Args, d Defaults) (*Outcome, error) {
	gross, err := required(args, "gross_income_yearly")
	if err != nil {
		return nil, err
	}
	standard, err := optional(args, "standard_deduction", d.StandardDeduction)
	if err != nil {
		return nil, err
	}
	other, err := optional(args, "other_deductions", 0)
	if err != nil {
		return nil, err
	}
	v, err := TaxableIncome(gross, standard, other)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}

func runBudget(args Args, _ Defaults) (*Outcome, error) {
	income, err := required(args, "monthly_income")
	if err != nil {
		return nil, err
	}
	expenses, err := required(args, "monthly_expenses")
	if err != nil {
		return nil, err
	}
	plan, err := PlanBudget(income, expenses)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: plan.SavingsTarget, Budget: &plan}, nil
}

func runNetWorth(args Args, _ Defaults) (*Outcome, error) {
	assets, err := CoerceSlice("asset", args["assets"])
	if err != nil {
		return nil, err
	}
	liabilities, err := CoerceSlice("liability", args["liabilities"])
	if err != nil {
		return nil, err
	}
	v, err := NetWorth(assets, liabilities)
	if err != nil {
		return nil, err
	}
	return &Outcome{Value: v}, nil
}
