// Package scenario evaluates batches of calculator runs declared in HCL
// scenario files. A scenario file contains calc blocks:
//
//	calc "emi" "home_loan" {
//	  principal           = 2500000
//	  annual_rate_percent = 8.5
//	  tenure_years        = 20
//	}
//
// Each block names a calculator tool and carries its raw arguments; the
// block label pair makes every run addressable in the report.
package scenario

import (
	"fmt"

	"fincalc/core/finance"
)

// Calculation is one calc block lifted out of a scenario file.
type Calculation struct {
	// Tool is the calculator to run (first block label)
	Tool string

	// Name identifies this run within the scenario (second block label)
	Name string

	// Args are the raw block attributes, coerced by the calculator
	Args finance.Args

	// SourceFile and SourceLine locate the block for error reporting
	SourceFile string
	SourceLine int
}

// Address returns the tool.name form used in reports.
func (c Calculation) Address() string {
	return fmt.Sprintf("%s.%s", c.Tool, c.Name)
}

// Result is the outcome of one calculation, or its failure.
type Result struct {
	Calculation Calculation
	Outcome     *finance.Outcome
	Err         error
}

// Report is the evaluated scenario.
type Report struct {
	Results []Result
	Errors  []ScanError
}

// HasErrors reports whether any file failed to parse or any run failed.
func (r *Report) HasErrors() bool {
	if len(r.Errors) > 0 {
		return true
	}
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// Evaluate runs every calculation and collects per-run results. A failed
// run never aborts the batch; its error is carried in the result.
func Evaluate(calcs []Calculation, d finance.Defaults) []Result {
	results := make([]Result, 0, len(calcs))
	for _, c := range calcs {
		out, err := finance.RunTool(c.Tool, c.Args, d)
		results = append(results, Result{Calculation: c, Outcome: out, Err: err})
	}
	return results
}

// Run scans path (a .fin file or a directory of them) and evaluates
// everything found.
func Run(path string, d finance.Defaults) (*Report, error) {
	scan, err := NewScanner().Scan(path)
	if err != nil {
		return nil, err
	}
	return &Report{
		Results: Evaluate(scan.Calculations, d),
		Errors:  scan.Errors,
	}, nil
}
