// Package cmd - scenario command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fincalc/core/finance"
	"fincalc/core/scenario"
	"fincalc/internal/config"
)

// scenarioCmd evaluates a batch of calculations from .fin files
var scenarioCmd = &cobra.Command{
	Use:   "scenario [path]",
	Short: "Evaluate a scenario file of calculator runs",
	Long: `Evaluate every calc block found in a .fin scenario file, or in all
.fin files under a directory.

Example scenario file:

  calc "emi" "home_loan" {
    principal           = 2500000
    annual_rate_percent = 8.5
    tenure_years        = 20
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}

func runScenario(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}

	d := config.Get().Defaults
	report, err := scenario.Run(path, finance.Defaults{
		StandardDeduction:  d.StandardDeduction,
		MaxEMIPercent:      d.MaxEMIPercent,
		CompoundingPerYear: d.CompoundingPerYear,
	})
	if err != nil {
		return err
	}

	for _, e := range report.Errors {
		fmt.Printf("  %s:%d: %s\n", e.File, e.Line, e.Message)
	}

	printScenarioReport(report)

	if report.HasErrors() {
		return fmt.Errorf("scenario completed with errors")
	}
	return nil
}

func printScenarioReport(report *scenario.Report) {
	fmt.Println("┌──────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                          SCENARIO RESULTS                            │")
	fmt.Println("├──────────────────────────────────────────────────────────────────────┤")

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Printf("│ %-44s %23s │\n",
				truncate(res.Calculation.Address(), 44),
				"ERROR")
			fmt.Printf("│   └─ %-64s │\n", truncate(res.Err.Error(), 64))
			continue
		}
		fmt.Printf("│ %-44s %23s │\n",
			truncate(res.Calculation.Address(), 44),
			money(res.Outcome.Value))
	}

	fmt.Println("└──────────────────────────────────────────────────────────────────────┘")
	fmt.Printf("\n%d calculations evaluated\n", len(report.Results))
}
