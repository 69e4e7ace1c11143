// Package cmd provides the CLI commands for fincalc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fincalc/internal/config"
	"fincalc/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Personal finance calculators",
	Long: `fincalc is a personal finance calculation engine.

It answers the everyday questions: what a loan costs per month, what a
recurring investment matures to, how much house a household can afford,
and where a paycheck should go.

Examples:
  fincalc emi --principal 2500000 --rate 8.5 --tenure 20
  fincalc sip --monthly 5000 --rate 12 --years 10
  fincalc scenario ./household.fin
  fincalc budget --income 50000 --expenses 30000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fincalc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fincalc version 0.1.0")
	},
}

// configCmd writes the active configuration to a file
var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the active configuration to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Get().Save(args[0])
	},
}
