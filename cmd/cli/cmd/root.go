// Package cmd provides the CLI commands for databricks-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"databricks-cost/internal/config"
	"databricks-cost/internal/logging"
)

var (
	cfgFile string
	dataDir string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "databricks-cost",
	Short: "Estimate monthly Databricks workload costs",
	Long: `databricks-cost estimates the monthly and daily cost of Databricks
workloads from declared workload shapes, combining DBU billing rates
with EC2 on-demand pricing.

Examples:
  databricks-cost estimate workloads.hcl
  databricks-cost estimate --format json workloads.yaml
  databricks-cost rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.databricks-cost.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "rate data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
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
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
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
		fmt.Println("databricks-cost version " + Version)
	},
}

// Version is the tool version
const Version = "0.1.0"
