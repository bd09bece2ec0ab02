// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"databricks-cost/core/costing"
	"databricks-cost/core/input"
	"databricks-cost/core/output"
	"databricks-cost/core/rates"
	"databricks-cost/core/types"
	"databricks-cost/internal/config"
	"databricks-cost/internal/logging"
)

var (
	outputFormat string
	region       string
	noColor      bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <workloads-file>",
	Short: "Estimate costs for declared workloads",
	Long: `Calculate monthly and daily costs for the workloads declared in a
definition file. HCL, JSON, and YAML files are supported, selected by
file extension.

Examples:
  databricks-cost estimate workloads.hcl
  databricks-cost estimate --format json workloads.yaml
  databricks-cost estimate --region ap-northeast-1 workloads.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&region, "region", "r", "", "default region for workloads without one")
	estimateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg := config.Get()

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("workloads file does not exist: %s", path)
	}

	defaults := cfg.Defaults
	if region != "" {
		defaults.Region = region
	}

	workloads, err := input.Load(path, defaults)
	if err != nil {
		return err
	}
	logging.Info("loaded workloads",
		zap.String("path", path), zap.Int("count", len(workloads)))

	store := rates.LoadDir(cfg.Data.Dir, rates.DefaultDataFiles())
	breakdowns, totals := costing.ComputeAll(workloads, store)

	result := &output.Result{
		Breakdowns: breakdowns,
		Totals:     totals,
		Currency:   types.Currency(cfg.Defaults.Currency),
		Metadata: output.Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Version:   Version,
		},
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	if format == output.FormatCLI {
		output.Register(&output.CLIFormatter{
			NoColor:     noColor,
			ShowDetails: cfg.Output.ShowDetails,
		})
	}

	formatter, err := output.Get(format)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}
