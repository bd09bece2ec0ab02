// Package cmd - rates command
package cmd

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"databricks-cost/core/catalog"
	"databricks-cost/core/rates"
	"databricks-cost/internal/config"
)

// ratesCmd inspects the loaded rate tables
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the loaded rate tables",
	Long: `List the workload types, instance types, and SQL warehouse sizes
available in the configured rate data directory, with DBU rates per
workload type.`,
	RunE: runRates,
}

func runRates(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := rates.LoadDir(cfg.Data.Dir, rates.DefaultDataFiles())
	specs := catalog.Load(filepath.Join(cfg.Data.Dir, cfg.Data.InstanceSpecsFile))

	out := cmd.OutOrStdout()
	workloadTypes := store.WorkloadTypes()

	fmt.Fprintf(out, "Workload types: %d\n", len(workloadTypes))
	for _, t := range workloadTypes {
		fmt.Fprintf(out, "  %s\n", t)
	}
	fmt.Fprintln(out)

	instanceTypes := store.InstanceTypes()
	catalog.Sort(instanceTypes)

	fmt.Fprintf(out, "Instance types: %d\n", len(instanceTypes))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	header := "INSTANCE"
	for _, t := range workloadTypes {
		header += "\t" + string(t)
	}
	fmt.Fprintln(tw, header)
	for _, inst := range instanceTypes {
		row := specs.Label(inst)
		for _, t := range workloadTypes {
			if rate, ok := store.ConsumptionRate(inst, t); ok {
				row += "\t" + rate.StringFixed(2)
			} else {
				row += "\t-"
			}
		}
		fmt.Fprintln(tw, row)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	sizes := store.WarehouseSizes()
	fmt.Fprintf(out, "SQL warehouse sizes: %d\n", len(sizes))
	for _, size := range sizes {
		rate, _ := store.ServerlessRate(size)
		fmt.Fprintf(out, "  %s (%s DBU/h)\n", size, rate.StringFixed(0))
	}

	return nil
}
