// Package output - Human-readable table output
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"databricks-cost/core/types"
)

// Colors for terminal output
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// CLIFormatter renders a result as a terminal table
type CLIFormatter struct {
	// NoColor disables ANSI colors
	NoColor bool

	// ShowDetails includes per-workload DBU and EC2 columns
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// color applies color if enabled
func (f *CLIFormatter) color(c, text string) string {
	if f.NoColor {
		return text
	}
	return c + text + reset
}

// Render produces the table output
func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	fmt.Fprintln(w, f.color(bold+cyan, "━━━ Workload Costs ━━━"))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if f.ShowDetails {
		fmt.Fprintln(tw, "NAME\tTYPE\tDRIVER\tEXECUTOR\tNODES\tHOURS/MO\tDBU/MO\tDBU COST/MO\tEC2/MO\tTOTAL/MO\tTOTAL/DAY")
	} else {
		fmt.Fprintln(tw, "NAME\tTYPE\tTOTAL/MO\tTOTAL/DAY")
	}

	for _, b := range result.Breakdowns {
		if f.ShowDetails {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				b.WorkloadName, b.WorkloadType,
				f.instanceCell(b), f.executorCell(b), b.ExecutorNodes,
				b.MonthlyHours.StringFixed(0),
				b.TotalMonthlyDBU.StringFixed(1),
				money(b.DBUCostMonthly), money(b.EC2CostMonthly),
				money(b.TotalMonthly), money(b.TotalDaily))
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				b.WorkloadName, b.WorkloadType,
				money(b.TotalMonthly), money(b.TotalDaily))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, f.color(bold+cyan, "━━━ Totals ━━━"))
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Databricks (DBU)\t%s /mo\t%s /day\n",
		money(result.Totals.DBUMonthly), money(result.Totals.DBUDaily))
	fmt.Fprintf(tw, "EC2\t%s /mo\t%s /day\n",
		money(result.Totals.EC2Monthly), money(result.Totals.EC2Daily))
	fmt.Fprintf(tw, "%s\t%s /mo\t%s /day\n",
		f.color(bold, "Grand total"),
		f.color(bold, money(result.Totals.GrandMonthly)),
		f.color(bold, money(result.Totals.GrandDaily)))
	if err := tw.Flush(); err != nil {
		return err
	}

	if warnings := result.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range warnings {
			fmt.Fprintln(w, f.color(yellow, "⚠ ")+warning)
		}
	}

	return nil
}

// instanceCell renders the driver column, which is the warehouse size
// for serverless workloads
func (f *CLIFormatter) instanceCell(b types.Breakdown) string {
	if b.WorkloadType.IsServerless() {
		return fmt.Sprintf("%s x%d", b.WarehouseSize, b.WarehouseClusters)
	}
	return b.DriverInstance
}

// executorCell renders the executor column
func (f *CLIFormatter) executorCell(b types.Breakdown) string {
	if b.WorkloadType.IsServerless() {
		return "-"
	}
	return b.ExecutorInstance
}

// money formats a cost with two decimal places
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func init() {
	Register(&CLIFormatter{ShowDetails: true})
}
