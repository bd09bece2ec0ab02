// Package costing - Breakdown aggregation
package costing

import (
	"databricks-cost/core/rates"
	"databricks-cost/core/types"
)

// Aggregate sums a list of breakdowns into grand totals.
// Pure summation: order-independent, no dedup, empty input yields
// all-zero totals.
func Aggregate(breakdowns []types.Breakdown) types.Totals {
	var t types.Totals
	t.WorkloadCount = len(breakdowns)

	for _, b := range breakdowns {
		t.DBUMonthly = t.DBUMonthly.Add(b.DBUCostMonthly)
		t.DBUDaily = t.DBUDaily.Add(b.DBUCostDaily)
		t.EC2Monthly = t.EC2Monthly.Add(b.EC2CostMonthly)
		t.EC2Daily = t.EC2Daily.Add(b.EC2CostDaily)
		t.GrandMonthly = t.GrandMonthly.Add(b.TotalMonthly)
		t.GrandDaily = t.GrandDaily.Add(b.TotalDaily)
		t.WarningCount += len(b.Warnings)
	}

	return t
}

// ComputeAll calculates breakdowns for every workload in order and
// returns them with their aggregate totals.
func ComputeAll(workloads []types.Workload, store *rates.Store) ([]types.Breakdown, types.Totals) {
	breakdowns := make([]types.Breakdown, 0, len(workloads))
	for _, w := range workloads {
		breakdowns = append(breakdowns, Compute(w, store))
	}
	return breakdowns, Aggregate(breakdowns)
}
