// Package costing implements the cost calculation core.
// Compute and Aggregate are pure functions over the rate store;
// no lookup failure is ever fatal.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"databricks-cost/core/rates"
	"databricks-cost/core/types"
)

var (
	two          = decimal.NewFromInt(2)
	daysPerMonth = decimal.NewFromInt(types.BillingDaysPerMonth)
)

// Compute calculates the cost breakdown for a single workload.
// Missing rate entries contribute zero and append a warning to the
// breakdown; Compute never fails.
func Compute(w types.Workload, store *rates.Store) types.Breakdown {
	if w.Type.IsServerless() {
		return computeServerless(w, store)
	}
	return computeCluster(w, store)
}

// computeCluster prices a driver/executor cluster workload:
// DBU consumption billed at the regional DBU price, plus the EC2
// on-demand cost of the underlying instances.
func computeCluster(w types.Workload, store *rates.Store) types.Breakdown {
	b := types.Breakdown{
		WorkloadName:     w.Name,
		WorkloadType:     w.Type,
		Region:           w.Region,
		DriverInstance:   w.DriverInstance,
		ExecutorInstance: w.ResolvedExecutor(),
		ExecutorNodes:    w.ExecutorNodes,
		PhotonEnabled:    w.PhotonEnabled,
		MonthlyHours:     w.MonthlyHours,
	}

	dbuPrice, found := store.UnitPrice(w.Type, w.Region)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no DBU price for %s in %s", w.Type, w.Region))
	}
	b.DBUPrice = dbuPrice

	driverRate, found := store.ConsumptionRate(w.DriverInstance, w.Type)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no DBU rate for %s under %s", w.DriverInstance, w.Type))
	}
	executorRate, found := store.ConsumptionRate(b.ExecutorInstance, w.Type)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no DBU rate for %s under %s", b.ExecutorInstance, w.Type))
	}

	// Photon doubles DBU consumption
	if w.PhotonEnabled {
		driverRate = driverRate.Mul(two)
		executorRate = executorRate.Mul(two)
	}
	b.DriverDBURate = driverRate
	b.ExecutorDBURate = executorRate

	// Driver is always a single node
	nodes := decimal.NewFromInt(int64(w.ExecutorNodes))
	b.DriverMonthlyDBU = driverRate.Mul(w.MonthlyHours)
	b.ExecutorMonthlyDBU = executorRate.Mul(nodes).Mul(w.MonthlyHours)
	b.TotalMonthlyDBU = b.DriverMonthlyDBU.Add(b.ExecutorMonthlyDBU)

	b.DBUCostMonthly = b.TotalMonthlyDBU.Mul(dbuPrice)
	b.DBUCostDaily = b.DBUCostMonthly.Div(daysPerMonth)

	driverEC2Rate, found := store.InfraRate(w.DriverInstance, w.Region)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no EC2 price for %s in %s, using size estimate", w.DriverInstance, w.Region))
	}
	executorEC2Rate, found := store.InfraRate(b.ExecutorInstance, w.Region)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no EC2 price for %s in %s, using size estimate", b.ExecutorInstance, w.Region))
	}

	b.DriverEC2Monthly = driverEC2Rate.Mul(w.MonthlyHours)
	b.DriverEC2Daily = b.DriverEC2Monthly.Div(daysPerMonth)
	b.ExecutorEC2Monthly = executorEC2Rate.Mul(nodes).Mul(w.MonthlyHours)
	b.ExecutorEC2Daily = b.ExecutorEC2Monthly.Div(daysPerMonth)
	b.EC2CostMonthly = b.DriverEC2Monthly.Add(b.ExecutorEC2Monthly)
	b.EC2CostDaily = b.EC2CostMonthly.Div(daysPerMonth)

	b.TotalMonthly = b.DBUCostMonthly.Add(b.EC2CostMonthly)
	b.TotalDaily = b.TotalMonthly.Div(daysPerMonth)

	return b
}

// computeServerless prices a SQL warehouse workload: a flat DBU rate per
// warehouse size, scaled by cluster count. There is no dedicated machine,
// so EC2 cost is zero.
func computeServerless(w types.Workload, store *rates.Store) types.Breakdown {
	b := types.Breakdown{
		WorkloadName:      w.Name,
		WorkloadType:      w.Type,
		Region:            w.Region,
		MonthlyHours:      w.MonthlyHours,
		WarehouseSize:     w.WarehouseSize,
		WarehouseClusters: w.WarehouseClusters,
	}

	dbuPrice, found := store.UnitPrice(w.Type, w.Region)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no DBU price for %s in %s", w.Type, w.Region))
	}
	b.DBUPrice = dbuPrice

	sizeRate, found := store.ServerlessRate(w.WarehouseSize)
	if !found {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("no warehouse size %q", w.WarehouseSize))
	}

	clusters := decimal.NewFromInt(int64(w.WarehouseClusters))
	b.ExecutorDBURate = sizeRate.Mul(clusters)
	b.ExecutorMonthlyDBU = b.ExecutorDBURate.Mul(w.MonthlyHours)
	b.TotalMonthlyDBU = b.ExecutorMonthlyDBU

	b.DBUCostMonthly = b.TotalMonthlyDBU.Mul(dbuPrice)
	b.DBUCostDaily = b.DBUCostMonthly.Div(daysPerMonth)

	b.TotalMonthly = b.DBUCostMonthly
	b.TotalDaily = b.TotalMonthly.Div(daysPerMonth)

	return b
}
