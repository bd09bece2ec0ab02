// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// BillingDaysPerMonth is the fixed day count used to derive daily cost
// from monthly cost. Not calendar-aware.
const BillingDaysPerMonth = 30

// Breakdown is the per-workload cost record.
// Derived, immutable, recomputed on every calculation run.
type Breakdown struct {
	// WorkloadName is the workload label
	WorkloadName string `json:"workload_name"`

	// WorkloadType is the workload category
	WorkloadType WorkloadType `json:"workload_type"`

	// Region is the billing region
	Region string `json:"region"`

	// DriverInstance is the driver instance type
	DriverInstance string `json:"driver_instance,omitempty"`

	// ExecutorInstance is the resolved executor instance type
	ExecutorInstance string `json:"executor_instance,omitempty"`

	// ExecutorNodes is the executor node count
	ExecutorNodes int `json:"executor_nodes"`

	// PhotonEnabled indicates Photon-accelerated DBU rates
	PhotonEnabled bool `json:"photon_enabled"`

	// MonthlyHours is the hours of use per month
	MonthlyHours decimal.Decimal `json:"monthly_hours"`

	// DBUPrice is the price per DBU for the workload type and region
	DBUPrice decimal.Decimal `json:"dbu_price"`

	// DriverDBURate is the driver DBU consumption per hour
	DriverDBURate decimal.Decimal `json:"driver_dbu_rate"`

	// ExecutorDBURate is the per-node executor DBU consumption per hour
	ExecutorDBURate decimal.Decimal `json:"executor_dbu_rate"`

	// DriverMonthlyDBU is the driver DBU consumption per month
	DriverMonthlyDBU decimal.Decimal `json:"driver_monthly_dbu"`

	// ExecutorMonthlyDBU is the executor DBU consumption per month
	ExecutorMonthlyDBU decimal.Decimal `json:"executor_monthly_dbu"`

	// TotalMonthlyDBU is the total DBU consumption per month
	TotalMonthlyDBU decimal.Decimal `json:"total_monthly_dbu"`

	// DBUCostMonthly is the Databricks billing cost per month
	DBUCostMonthly decimal.Decimal `json:"dbu_cost_monthly"`

	// DBUCostDaily is the Databricks billing cost per day
	DBUCostDaily decimal.Decimal `json:"dbu_cost_daily"`

	// DriverEC2Monthly is the driver EC2 cost per month
	DriverEC2Monthly decimal.Decimal `json:"driver_ec2_monthly"`

	// DriverEC2Daily is the driver EC2 cost per day
	DriverEC2Daily decimal.Decimal `json:"driver_ec2_daily"`

	// ExecutorEC2Monthly is the executor EC2 cost per month
	ExecutorEC2Monthly decimal.Decimal `json:"executor_ec2_monthly"`

	// ExecutorEC2Daily is the executor EC2 cost per day
	ExecutorEC2Daily decimal.Decimal `json:"executor_ec2_daily"`

	// EC2CostMonthly is the total EC2 cost per month
	EC2CostMonthly decimal.Decimal `json:"ec2_cost_monthly"`

	// EC2CostDaily is the total EC2 cost per day
	EC2CostDaily decimal.Decimal `json:"ec2_cost_daily"`

	// TotalMonthly is the grand total per month
	TotalMonthly decimal.Decimal `json:"total_monthly"`

	// TotalDaily is the grand total per day
	TotalDaily decimal.Decimal `json:"total_daily"`

	// WarehouseSize is the SQL warehouse size (serverless only)
	WarehouseSize string `json:"warehouse_size,omitempty"`

	// WarehouseClusters is the SQL warehouse cluster count (serverless only)
	WarehouseClusters int `json:"warehouse_clusters,omitempty"`

	// Warnings lists non-fatal problems hit during calculation,
	// one per missing rate table entry
	Warnings []string `json:"warnings,omitempty"`
}

// Totals is the aggregate over a list of breakdowns
type Totals struct {
	// WorkloadCount is the number of aggregated workloads
	WorkloadCount int `json:"workload_count"`

	// DBUMonthly is the total Databricks billing cost per month
	DBUMonthly decimal.Decimal `json:"dbu_monthly"`

	// DBUDaily is the total Databricks billing cost per day
	DBUDaily decimal.Decimal `json:"dbu_daily"`

	// EC2Monthly is the total EC2 cost per month
	EC2Monthly decimal.Decimal `json:"ec2_monthly"`

	// EC2Daily is the total EC2 cost per day
	EC2Daily decimal.Decimal `json:"ec2_daily"`

	// GrandMonthly is the overall monthly total
	GrandMonthly decimal.Decimal `json:"grand_monthly"`

	// GrandDaily is the overall daily total
	GrandDaily decimal.Decimal `json:"grand_daily"`

	// WarningCount is the number of warnings across all breakdowns
	WarningCount int `json:"warning_count"`
}
