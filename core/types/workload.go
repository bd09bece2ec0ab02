// Package types - Workload types
package types

import "github.com/shopspring/decimal"

// WorkloadType identifies a Databricks compute category
type WorkloadType string

const (
	// WorkloadAllPurpose is an interactive all-purpose cluster
	WorkloadAllPurpose WorkloadType = "all-purpose"

	// WorkloadJobs is an automated jobs cluster
	WorkloadJobs WorkloadType = "jobs"

	// WorkloadDLTAdvanced is a Delta Live Tables advanced pipeline
	WorkloadDLTAdvanced WorkloadType = "dlt-advanced"

	// WorkloadSQLServerless is a serverless SQL warehouse.
	// Billed per warehouse size, with no underlying EC2 charge.
	WorkloadSQLServerless WorkloadType = "sql-warehouse-serverless"
)

// String returns the string representation
func (t WorkloadType) String() string {
	return string(t)
}

// IsServerless reports whether the workload is billed by warehouse size
// instead of per-instance DBU rates.
func (t WorkloadType) IsServerless() bool {
	return t == WorkloadSQLServerless
}

// SameAsDriver is the executor instance sentinel meaning "use the driver
// instance type".
const SameAsDriver = "same_as_driver"

// Workload describes one user-declared workload shape.
// It is built once from validated input and never mutated.
type Workload struct {
	// Name is a free-text label for the workload
	Name string `json:"name"`

	// Type is the Databricks workload category
	Type WorkloadType `json:"type"`

	// DriverInstance is the driver EC2 instance type
	DriverInstance string `json:"driver_instance"`

	// ExecutorInstance is the executor EC2 instance type.
	// May be SameAsDriver.
	ExecutorInstance string `json:"executor_instance"`

	// ExecutorNodes is the executor node count
	ExecutorNodes int `json:"executor_nodes"`

	// DailyHours is hours of use per day
	DailyHours decimal.Decimal `json:"daily_hours"`

	// MonthlyDays is usage days per month
	MonthlyDays int `json:"monthly_days"`

	// MonthlyHours is hours of use per month
	MonthlyHours decimal.Decimal `json:"monthly_hours"`

	// PhotonEnabled doubles DBU consumption when set
	PhotonEnabled bool `json:"photon_enabled"`

	// Region is the billing region
	Region string `json:"region"`

	// WarehouseSize is the SQL warehouse size (serverless only)
	WarehouseSize string `json:"warehouse_size,omitempty"`

	// WarehouseClusters is the SQL warehouse cluster count (serverless only)
	WarehouseClusters int `json:"warehouse_clusters,omitempty"`
}

// ResolvedExecutor returns the executor instance type with the
// SameAsDriver sentinel resolved.
func (w Workload) ResolvedExecutor() string {
	if w.ExecutorInstance == "" || w.ExecutorInstance == SameAsDriver {
		return w.DriverInstance
	}
	return w.ExecutorInstance
}
