// Package input parses and validates workload definition files.
// Definitions can be written in HCL, JSON, or YAML; the format is
// selected by file extension. Malformed entries are rejected here and
// never reach the calculator.
package input

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"databricks-cost/core/types"
	"databricks-cost/internal/config"
	"databricks-cost/internal/errors"
)

// Document is the top-level workload definition file
type Document struct {
	Workloads []Entry `hcl:"workload,block" json:"workloads" yaml:"workloads"`
}

// Entry is one declared workload before validation.
// Numeric bounds follow the input form: hours per day 0-24, days per
// month 0-31, hours per month 0-744.
type Entry struct {
	// Name labels the workload
	Name string `hcl:"name,label" json:"name" yaml:"name" validate:"required"`

	// Type is the workload category
	Type string `hcl:"type" json:"type" yaml:"type" validate:"required,oneof=all-purpose jobs dlt-advanced sql-warehouse-serverless"`

	// DriverInstance is the driver EC2 instance type
	DriverInstance string `hcl:"driver_instance,optional" json:"driver_instance,omitempty" yaml:"driver_instance,omitempty" validate:"required_unless=Type sql-warehouse-serverless"`

	// ExecutorInstance is the executor EC2 instance type, empty or
	// "same_as_driver" to reuse the driver type
	ExecutorInstance string `hcl:"executor_instance,optional" json:"executor_instance,omitempty" yaml:"executor_instance,omitempty"`

	// ExecutorNodes is the executor node count
	ExecutorNodes int `hcl:"executor_nodes,optional" json:"executor_nodes,omitempty" yaml:"executor_nodes,omitempty" validate:"gte=0,lte=100"`

	// DailyHours is hours of use per day
	DailyHours float64 `hcl:"daily_hours,optional" json:"daily_hours,omitempty" yaml:"daily_hours,omitempty" validate:"gte=0,lte=24"`

	// MonthlyDays is usage days per month
	MonthlyDays int `hcl:"monthly_days,optional" json:"monthly_days,omitempty" yaml:"monthly_days,omitempty" validate:"gte=0,lte=31"`

	// MonthlyHours is hours of use per month; derived from
	// DailyHours x MonthlyDays when zero
	MonthlyHours float64 `hcl:"monthly_hours,optional" json:"monthly_hours,omitempty" yaml:"monthly_hours,omitempty" validate:"gte=0,lte=744"`

	// Photon enables Photon-accelerated DBU rates
	Photon bool `hcl:"photon,optional" json:"photon,omitempty" yaml:"photon,omitempty"`

	// Region is the billing region; falls back to the configured default
	Region string `hcl:"region,optional" json:"region,omitempty" yaml:"region,omitempty"`

	// WarehouseSize is the SQL warehouse size (serverless only)
	WarehouseSize string `hcl:"warehouse_size,optional" json:"warehouse_size,omitempty" yaml:"warehouse_size,omitempty" validate:"required_if=Type sql-warehouse-serverless"`

	// WarehouseClusters is the SQL warehouse cluster count
	WarehouseClusters int `hcl:"warehouse_clusters,optional" json:"warehouse_clusters,omitempty" yaml:"warehouse_clusters,omitempty" validate:"gte=0,lte=100"`
}

// Load reads a workload definition file and returns validated workloads
func Load(path string, defaults config.DefaultsConfig) ([]types.Workload, error) {
	var doc Document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
			return nil, errors.Parsing("failed to parse workload file", err)
		}
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Parsing("failed to read workload file", err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Parsing("failed to parse workload file", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Parsing("failed to read workload file", err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Parsing("failed to parse workload file", err)
		}
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported workload file extension: %s", filepath.Ext(path))
	}

	return Convert(doc.Workloads, defaults)
}

// Convert validates entries and builds immutable workload records
func Convert(entries []Entry, defaults config.DefaultsConfig) ([]types.Workload, error) {
	if len(entries) == 0 {
		return nil, errors.Input("no workloads defined")
	}

	workloads := make([]types.Workload, 0, len(entries))
	for i, entry := range entries {
		w, err := entry.ToWorkload(defaults)
		if err != nil {
			if de, ok := err.(*errors.Error); ok {
				return nil, de.WithContext("workload", entry.Name).WithContext("index", i)
			}
			return nil, err
		}
		workloads = append(workloads, w)
	}
	return workloads, nil
}
