// Package api - Request and response types
package api

import (
	"databricks-cost/core/input"
	"databricks-cost/core/types"
)

// EstimateRequest is the body of POST /estimate
type EstimateRequest struct {
	// Workloads are the declared workload shapes
	Workloads []input.Entry `json:"workloads"`

	// Region overrides the default region for entries without one
	Region string `json:"region,omitempty"`
}

// EstimateResponse is the body of a successful estimate
type EstimateResponse struct {
	// RequestID identifies the request
	RequestID string `json:"request_id"`

	// Breakdowns are the per-workload cost records
	Breakdowns []types.Breakdown `json:"breakdowns"`

	// Totals are the aggregated grand totals
	Totals types.Totals `json:"totals"`

	// Warnings lists all calculation warnings in input order
	Warnings []string `json:"warnings,omitempty"`

	// DurationMs is the server-side calculation time
	DurationMs int64 `json:"duration_ms"`
}

// ErrorResponse is the body of a failed request
type ErrorResponse struct {
	// RequestID identifies the request
	RequestID string `json:"request_id,omitempty"`

	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// RatesResponse describes the loaded rate tables
type RatesResponse struct {
	// WorkloadTypes are the workload types with DBU prices
	WorkloadTypes []types.WorkloadType `json:"workload_types"`

	// InstanceTypes are the instance types with DBU rates,
	// labelled with specs when known
	InstanceTypes []string `json:"instance_types"`

	// WarehouseSizes are the known SQL warehouse sizes
	WarehouseSizes []string `json:"warehouse_sizes"`
}
