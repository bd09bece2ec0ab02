// Package rates provides the in-memory rate store.
// The store is loaded once at start-up and is read-only afterwards,
// so it can be shared across concurrent calculations without locking.
package rates

import (
	"sort"

	"github.com/shopspring/decimal"

	"databricks-cost/core/types"
)

// Store holds the rate tables used by the cost calculator.
// Missing keys are a valid state and degrade to zero or an estimate,
// never a crash.
type Store struct {
	// dbuPrices: workload type -> region -> price per DBU
	dbuPrices map[types.WorkloadType]map[string]decimal.Decimal

	// dbuRates: instance type -> workload type -> DBU per hour
	dbuRates map[string]map[types.WorkloadType]decimal.Decimal

	// ec2Rates: instance type -> region -> price per hour
	ec2Rates map[string]map[string]decimal.Decimal

	// warehouseRates: warehouse size -> DBU per hour
	warehouseRates map[string]decimal.Decimal
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		dbuPrices:      make(map[types.WorkloadType]map[string]decimal.Decimal),
		dbuRates:       make(map[string]map[types.WorkloadType]decimal.Decimal),
		ec2Rates:       make(map[string]map[string]decimal.Decimal),
		warehouseRates: make(map[string]decimal.Decimal),
	}
}

// UnitPrice returns the price per DBU for a workload type and region.
// Returns zero and false when no entry exists.
func (s *Store) UnitPrice(workloadType types.WorkloadType, region string) (decimal.Decimal, bool) {
	regions, ok := s.dbuPrices[workloadType]
	if !ok {
		return decimal.Zero, false
	}
	price, ok := regions[region]
	if !ok {
		return decimal.Zero, false
	}
	return price, true
}

// ConsumptionRate returns the DBU consumption per hour for an instance
// type under a workload type. Returns zero and false when no entry exists.
func (s *Store) ConsumptionRate(instanceType string, workloadType types.WorkloadType) (decimal.Decimal, bool) {
	workloads, ok := s.dbuRates[instanceType]
	if !ok {
		return decimal.Zero, false
	}
	rate, ok := workloads[workloadType]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}

// InfraRate returns the EC2 on-demand hourly rate for an instance type
// and region. When no entry exists it returns a size-based estimate and
// false, so the caller can surface a warning.
func (s *Store) InfraRate(instanceType, region string) (decimal.Decimal, bool) {
	regions, ok := s.ec2Rates[instanceType]
	if ok {
		if rate, ok := regions[region]; ok {
			return rate, true
		}
	}
	return EstimateHourlyRate(instanceType), false
}

// ServerlessRate returns the DBU consumption per hour for a SQL
// warehouse size. Returns zero and false when no entry exists.
func (s *Store) ServerlessRate(size string) (decimal.Decimal, bool) {
	rate, ok := s.warehouseRates[size]
	if !ok {
		return decimal.Zero, false
	}
	return rate, true
}

// WorkloadTypes returns the workload types with DBU prices, sorted
func (s *Store) WorkloadTypes() []types.WorkloadType {
	out := make([]types.WorkloadType, 0, len(s.dbuPrices))
	for t := range s.dbuPrices {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// InstanceTypes returns the instance types with DBU rates, sorted
func (s *Store) InstanceTypes() []string {
	out := make([]string, 0, len(s.dbuRates))
	for inst := range s.dbuRates {
		out = append(out, inst)
	}
	sort.Strings(out)
	return out
}

// WarehouseSizes returns the known SQL warehouse sizes, sorted by
// ascending DBU rate
func (s *Store) WarehouseSizes() []string {
	out := make([]string, 0, len(s.warehouseRates))
	for size := range s.warehouseRates {
		out = append(out, size)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := s.warehouseRates[out[i]], s.warehouseRates[out[j]]
		if ri.Equal(rj) {
			return out[i] < out[j]
		}
		return ri.LessThan(rj)
	})
	return out
}

// SetUnitPrice sets the price per DBU for a workload type and region
func (s *Store) SetUnitPrice(workloadType types.WorkloadType, region string, price decimal.Decimal) {
	if s.dbuPrices[workloadType] == nil {
		s.dbuPrices[workloadType] = make(map[string]decimal.Decimal)
	}
	s.dbuPrices[workloadType][region] = price
}

// SetConsumptionRate sets the DBU rate for an instance and workload type
func (s *Store) SetConsumptionRate(instanceType string, workloadType types.WorkloadType, rate decimal.Decimal) {
	if s.dbuRates[instanceType] == nil {
		s.dbuRates[instanceType] = make(map[types.WorkloadType]decimal.Decimal)
	}
	s.dbuRates[instanceType][workloadType] = rate
}

// SetInfraRate sets the EC2 hourly rate for an instance type and region
func (s *Store) SetInfraRate(instanceType, region string, rate decimal.Decimal) {
	if s.ec2Rates[instanceType] == nil {
		s.ec2Rates[instanceType] = make(map[string]decimal.Decimal)
	}
	s.ec2Rates[instanceType][region] = rate
}

// SetServerlessRate sets the DBU rate for a SQL warehouse size
func (s *Store) SetServerlessRate(size string, rate decimal.Decimal) {
	s.warehouseRates[size] = rate
}
