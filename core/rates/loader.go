// Package rates - Static rate data loading
// Rate tables are read once at start-up from JSON files. A missing or
// unreadable file degrades that table to empty with a single warning;
// it never fails the process.
package rates

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"databricks-cost/core/types"
	"databricks-cost/internal/logging"
)

// DataFiles names the rate data files inside a data directory
type DataFiles struct {
	// DBUPricing is the workload type -> region -> DBU price table
	DBUPricing string

	// InstanceRates is the instance -> workload type -> DBU rate table
	InstanceRates string

	// EC2Pricing is the instance -> region -> hourly price table
	EC2Pricing string

	// WarehouseSizes is the SQL warehouse size -> DBU rate table
	WarehouseSizes string
}

// DefaultDataFiles returns the conventional file names
func DefaultDataFiles() DataFiles {
	return DataFiles{
		DBUPricing:     "dbu_pricing.json",
		InstanceRates:  "instance_dbu_rates.json",
		EC2Pricing:     "ec2_pricing.json",
		WarehouseSizes: "warehouse_sizes.json",
	}
}

// dbuPriceEntry is one region entry in the DBU price table
type dbuPriceEntry struct {
	PricePerDBU decimal.Decimal `json:"price_per_dbu"`
}

// dbuRateEntry is one workload entry in the instance DBU rate table
type dbuRateEntry struct {
	DBUPerHour decimal.Decimal `json:"dbu_per_hour"`
}

// ec2PriceEntry is one region entry in the EC2 price table
type ec2PriceEntry struct {
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

// LoadDir loads all rate tables from a data directory
func LoadDir(dir string, files DataFiles) *Store {
	store := NewStore()

	var dbuPricing map[string]map[string]dbuPriceEntry
	if readTable(filepath.Join(dir, files.DBUPricing), &dbuPricing) {
		for workloadType, regions := range dbuPricing {
			for region, entry := range regions {
				store.SetUnitPrice(types.WorkloadType(workloadType), region, entry.PricePerDBU)
			}
		}
	}

	var instanceRates map[string]map[string]dbuRateEntry
	if readTable(filepath.Join(dir, files.InstanceRates), &instanceRates) {
		for instanceType, workloads := range instanceRates {
			for workloadType, entry := range workloads {
				store.SetConsumptionRate(instanceType, types.WorkloadType(workloadType), entry.DBUPerHour)
			}
		}
	}

	var ec2Pricing map[string]map[string]ec2PriceEntry
	if readTable(filepath.Join(dir, files.EC2Pricing), &ec2Pricing) {
		for instanceType, regions := range ec2Pricing {
			for region, entry := range regions {
				store.SetInfraRate(instanceType, region, entry.PricePerHour)
			}
		}
	}

	var warehouseSizes map[string]dbuRateEntry
	if readTable(filepath.Join(dir, files.WarehouseSizes), &warehouseSizes) {
		for size, entry := range warehouseSizes {
			store.SetServerlessRate(size, entry.DBUPerHour)
		}
	}

	return store
}

// readTable reads and decodes one rate table file.
// Returns false, after logging a warning, when the table is unavailable.
func readTable(path string, out interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("rate table unavailable, using empty table",
			zap.String("path", path), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.Warn("rate table malformed, using empty table",
			zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}
