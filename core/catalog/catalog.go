// Package catalog provides the EC2 instance spec catalog.
// Specs are display metadata only; they never feed the cost calculation.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"databricks-cost/internal/logging"
)

// Spec describes one EC2 instance type
type Spec struct {
	// VCPU is the vCPU count
	VCPU int `json:"vcpu"`

	// MemoryGB is the memory in GiB
	MemoryGB float64 `json:"memory_gb"`
}

// Catalog maps instance type to spec
type Catalog map[string]Spec

// Load reads the spec catalog from a JSON file.
// A missing file degrades to an empty catalog with a warning.
func Load(path string) Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Warn("instance spec catalog unavailable",
			zap.String("path", path), zap.Error(err))
		return Catalog{}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		logging.Warn("instance spec catalog malformed",
			zap.String("path", path), zap.Error(err))
		return Catalog{}
	}
	return c
}

// Label formats an instance type with its spec for display,
// e.g. "r5.large (2 vCPU, 16 GiB)"
func (c Catalog) Label(instanceType string) string {
	spec, ok := c[instanceType]
	if !ok {
		return instanceType
	}
	return fmt.Sprintf("%s (%d vCPU, %g GiB)", instanceType, spec.VCPU, spec.MemoryGB)
}

// Sort orders instance types naturally: by family, then by size rank
// (large < xlarge < 2xlarge < ... < metal), not lexically.
func Sort(instanceTypes []string) {
	sort.Slice(instanceTypes, func(i, j int) bool {
		fi, ri := sortKey(instanceTypes[i])
		fj, rj := sortKey(instanceTypes[j])
		if fi != fj {
			return fi < fj
		}
		if ri != rj {
			return ri < rj
		}
		return instanceTypes[i] < instanceTypes[j]
	})
}

// sizeRanks orders the non-numeric instance sizes
var sizeRanks = map[string]float64{
	"nano": 0.1, "micro": 0.2, "small": 0.3, "medium": 0.4,
	"large": 1, "xlarge": 2, "metal": 100,
}

// sortKey splits an instance type into its family and size rank.
// "Nxlarge" sizes rank by their multiplier, so 9xlarge sits between
// 8xlarge and 12xlarge.
func sortKey(instanceType string) (string, float64) {
	family := instanceType
	size := ""
	for i := 0; i < len(instanceType); i++ {
		if instanceType[i] == '.' {
			family = instanceType[:i]
			size = instanceType[i+1:]
			break
		}
	}
	if size == "" {
		return family, 0
	}

	if rank, ok := sizeRanks[size]; ok {
		return family, rank
	}

	num := 0
	rest := size
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		num = num*10 + int(rest[0]-'0')
		rest = rest[1:]
	}
	if rest == "xlarge" && num > 0 {
		return family, sizeRanks["xlarge"] + float64(num) - 1
	}
	return family, 1
}
