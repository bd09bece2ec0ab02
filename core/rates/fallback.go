// Package rates - Size-based EC2 rate estimation
// Used when an instance type has no entry in the EC2 price table.
// Best-effort approximation, not a billing source of truth.
package rates

import (
	"strings"

	"github.com/shopspring/decimal"
)

// sizeBaseRate maps a size token to a base hourly rate.
// Checked in order: longer tokens first, so "2xlarge" wins over "xlarge"
// and "xlarge" wins over "large".
var sizeBaseRates = []struct {
	token string
	rate  decimal.Decimal
}{
	{"48xlarge", decimal.NewFromFloat(14.40)},
	{"32xlarge", decimal.NewFromFloat(9.60)},
	{"24xlarge", decimal.NewFromFloat(7.20)},
	{"18xlarge", decimal.NewFromFloat(5.40)},
	{"16xlarge", decimal.NewFromFloat(4.80)},
	{"12xlarge", decimal.NewFromFloat(3.60)},
	{"9xlarge", decimal.NewFromFloat(2.70)},
	{"8xlarge", decimal.NewFromFloat(2.40)},
	{"6xlarge", decimal.NewFromFloat(1.80)},
	{"4xlarge", decimal.NewFromFloat(1.20)},
	{"3xlarge", decimal.NewFromFloat(0.90)},
	{"2xlarge", decimal.NewFromFloat(0.60)},
	{"xlarge", decimal.NewFromFloat(0.30)},
	{"large", decimal.NewFromFloat(0.15)},
	{"medium", decimal.NewFromFloat(0.08)},
	{"metal", decimal.NewFromFloat(10.00)},
}

// defaultHourlyRate is returned when no size token matches
var defaultHourlyRate = decimal.NewFromFloat(0.20)

// familyMultiplier classifies the instance family by name prefix
type familyMultiplier struct {
	prefixes   []string
	multiplier decimal.Decimal
}

var familyMultipliers = []familyMultiplier{
	// Compute optimized
	{[]string{"c5", "c6", "c7"}, decimal.NewFromFloat(0.9)},
	// Memory optimized
	{[]string{"r5", "r6", "r7", "r8"}, decimal.NewFromFloat(1.2)},
	// Storage optimized
	{[]string{"i3", "i4"}, decimal.NewFromFloat(1.1)},
	// GPU / accelerator
	{[]string{"p2", "p3", "p4", "p5", "g4", "g5"}, decimal.NewFromFloat(3.0)},
}

// EstimateHourlyRate estimates the EC2 hourly rate for an instance type
// from its size token and family prefix.
func EstimateHourlyRate(instanceType string) decimal.Decimal {
	for _, sb := range sizeBaseRates {
		if !strings.Contains(instanceType, sb.token) {
			continue
		}
		for _, fm := range familyMultipliers {
			for _, prefix := range fm.prefixes {
				if strings.HasPrefix(instanceType, prefix) {
					return sb.rate.Mul(fm.multiplier)
				}
			}
		}
		// General purpose and unknown families use the base rate
		return sb.rate
	}
	return defaultHourlyRate
}
