package rates

import (
	"testing"
)

func TestEstimateHourlyRate(t *testing.T) {
	tests := []struct {
		name         string
		instanceType string
		expected     string
	}{
		{
			name:         "memory optimized large",
			instanceType: "r5.large",
			expected:     "0.18", // 0.15 * 1.2
		},
		{
			name:         "xlarge wins over large substring",
			instanceType: "r5.xlarge",
			expected:     "0.36", // 0.30 * 1.2
		},
		{
			name:         "2xlarge wins over xlarge substring",
			instanceType: "c5.2xlarge",
			expected:     "0.54", // 0.60 * 0.9
		},
		{
			name:         "general purpose uses base rate",
			instanceType: "m5.xlarge",
			expected:     "0.3",
		},
		{
			name:         "storage optimized",
			instanceType: "i3.xlarge",
			expected:     "0.33", // 0.30 * 1.1
		},
		{
			name:         "gpu family triples",
			instanceType: "p3.8xlarge",
			expected:     "7.2", // 2.40 * 3.0
		},
		{
			name:         "metal",
			instanceType: "m5.metal",
			expected:     "10",
		},
		{
			name:         "medium",
			instanceType: "m5.medium",
			expected:     "0.08",
		},
		{
			name:         "unknown family uses base rate",
			instanceType: "z1d.large",
			expected:     "0.15",
		},
		{
			name:         "no size token falls back to default",
			instanceType: "mystery-box",
			expected:     "0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateHourlyRate(tt.instanceType)
			if got.String() != tt.expected {
				t.Errorf("EstimateHourlyRate(%s) = %s, want %s", tt.instanceType, got, tt.expected)
			}
		})
	}
}
