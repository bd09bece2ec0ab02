package input

import (
	"os"
	"path/filepath"
	"testing"

	"databricks-cost/core/types"
	"databricks-cost/internal/config"
)

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{
		Region:      "ap-northeast-1",
		Currency:    "USD",
		DailyHours:  8,
		MonthlyDays: 20,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "workloads.hcl", `
workload "etl nightly" {
  type            = "jobs"
  driver_instance = "r5.large"
  executor_nodes  = 2
  daily_hours     = 8
  monthly_days    = 20
  photon          = true
}

workload "bi dashboards" {
  type               = "sql-warehouse-serverless"
  warehouse_size     = "small"
  warehouse_clusters = 2
  monthly_hours      = 160
}
`)

	workloads, err := Load(path, testDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workloads) != 2 {
		t.Fatalf("workload count = %d, want 2", len(workloads))
	}

	etl := workloads[0]
	if etl.Name != "etl nightly" || etl.Type != types.WorkloadJobs {
		t.Errorf("unexpected first workload: %+v", etl)
	}
	if !etl.PhotonEnabled {
		t.Error("photon flag not carried through")
	}
	// 8 hours x 20 days
	if got, want := etl.MonthlyHours.String(), "160"; got != want {
		t.Errorf("derived monthly hours = %s, want %s", got, want)
	}
	if etl.ExecutorInstance != types.SameAsDriver {
		t.Errorf("executor default = %s, want %s", etl.ExecutorInstance, types.SameAsDriver)
	}
	if etl.Region != "ap-northeast-1" {
		t.Errorf("default region not applied: %s", etl.Region)
	}

	bi := workloads[1]
	if bi.Type != types.WorkloadSQLServerless || bi.WarehouseSize != "small" {
		t.Errorf("unexpected serverless workload: %+v", bi)
	}
	if got, want := bi.MonthlyHours.String(), "160"; got != want {
		t.Errorf("explicit monthly hours = %s, want %s", got, want)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "workloads.json", `{
  "workloads": [
    {
      "name": "analytics",
      "type": "all-purpose",
      "driver_instance": "m5.large",
      "executor_instance": "m5.xlarge",
      "executor_nodes": 3,
      "monthly_hours": 200,
      "region": "us-east-1"
    }
  ]
}`)

	workloads, err := Load(path, testDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workloads) != 1 {
		t.Fatalf("workload count = %d, want 1", len(workloads))
	}
	w := workloads[0]
	if w.ExecutorInstance != "m5.xlarge" || w.ExecutorNodes != 3 {
		t.Errorf("unexpected workload: %+v", w)
	}
	if w.Region != "us-east-1" {
		t.Errorf("explicit region overridden: %s", w.Region)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "workloads.yaml", `
workloads:
  - name: streaming
    type: dlt-advanced
    driver_instance: r5.xlarge
    executor_nodes: 4
    daily_hours: 24
    monthly_days: 30
`)

	workloads, err := Load(path, testDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(workloads) != 1 {
		t.Fatalf("workload count = %d, want 1", len(workloads))
	}
	if got, want := workloads[0].MonthlyHours.String(), "720"; got != want {
		t.Errorf("derived monthly hours = %s, want %s", got, want)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "workloads.toml", `whatever`)
	if _, err := Load(path, testDefaults()); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestConvertValidation(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{
			name:  "missing name",
			entry: Entry{Type: "jobs", DriverInstance: "r5.large"},
		},
		{
			name:  "unknown workload type",
			entry: Entry{Name: "w", Type: "mystery", DriverInstance: "r5.large"},
		},
		{
			name:  "cluster workload without driver",
			entry: Entry{Name: "w", Type: "jobs"},
		},
		{
			name:  "daily hours above 24",
			entry: Entry{Name: "w", Type: "jobs", DriverInstance: "r5.large", DailyHours: 25},
		},
		{
			name:  "monthly hours above 744",
			entry: Entry{Name: "w", Type: "jobs", DriverInstance: "r5.large", MonthlyHours: 800},
		},
		{
			name:  "negative executor nodes",
			entry: Entry{Name: "w", Type: "jobs", DriverInstance: "r5.large", ExecutorNodes: -1},
		},
		{
			name:  "serverless without warehouse size",
			entry: Entry{Name: "w", Type: "sql-warehouse-serverless"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Convert([]Entry{tt.entry}, testDefaults()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConvertEmptyInput(t *testing.T) {
	if _, err := Convert(nil, testDefaults()); err == nil {
		t.Fatal("expected error for empty workload list")
	}
}
