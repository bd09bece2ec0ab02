package costing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"databricks-cost/core/rates"
	"databricks-cost/core/types"
)

// testStore builds a store with the rates used by the worked examples
func testStore() *rates.Store {
	store := rates.NewStore()
	store.SetUnitPrice(types.WorkloadAllPurpose, "ap-northeast-1", decimal.NewFromFloat(0.65))
	store.SetUnitPrice(types.WorkloadSQLServerless, "ap-northeast-1", decimal.NewFromFloat(1.0))
	store.SetConsumptionRate("m5.large", types.WorkloadAllPurpose, decimal.NewFromFloat(0.34))
	store.SetConsumptionRate("m5.xlarge", types.WorkloadAllPurpose, decimal.NewFromFloat(0.69))
	store.SetInfraRate("m5.large", "ap-northeast-1", decimal.NewFromFloat(0.124))
	store.SetInfraRate("m5.xlarge", "ap-northeast-1", decimal.NewFromFloat(0.248))
	store.SetServerlessRate("small", decimal.NewFromFloat(8))
	return store
}

func clusterWorkload() types.Workload {
	return types.Workload{
		Name:             "analytics",
		Type:             types.WorkloadAllPurpose,
		DriverInstance:   "m5.large",
		ExecutorInstance: "m5.xlarge",
		ExecutorNodes:    2,
		MonthlyHours:     decimal.NewFromInt(160),
		Region:           "ap-northeast-1",
	}
}

func TestComputeClusterWorkload(t *testing.T) {
	b := Compute(clusterWorkload(), testStore())

	if got, want := b.DriverMonthlyDBU.String(), "54.4"; got != want {
		t.Errorf("driver monthly DBU = %s, want %s", got, want)
	}
	if got, want := b.ExecutorMonthlyDBU.String(), "220.8"; got != want {
		t.Errorf("executor monthly DBU = %s, want %s", got, want)
	}
	if got, want := b.TotalMonthlyDBU.String(), "275.2"; got != want {
		t.Errorf("total monthly DBU = %s, want %s", got, want)
	}
	if got, want := b.DBUCostMonthly.String(), "178.88"; got != want {
		t.Errorf("DBU cost monthly = %s, want %s", got, want)
	}
	if got, want := b.DBUCostDaily.StringFixed(3), "5.963"; got != want {
		t.Errorf("DBU cost daily = %s, want %s", got, want)
	}

	// EC2: driver 0.124*160 = 19.84, executor 0.248*2*160 = 79.36
	if got, want := b.EC2CostMonthly.String(), "99.2"; got != want {
		t.Errorf("EC2 cost monthly = %s, want %s", got, want)
	}
	if got, want := b.TotalMonthly.String(), "278.08"; got != want {
		t.Errorf("total monthly = %s, want %s", got, want)
	}

	if len(b.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", b.Warnings)
	}
}

func TestComputePhotonDoublesConsumption(t *testing.T) {
	store := testStore()
	base := Compute(clusterWorkload(), store)

	w := clusterWorkload()
	w.PhotonEnabled = true
	photon := Compute(w, store)

	if got, want := photon.TotalMonthlyDBU.String(), "550.4"; got != want {
		t.Errorf("photon total monthly DBU = %s, want %s", got, want)
	}
	if got, want := photon.DBUCostMonthly.String(), "357.76"; got != want {
		t.Errorf("photon DBU cost monthly = %s, want %s", got, want)
	}
	if !photon.DBUCostMonthly.Equal(base.DBUCostMonthly.Mul(decimal.NewFromInt(2))) {
		t.Errorf("photon DBU cost %s is not double %s", photon.DBUCostMonthly, base.DBUCostMonthly)
	}

	// EC2 cost is unaffected by Photon
	if !photon.EC2CostMonthly.Equal(base.EC2CostMonthly) {
		t.Errorf("photon changed EC2 cost: %s != %s", photon.EC2CostMonthly, base.EC2CostMonthly)
	}
}

func TestComputeServerlessWarehouse(t *testing.T) {
	w := types.Workload{
		Name:              "bi",
		Type:              types.WorkloadSQLServerless,
		MonthlyHours:      decimal.NewFromInt(160),
		Region:            "ap-northeast-1",
		WarehouseSize:     "small",
		WarehouseClusters: 2,
	}
	b := Compute(w, testStore())

	if got, want := b.TotalMonthlyDBU.String(), "2560"; got != want {
		t.Errorf("total monthly DBU = %s, want %s", got, want)
	}
	if got, want := b.DBUCostMonthly.String(), "2560"; got != want {
		t.Errorf("DBU cost monthly = %s, want %s", got, want)
	}
	if !b.EC2CostMonthly.IsZero() {
		t.Errorf("serverless EC2 cost = %s, want 0", b.EC2CostMonthly)
	}
	if !b.TotalMonthly.Equal(b.DBUCostMonthly) {
		t.Errorf("serverless total %s != DBU cost %s", b.TotalMonthly, b.DBUCostMonthly)
	}
	if len(b.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", b.Warnings)
	}
}

func TestComputeSameAsDriverExecutor(t *testing.T) {
	w := clusterWorkload()
	w.ExecutorInstance = types.SameAsDriver
	b := Compute(w, testStore())

	if b.ExecutorInstance != "m5.large" {
		t.Errorf("resolved executor = %s, want m5.large", b.ExecutorInstance)
	}
	// Executor uses the driver rate: 0.34 * 2 * 160 = 108.8
	if got, want := b.ExecutorMonthlyDBU.String(), "108.8"; got != want {
		t.Errorf("executor monthly DBU = %s, want %s", got, want)
	}
}

func TestComputeMissingRatesDegradeToZero(t *testing.T) {
	w := clusterWorkload()
	b := Compute(w, rates.NewStore())

	if !b.DBUCostMonthly.IsZero() {
		t.Errorf("DBU cost with empty store = %s, want 0", b.DBUCostMonthly)
	}
	// EC2 falls back to the size estimate, so it is non-zero but flagged
	if b.EC2CostMonthly.IsZero() {
		t.Error("expected size-estimated EC2 cost with empty store")
	}
	if len(b.Warnings) == 0 {
		t.Fatal("expected warnings for missing rates")
	}

	var sawPrice, sawRate, sawEC2 bool
	for _, warning := range b.Warnings {
		switch {
		case strings.Contains(warning, "no DBU price"):
			sawPrice = true
		case strings.Contains(warning, "no DBU rate"):
			sawRate = true
		case strings.Contains(warning, "no EC2 price"):
			sawEC2 = true
		}
	}
	if !sawPrice || !sawRate || !sawEC2 {
		t.Errorf("missing expected warning kinds in %v", b.Warnings)
	}
}

func TestComputeDailyIsMonthlyOverThirty(t *testing.T) {
	thirty := decimal.NewFromInt(30)
	workloads := []types.Workload{
		clusterWorkload(),
		{
			Name:              "bi",
			Type:              types.WorkloadSQLServerless,
			MonthlyHours:      decimal.NewFromInt(200),
			Region:            "ap-northeast-1",
			WarehouseSize:     "small",
			WarehouseClusters: 1,
		},
	}

	for _, w := range workloads {
		b := Compute(w, testStore())
		if !b.TotalDaily.Equal(b.TotalMonthly.Div(thirty)) {
			t.Errorf("%s: daily %s != monthly/30 %s", w.Name, b.TotalDaily, b.TotalMonthly.Div(thirty))
		}
		if !b.DBUCostDaily.Equal(b.DBUCostMonthly.Div(thirty)) {
			t.Errorf("%s: DBU daily %s != monthly/30", w.Name, b.DBUCostDaily)
		}
		if !b.EC2CostDaily.Equal(b.EC2CostMonthly.Div(thirty)) {
			t.Errorf("%s: EC2 daily %s != monthly/30", w.Name, b.EC2CostDaily)
		}
	}
}

func TestComputeZeroExecutorNodes(t *testing.T) {
	w := clusterWorkload()
	w.ExecutorNodes = 0
	b := Compute(w, testStore())

	if !b.ExecutorMonthlyDBU.IsZero() {
		t.Errorf("executor monthly DBU with 0 nodes = %s, want 0", b.ExecutorMonthlyDBU)
	}
	if !b.TotalMonthlyDBU.Equal(b.DriverMonthlyDBU) {
		t.Errorf("total DBU %s != driver DBU %s", b.TotalMonthlyDBU, b.DriverMonthlyDBU)
	}
}
