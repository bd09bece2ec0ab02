// Package input - Entry validation and conversion
package input

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"databricks-cost/core/types"
	"databricks-cost/internal/config"
	"databricks-cost/internal/errors"
)

var validate = validator.New()

// Validate checks the entry against its field constraints
func (e Entry) Validate() error {
	if err := validate.Struct(e); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.Newf(errors.TypeInput, "invalid workload field %s (%s)", fe.Field(), fe.Tag())
		}
		return errors.Input(err.Error())
	}
	return nil
}

// ToWorkload validates the entry and builds the immutable workload record.
// Monthly hours are derived from daily hours x monthly days when not
// given explicitly.
func (e Entry) ToWorkload(defaults config.DefaultsConfig) (types.Workload, error) {
	if err := e.Validate(); err != nil {
		return types.Workload{}, err
	}

	region := e.Region
	if region == "" {
		region = defaults.Region
	}

	dailyHours := e.DailyHours
	if dailyHours == 0 {
		dailyHours = defaults.DailyHours
	}
	monthlyDays := e.MonthlyDays
	if monthlyDays == 0 {
		monthlyDays = defaults.MonthlyDays
	}

	monthlyHours := decimal.NewFromFloat(e.MonthlyHours)
	if monthlyHours.IsZero() {
		monthlyHours = decimal.NewFromFloat(dailyHours).Mul(decimal.NewFromInt(int64(monthlyDays)))
	}

	executor := e.ExecutorInstance
	if executor == "" {
		executor = types.SameAsDriver
	}

	clusters := e.WarehouseClusters
	if clusters == 0 {
		clusters = 1
	}

	return types.Workload{
		Name:              e.Name,
		Type:              types.WorkloadType(e.Type),
		DriverInstance:    e.DriverInstance,
		ExecutorInstance:  executor,
		ExecutorNodes:     e.ExecutorNodes,
		DailyHours:        decimal.NewFromFloat(dailyHours),
		MonthlyDays:       monthlyDays,
		MonthlyHours:      monthlyHours,
		PhotonEnabled:     e.Photon,
		Region:            region,
		WarehouseSize:     e.WarehouseSize,
		WarehouseClusters: clusters,
	}, nil
}
