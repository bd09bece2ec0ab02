// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"databricks-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data contains rate data file locations
	Data DataConfig `json:"data"`

	// Defaults contains default calculation settings
	Defaults DefaultsConfig `json:"defaults"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig locates the static rate data files
type DataConfig struct {
	// Dir is the directory containing rate data files
	Dir string `json:"dir"`

	// DBUPricingFile is the per-workload DBU price table
	DBUPricingFile string `json:"dbu_pricing_file"`

	// InstanceRatesFile is the per-instance DBU consumption table
	InstanceRatesFile string `json:"instance_rates_file"`

	// EC2PricingFile is the EC2 on-demand price table
	EC2PricingFile string `json:"ec2_pricing_file"`

	// WarehouseSizesFile is the SQL warehouse size table
	WarehouseSizesFile string `json:"warehouse_sizes_file"`

	// InstanceSpecsFile is the EC2 instance spec table
	InstanceSpecsFile string `json:"instance_specs_file"`
}

// DefaultsConfig contains default calculation settings
type DefaultsConfig struct {
	// Region is the region assumed when a workload omits one
	Region string `json:"region"`

	// Currency is the display currency
	Currency string `json:"currency"`

	// DailyHours is the assumed daily usage when deriving monthly hours
	DailyHours float64 `json:"daily_hours"`

	// MonthlyDays is the assumed usage days per month
	MonthlyDays int `json:"monthly_days"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-workload cost breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".databricks-cost", "data")

	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Dir:                dataDir,
			DBUPricingFile:     "dbu_pricing.json",
			InstanceRatesFile:  "instance_dbu_rates.json",
			EC2PricingFile:     "ec2_pricing.json",
			WarehouseSizesFile: "warehouse_sizes.json",
			InstanceSpecsFile:  "ec2_specs.json",
		},
		Defaults: DefaultsConfig{
			Region:      "ap-northeast-1",
			Currency:    "USD",
			DailyHours:  8,
			MonthlyDays: 20,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
