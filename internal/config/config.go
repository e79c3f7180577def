// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"plan-migrate/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Data contains input snapshot configuration
	Data DataConfig `json:"data"`

	// Catalog contains plan catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Credits contains resource requirement configuration
	Credits CreditsConfig `json:"credits"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Workers is the number of parallel account workers (0 = GOMAXPROCS)
	Workers int `json:"workers"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DataConfig locates the input snapshot files
type DataConfig struct {
	// Dir is the directory containing the snapshot JSON files
	Dir string `json:"dir"`

	// CompaniesFile is the companies snapshot file name
	CompaniesFile string `json:"companies_file"`

	// OrganizationsFile is the organizations snapshot file name
	OrganizationsFile string `json:"organizations_file"`

	// SubscriptionItemsFile is the subscription items snapshot file name
	SubscriptionItemsFile string `json:"subscription_items_file"`

	// CouponsFile is the coupons snapshot file name
	CouponsFile string `json:"coupons_file"`

	// PricesFile is the prices snapshot file name
	PricesFile string `json:"prices_file"`

	// ProductsFile is the products snapshot file name
	ProductsFile string `json:"products_file"`
}

// CatalogConfig selects and tunes the plan catalog
type CatalogConfig struct {
	// Revision is the built-in catalog revision name
	Revision string `json:"revision"`

	// File optionally overrides the built-in revision with an HCL catalog file
	File string `json:"file,omitempty"`

	// EnforceSubAccountLimit filters tiers by their sub-account ceiling
	EnforceSubAccountLimit bool `json:"enforce_sub_account_limit"`

	// StrictTieBreak breaks equal-cost ties by tier name instead of catalog order
	StrictTieBreak bool `json:"strict_tie_break"`
}

// CreditsConfig tunes the resource requirement calculation
type CreditsConfig struct {
	// ModelFrequency scales the monthly multiplier by run frequency
	// instead of assuming one run per day
	ModelFrequency bool `json:"model_frequency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Path is the output CSV path
	Path string `json:"path"`

	// SchemaVersion selects the output column set
	SchemaVersion string `json:"schema_version"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Data: DataConfig{
			Dir:                   "data",
			CompaniesFile:         "processed_companies.json",
			OrganizationsFile:     "processed_organizations.json",
			SubscriptionItemsFile: "stripe_subscription_items.json",
			CouponsFile:           "stripe_coupons.json",
			PricesFile:            "stripe_prices.json",
			ProductsFile:          "stripe_products.json",
		},
		Catalog: CatalogConfig{
			Revision:               "2025-07",
			EnforceSubAccountLimit: true,
			StrictTieBreak:         false,
		},
		Credits: CreditsConfig{
			ModelFrequency: false,
		},
		Output: OutputConfig{
			Path:          filepath.Join("data", "migrate.csv"),
			SchemaVersion: "v2",
		},
		Workers: runtime.GOMAXPROCS(0),
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
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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
