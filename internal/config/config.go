// =============================================================================
// Inventory Voucher Manager - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. All options have
// defaults, and a missing config file is not an error: the tool runs with
// defaults so a fresh checkout works without any setup.
//
// CONFIGURATION FILE (config.yaml):
//   company:
//     name: "CÔNG TY TNHH NAM PHÁT VIỆT NAM"
//     short_name: "NamPhat"
//     address: "KCN Tiên Sơn, Bắc Ninh, Việt Nam"
//     hotline: "09xx-xxx-xxx"
//   storage:
//     path: "./data/records.json"
//   export:
//     output_dir: "./exports"
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	// Company identifies the organization printed on vouchers and used in
	// export file names.
	Company CompanyConfig `yaml:"company"`

	// Storage configures the persistent record store.
	Storage StorageConfig `yaml:"storage"`

	// Export configures spreadsheet export output.
	Export ExportConfig `yaml:"export"`
}

// CompanyConfig identifies the organization on printed and exported vouchers.
type CompanyConfig struct {
	// Name is the full legal name printed on voucher headers.
	Name string `yaml:"name"`

	// ShortName is the compact name used as the prefix of export file names,
	// e.g. "NamPhat" in "NamPhat_Detail_24.03.001.xlsx".
	ShortName string `yaml:"short_name"`

	// Address appears on the printable voucher header.
	Address string `yaml:"address"`

	// Hotline appears on the printable voucher header.
	Hotline string `yaml:"hotline"`
}

// StorageConfig configures the persistent record store.
type StorageConfig struct {
	// Path is the JSON file holding the entire record collection.
	// The whole collection is rewritten on every mutation.
	Path string `yaml:"path"`
}

// ExportConfig configures spreadsheet export output.
type ExportConfig struct {
	// OutputDir is the directory where generated XLSX files are placed.
	OutputDir string `yaml:"output_dir"`
}

// Load reads the configuration from the given path. A missing file yields the
// default configuration; an unreadable or malformed file is an error.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.Company.Name == "" {
		config.Company.Name = "CÔNG TY TNHH NAM PHÁT VIỆT NAM"
	}
	if config.Company.ShortName == "" {
		config.Company.ShortName = "NamPhat"
	}
	if config.Company.Address == "" {
		config.Company.Address = "KCN Tiên Sơn, Bắc Ninh, Việt Nam"
	}
	if config.Storage.Path == "" {
		config.Storage.Path = "./data/records.json"
	}
	if config.Export.OutputDir == "" {
		config.Export.OutputDir = "./exports"
	}
}

// validate ensures the directories referenced by the configuration exist,
// creating them when absent.
func validate(config *Config) error {
	dirs := []string{
		filepath.Dir(config.Storage.Path),
		config.Export.OutputDir,
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
