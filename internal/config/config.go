// =============================================================================
// IMU CSV Splitter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the splitter runs without any configuration file at all.
//
// EXAMPLE (splitter.yaml):
//   acc_file_name: acc_data.csv
//   mag_file_name: mag_data.csv
//   log_level: info
//   report:
//     enabled: false
//     path: split_report.xlsx
//     preview_rows: 20   # 0 disables the preview
//
// The field separator is not configurable; it is always ", ".
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultAccFileName       = "acc_data.csv"
	DefaultMagFileName       = "mag_data.csv"
	DefaultLogLevel          = "info"
	DefaultReportPath        = "split_report.xlsx"
	DefaultReportPreviewRows = 20
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the splitter configuration.
type Config struct {
	// AccFileName is the accelerometer output file name. The file is always
	// created next to the input file.
	// Default: "acc_data.csv"
	AccFileName string `yaml:"acc_file_name"`

	// MagFileName is the magnetometer output file name.
	// Default: "mag_data.csv"
	MagFileName string `yaml:"mag_file_name"`

	// LogLevel controls the verbosity of diagnostics on stderr.
	// Valid values: "trace", "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Report configures the optional Excel summary workbook.
	Report ReportConfig `yaml:"report"`
}

// ReportConfig configures the run summary workbook.
type ReportConfig struct {
	// Enabled turns the report on without passing --report.
	Enabled bool `yaml:"enabled"`

	// Path is where the workbook is written. Relative paths resolve against
	// the input file's directory.
	// Default: "split_report.xlsx"
	Path string `yaml:"path"`

	// PreviewRows is the number of records copied to the Preview sheet.
	// Left unset it defaults to 20; an explicit 0 leaves the sheet with
	// only its header row.
	PreviewRows *int `yaml:"preview_rows"`
}

// Preview returns the effective preview row count.
func (r ReportConfig) Preview() int {
	if r.PreviewRows == nil {
		return DefaultReportPreviewRows
	}
	return *r.PreviewRows
}

// Rows returns a pointer to n, for setting PreviewRows in code.
func Rows(n int) *int {
	return &n
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration file at configPath. An empty path returns
// Default().
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.AccFileName == "" {
		cfg.AccFileName = DefaultAccFileName
	}
	if cfg.MagFileName == "" {
		cfg.MagFileName = DefaultMagFileName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Report.Path == "" {
		cfg.Report.Path = DefaultReportPath
	}
	if cfg.Report.PreviewRows == nil {
		cfg.Report.PreviewRows = Rows(DefaultReportPreviewRows)
	}
}

// Validate checks the configuration for values the splitter cannot use.
func (c *Config) Validate() error {
	for _, name := range []string{c.AccFileName, c.MagFileName} {
		if name != filepath.Base(name) {
			return fmt.Errorf("output file name %q must not contain a directory", name)
		}
	}
	if c.AccFileName == c.MagFileName {
		return fmt.Errorf("acc_file_name and mag_file_name must differ, both are %q", c.AccFileName)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if c.Report.Preview() < 0 {
		return fmt.Errorf("report.preview_rows must not be negative")
	}

	return nil
}
