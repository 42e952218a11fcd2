// Package config loads lrisplit settings from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/JF-WK/wk-compta/pkg/lrisplit"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable.
const EnvPrefix = "LRISPLIT"

// DefaultInput is the master reservation workbook.
const DefaultInput = "data_in/fichiers_sources/LRI jeremy enrichi.xlsx"

// Config represents the complete tool configuration
type Config struct {
	Input   string        `yaml:"input" envconfig:"INPUT" validate:"required"`
	Output  string        `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Layout  LayoutConfig  `yaml:"layout" envconfig:"LAYOUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=text json"`
}

// LayoutConfig names the columns and sheets of the report
type LayoutConfig struct {
	DateColumn     string   `yaml:"date_column" envconfig:"DATE_COLUMN" validate:"required"`
	CountColumn    string   `yaml:"count_column" envconfig:"COUNT_COLUMN" validate:"required"`
	GlobalSheet    string   `yaml:"global_sheet" envconfig:"GLOBAL_SHEET" validate:"required,max=31"`
	NumericColumns []string `yaml:"numeric_columns" envconfig:"NUMERIC_COLUMNS"`
	MonthNames     []string `yaml:"month_names" envconfig:"MONTH_NAMES" validate:"len=12,dive,required,max=28"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := lrisplit.DefaultOptions()
	return Config{
		Input: DefaultInput,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Layout: LayoutConfig{
			DateColumn:     opts.DateColumn,
			CountColumn:    opts.CountColumn,
			GlobalSheet:    opts.GlobalSheet,
			NumericColumns: opts.NumericColumns,
			MonthNames:     opts.MonthNames[:],
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path if
// path is not empty, then environment variables. The result is not
// validated so that command-line flags can still override it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys absent from the file
// keep their current value.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Options converts the layout into pipeline options.
func (c *Config) Options() lrisplit.Options {
	opts := lrisplit.Options{
		DateColumn:     c.Layout.DateColumn,
		CountColumn:    c.Layout.CountColumn,
		GlobalSheet:    c.Layout.GlobalSheet,
		NumericColumns: append([]string(nil), c.Layout.NumericColumns...),
		Output:         c.Output,
	}
	copy(opts.MonthNames[:], c.Layout.MonthNames)
	return opts
}
