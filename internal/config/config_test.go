package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JF-WK/wk-compta/pkg/lrisplit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Empty(t, cfg.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)

	opts := cfg.Options()
	assert.Equal(t, "Arrivée", opts.DateColumn)
	assert.Equal(t, "Réservation", opts.CountColumn)
	assert.Equal(t, "Global", opts.GlobalSheet)
	assert.Equal(t, lrisplit.DefaultNumericColumns, opts.NumericColumns)
	assert.Equal(t, lrisplit.DefaultMonthNames, opts.MonthNames)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrisplit.yaml")
	content := `input: data/master.xlsx
logging:
  level: debug
layout:
  numeric_columns:
    - Taxe
    - TOTAL TTC
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/master.xlsx", cfg.Input)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "keys absent from the file keep their default")
	assert.Equal(t, []string{"Taxe", "TOTAL TTC"}, cfg.Layout.NumericColumns)
	assert.Equal(t, "Arrivée", cfg.Layout.DateColumn)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrisplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: from-file.xlsx\n"), 0644))

	t.Setenv("LRISPLIT_INPUT", "from-env.xlsx")
	t.Setenv("LRISPLIT_LOGGING_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.xlsx", cfg.Input)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("LRISPLIT_LOGGING_LEVEL", "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Logging.Level)
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrisplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inptu: typo.xlsx\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty input", func(c *Config) { c.Input = "" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"eleven months", func(c *Config) { c.Layout.MonthNames = c.Layout.MonthNames[:11] }, true},
		{"blank month", func(c *Config) {
			names := append([]string(nil), c.Layout.MonthNames...)
			names[3] = ""
			c.Layout.MonthNames = names
		}, true},
		{"no date column", func(c *Config) { c.Layout.DateColumn = "" }, true},
		{"long global sheet", func(c *Config) { c.Layout.GlobalSheet = "a sheet name longer than excel allows" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
