package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "monotonic", cfg.Clock)
	assert.Equal(t, "spin", cfg.Workload)
	assert.Greater(t, cfg.Iterations, 0)
}

func TestParseConfig_YAML(t *testing.T) {
	data := []byte(`
name: syscall latency
clock: cycle
frequencyMhz: 2400
iterations: 5000
warmup: 50
workload: syscall
percentiles: [50, 99]
permicrotiles: [999900]
output: report.json
`)

	cfg, err := ParseConfig(data, "run.yaml")
	require.NoError(t, err)

	assert.Equal(t, "syscall latency", cfg.Name)
	assert.Equal(t, "cycle", cfg.Clock)
	assert.Equal(t, uint64(2400), cfg.FrequencyMHz)
	assert.Equal(t, 5000, cfg.Iterations)
	assert.Equal(t, 50, cfg.Warmup)
	assert.Equal(t, "syscall", cfg.Workload)
	assert.Equal(t, []uint32{50, 99}, cfg.Percentiles)
	assert.Equal(t, []uint32{999900}, cfg.Permicrotiles)
	assert.Equal(t, "report.json", cfg.Output)
}

func TestParseConfig_JSON(t *testing.T) {
	data := []byte(`{"name":"j","clock":"monotonic","iterations":100,"workload":"sleep"}`)

	cfg, err := ParseConfig(data, "run.json")
	require.NoError(t, err)
	assert.Equal(t, "j", cfg.Name)
	assert.Equal(t, 100, cfg.Iterations)
	assert.Equal(t, "sleep", cfg.Workload)
}

func TestParseConfig_DefaultsPreserved(t *testing.T) {
	cfg, err := ParseConfig([]byte("name: partial\n"), "run.yaml")
	require.NoError(t, err)

	assert.Equal(t, "partial", cfg.Name)
	// Everything else keeps the defaults.
	assert.Equal(t, "monotonic", cfg.Clock)
	assert.Equal(t, "spin", cfg.Workload)
	assert.Equal(t, []uint32{50, 90, 99}, cfg.Percentiles)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := ParseConfig([]byte("{not yaml: [\n"), "run.yaml")
	assert.Error(t, err)

	_, err = ParseConfig([]byte("not json"), "run.json")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\niterations: 42\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 42, cfg.Iterations)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid default", func(c *Config) {}, ""},
		{"valid cycle", func(c *Config) { c.Clock = "cycle"; c.FrequencyMHz = 2400 }, ""},
		{"unknown clock", func(c *Config) { c.Clock = "wall" }, "clock"},
		{"empty clock", func(c *Config) { c.Clock = "" }, "clock"},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, "iterations"},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }, "warmup"},
		{"capacity too small", func(c *Config) { c.Capacity = 10; c.Iterations = 100 }, "capacity"},
		{"unknown workload", func(c *Config) { c.Workload = "fibonacci" }, "workload"},
		{"percentile 100", func(c *Config) { c.Percentiles = []uint32{100} }, "percentile"},
		{"permicrotile low", func(c *Config) { c.Permicrotiles = []uint32{990000} }, "permicrotile"},
		{"permicrotile high", func(c *Config) { c.Permicrotiles = []uint32{1000000} }, "permicrotile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clock = "wall"
	cfg.Iterations = 0
	cfg.Workload = "nope"

	err := cfg.Validate()
	require.Error(t, err)

	verrs, ok := err.(*ValidationErrors)
	require.True(t, ok)
	assert.Len(t, verrs.Errors, 3)
}
