package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes one measurement run.
type Config struct {
	// Name labels the run in reports.
	Name string `yaml:"name" json:"name"`

	// Clock selects the timestamp source: "cycle" or "monotonic".
	Clock string `yaml:"clock" json:"clock"`

	// FrequencyMHz is the cycle counter's tick rate. Required for the
	// cycle source on architectures that cannot report their own rate.
	FrequencyMHz uint64 `yaml:"frequencyMhz" json:"frequencyMhz"`

	// Capacity is the sample buffer's element capacity. Zero means
	// derive it from Iterations.
	Capacity int `yaml:"capacity" json:"capacity"`

	// Warmup is the number of unmeasured iterations run before
	// sampling starts.
	Warmup int `yaml:"warmup" json:"warmup"`

	// Iterations is the number of measured iterations.
	Iterations int `yaml:"iterations" json:"iterations"`

	// Workload names the built-in operation to measure: "spin",
	// "alloc", "syscall", or "sleep".
	Workload string `yaml:"workload" json:"workload"`

	// Percentiles to report, each in [0,100).
	Percentiles []uint32 `yaml:"percentiles" json:"percentiles"`

	// Permicrotiles to report, each in (990000,1000000).
	Permicrotiles []uint32 `yaml:"permicrotiles" json:"permicrotiles"`

	// Output is an optional path for the JSON report.
	Output string `yaml:"output" json:"output"`
}

// DefaultConfig returns a runnable configuration: the portable
// monotonic clock, a spin workload, and the usual percentile set.
func DefaultConfig() *Config {
	return &Config{
		Name:          "sampler run",
		Clock:         "monotonic",
		Warmup:        100,
		Iterations:    10000,
		Workload:      "spin",
		Percentiles:   []uint32{50, 90, 99},
		Permicrotiles: []uint32{999000},
	}
}

// LoadConfig loads a run configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//
// Returns the parsed Config or an error if parsing fails.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data.
//
// The format is determined by the file extension in path, or defaults
// to YAML if the path is empty or has an unknown extension. Fields left
// unset keep their DefaultConfig values.
func ParseConfig(data []byte, path string) (*Config, error) {
	config := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	return config, nil
}
