package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rs8bits/ATLAS/core"
)

// DiskConfig describes one disk type in the catalog.
type DiskConfig struct {
	Name           string  `yaml:"name"`
	WriteOpsPerSec float64 `yaml:"write_ops_per_sec"`
	ReadOpsPerSec  float64 `yaml:"read_ops_per_sec"`
	PricePerGB     float64 `yaml:"price_per_gb"`
}

// ParametersConfig holds the system-wide cost parameters.
type ParametersConfig struct {
	ServerCost     float64 `yaml:"server_cost"`
	LogCapacityGB  float64 `yaml:"log_capacity_gb"`
	DataCapacityGB float64 `yaml:"data_capacity_gb"`
}

// WorkloadConfig holds the read-ratio axis of the evaluation.
type WorkloadConfig struct {
	// Ratios lists the read ratios to evaluate, each within [0, 1].
	Ratios []float64 `yaml:"ratios"`
	// RatioSteps, when positive, replaces Ratios with a uniform grid of
	// RatioSteps+1 points from 0 to 1 inclusive.
	RatioSteps int `yaml:"ratio_steps"`
}

// EvaluationConfig holds evaluation tuning knobs.
type EvaluationConfig struct {
	Parallelism int `yaml:"parallelism"`
}

// OutputConfig holds default output paths for reports and charts.
type OutputConfig struct {
	ResultsCSV string `yaml:"results_csv"`
	UCPRCSV    string `yaml:"ucpr_csv"`
	BestChart  string `yaml:"best_chart"`
	UCPRChart  string `yaml:"ucpr_chart"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // e.g., "debug", "info", "warn", "error"
	Output string `yaml:"output"` // e.g., "stdout", "file", "none"
	File   string `yaml:"file"`   // Path to the log file, used if output is "file"
}

// TracingConfig holds configuration for distributed tracing.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // e.g., "localhost:4317" for gRPC OTLP collector
	Protocol string `yaml:"protocol"` // "grpc" or "http"
}

// Config is the top-level configuration struct.
type Config struct {
	Disks      []DiskConfig     `yaml:"disks"`
	Parameters ParametersConfig `yaml:"parameters"`
	Workload   WorkloadConfig   `yaml:"workload"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// Load reads configuration from an io.Reader.
// This is the core logic, separated for testability.
func Load(r io.Reader) (*Config, error) {
	// Set default values. The default catalog and parameters describe a small
	// two-disk reference system, so the tool produces a meaningful evaluation
	// out of the box.
	cfg := &Config{
		Disks: []DiskConfig{
			{Name: "HDD", WriteOpsPerSec: 30000, ReadOpsPerSec: 81000, PricePerGB: 0.00049},
			{Name: "SSD", WriteOpsPerSec: 39900, ReadOpsPerSec: 89000, PricePerGB: 0.0042},
		},
		Parameters: ParametersConfig{
			ServerCost:     3.696,
			LogCapacityGB:  150,
			DataCapacityGB: 150,
		},
		Workload: WorkloadConfig{
			Ratios:     []float64{0.0, 0.5, 0.95, 1.0},
			RatioSteps: 0,
		},
		Evaluation: EvaluationConfig{
			Parallelism: 1,
		},
		Output: OutputConfig{
			ResultsCSV: "evaluation_all_configs.csv",
			UCPRCSV:    "",
			BestChart:  "best_cpr.html",
			UCPRChart:  "ucpr_ranking.html",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stdout",
			File:   "atlas.log",
		},
		Tracing: TracingConfig{
			Enabled:  false,
			Endpoint: "localhost:4317",
			Protocol: "grpc",
		},
	}

	// If the reader is nil, it's like an empty file, return defaults.
	if r == nil {
		return cfg, nil
	}

	// Read all data from the reader
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data: %w", err)
	}

	// If data is empty, return defaults.
	if len(data) == 0 {
		return cfg, nil
	}

	// Unmarshal YAML into the config struct, overwriting defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config yaml: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads configuration from a YAML file by path.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// If file doesn't exist, return default config by calling Load with a nil reader.
			return Load(nil)
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	return Load(file)
}

// DiskProfiles converts the configured catalog into planner inputs.
func (c *Config) DiskProfiles() []core.DiskProfile {
	profiles := make([]core.DiskProfile, len(c.Disks))
	for i, d := range c.Disks {
		profiles[i] = core.DiskProfile{
			Name:           d.Name,
			WriteOpsPerSec: d.WriteOpsPerSec,
			ReadOpsPerSec:  d.ReadOpsPerSec,
			PricePerGB:     d.PricePerGB,
		}
	}
	return profiles
}

// SystemParameters converts the configured parameters into planner inputs.
func (c *Config) SystemParameters() core.SystemParameters {
	return core.SystemParameters{
		ServerCost:     c.Parameters.ServerCost,
		LogCapacityGB:  c.Parameters.LogCapacityGB,
		DataCapacityGB: c.Parameters.DataCapacityGB,
	}
}

// ReadRatios returns the read-ratio axis to evaluate. A positive RatioSteps
// takes precedence over the explicit Ratios list.
func (c *Config) ReadRatios() []float64 {
	n := c.Workload.RatioSteps
	if n <= 0 {
		return c.Workload.Ratios
	}
	ratios := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		ratios[i] = float64(i) / float64(n)
	}
	return ratios
}
