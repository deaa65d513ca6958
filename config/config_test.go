package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	yamlContent := `
disks:
  - name: "NVMe"
    write_ops_per_sec: 120000
    read_ops_per_sec: 450000
    price_per_gb: 0.011
parameters:
  server_cost: 5.25
workload:
  ratios: [0.0, 1.0]
evaluation:
  parallelism: 4
`
	reader := strings.NewReader(yamlContent)
	cfg, err := Load(reader)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Check overridden values. A disks list in the file replaces the default
	// catalog wholesale.
	require.Len(t, cfg.Disks, 1)
	assert.Equal(t, "NVMe", cfg.Disks[0].Name)
	assert.Equal(t, 120000.0, cfg.Disks[0].WriteOpsPerSec)
	assert.Equal(t, 5.25, cfg.Parameters.ServerCost)
	assert.Equal(t, []float64{0.0, 1.0}, cfg.Workload.Ratios)
	assert.Equal(t, 4, cfg.Evaluation.Parallelism)

	// Check a default value that was not overridden
	assert.Equal(t, 150.0, cfg.Parameters.LogCapacityGB)
	assert.Equal(t, "evaluation_all_configs.csv", cfg.Output.ResultsCSV)
}

func TestLoad_PartialConfig(t *testing.T) {
	yamlContent := `
workload:
  ratio_steps: 20
`
	reader := strings.NewReader(yamlContent)
	cfg, err := Load(reader)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Check overridden value
	assert.Equal(t, 20, cfg.Workload.RatioSteps)
	// Check default values are still there
	require.Len(t, cfg.Disks, 2)
	assert.Equal(t, "HDD", cfg.Disks[0].Name)
	assert.Equal(t, "SSD", cfg.Disks[1].Name)
	assert.Equal(t, 3.696, cfg.Parameters.ServerCost)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EmptyReader(t *testing.T) {
	// Test with nil reader
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, []float64{0.0, 0.5, 0.95, 1.0}, cfg.Workload.Ratios)

	// Test with empty string reader
	reader := strings.NewReader("")
	cfg, err = Load(reader)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 3.696, cfg.Parameters.ServerCost)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
}

func TestLoad_InvalidYAML(t *testing.T) {
	yamlContent := `
parameters:
  server_cost: 5.25
workload:
  this: is: invalid: yaml
`
	reader := strings.NewReader(yamlContent)
	_, err := Load(reader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config yaml")
}

// TestLoadConfig_FileIntegration is a small integration test to ensure
// the LoadConfig function works correctly with the filesystem.
func TestLoadConfig_FileIntegration(t *testing.T) {
	t.Run("FileExists", func(t *testing.T) {
		yamlContent := `
parameters:
  server_cost: 9.99
`
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.yaml")
		err := os.WriteFile(configPath, []byte(yamlContent), 0644)
		require.NoError(t, err)

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 9.99, cfg.Parameters.ServerCost)
	})

	t.Run("FileDoesNotExist", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "non_existent_config.yaml")

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		// Should return default values
		assert.Equal(t, 3.696, cfg.Parameters.ServerCost)
	})
}

func TestDiskProfiles(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	profiles := cfg.DiskProfiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "HDD", profiles[0].Name)
	assert.Equal(t, 30000.0, profiles[0].WriteOpsPerSec)
	assert.Equal(t, 81000.0, profiles[0].ReadOpsPerSec)
	assert.Equal(t, 0.00049, profiles[0].PricePerGB)
	assert.Equal(t, "SSD", profiles[1].Name)
	for _, p := range profiles {
		assert.NoError(t, p.Validate())
	}
}

func TestSystemParameters(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	params := cfg.SystemParameters()
	assert.Equal(t, 3.696, params.ServerCost)
	assert.Equal(t, 150.0, params.LogCapacityGB)
	assert.Equal(t, 150.0, params.DataCapacityGB)
	assert.NoError(t, params.Validate())
}

func TestReadRatios(t *testing.T) {
	t.Run("ExplicitList", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.0, 0.5, 0.95, 1.0}, cfg.ReadRatios())
	})

	t.Run("UniformGrid", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("workload:\n  ratio_steps: 4\n"))
		require.NoError(t, err)

		ratios := cfg.ReadRatios()
		require.Len(t, ratios, 5)
		assert.Equal(t, 0.0, ratios[0])
		assert.Equal(t, 0.25, ratios[1])
		assert.Equal(t, 0.5, ratios[2])
		assert.Equal(t, 0.75, ratios[3])
		assert.Equal(t, 1.0, ratios[4])
	})

	t.Run("GridTakesPrecedence", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("workload:\n  ratios: [0.3]\n  ratio_steps: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, []float64{0.0, 0.5, 1.0}, cfg.ReadRatios())
	})
}
