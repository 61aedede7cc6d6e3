/*
PURPOSE:
  Defines the configuration structure and loading logic for smallfiles-bench.
  Replaces the hard-coded sizes and paths of the original scripts with
  explicit parameters.

REQUIREMENTS:
  User-specified:
  - Generator total size and chunk size are parameters, not globals.
  - Plotter input path and column names are an explicit contract.
  - Chart saving is an explicit, enabled option.

  Implementation-discovered:
  - Sizes are easier to write as "100MiB" than 104857600 (see ByteSize).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if a named config file is missing or invalid.
  - Missing default files fall back to DefaultConfig().
  - Validate() wraps ErrInvalidConfig.

USAGE:
  cfg, err := config.Load("smallfiles_bench.yaml")

RELATED FILES:
  - internal/config/size.go
  - internal/cli/root.go
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"smallfiles_bench.yaml", "bench.yaml"}

// Config represents the full configuration for smallfiles-bench.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Plot     PlotConfig     `yaml:"plot"`
}

// GenerateConfig controls the random text generator.
type GenerateConfig struct {
	OutputPath string   `yaml:"output_path"`
	TotalSize  ByteSize `yaml:"total_size"`
	ChunkSize  ByteSize `yaml:"chunk_size"`
	// Seed makes the output reproducible. Nil means a fresh random seed per run.
	Seed *uint64 `yaml:"seed"`
}

// PlotConfig controls loading, aggregation and chart output of the report plotter.
type PlotConfig struct {
	InputPath   string        `yaml:"input_path"`
	OutputDir   string        `yaml:"output_dir"`
	Format      string        `yaml:"format"`
	Save        bool          `yaml:"save"`
	SummaryCSV  string        `yaml:"summary_csv"`
	SummaryJSON string        `yaml:"summary_json"`
	Columns     ColumnsConfig `yaml:"columns"`
}

// ColumnsConfig names the CSV header of each required column.
type ColumnsConfig struct {
	Tool      string `yaml:"tool"`
	Operation string `yaml:"operation"`
	Trial     string `yaml:"trial"`
	Time      string `yaml:"time"`
	MaxMemory string `yaml:"max_memory"`
}

// ChartFormats are the file extensions the chart renderer can write.
var ChartFormats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			OutputPath: "large_random_text.txt",
			TotalSize:  100 * MiB,
			ChunkSize:  10 * KiB,
		},
		Plot: PlotConfig{
			InputPath: "results_small_files_raw.csv",
			OutputDir: "charts",
			Format:    "png",
			Save:      true,
			Columns: ColumnsConfig{
				Tool:      "Tool",
				Operation: "Operation",
				Trial:     "Trial",
				Time:      "Time(s)",
				MaxMemory: "Max Memory(KB)",
			},
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	g := c.Generate
	if g.OutputPath == "" {
		return fmt.Errorf("%w: generate.output_path is empty", ErrInvalidConfig)
	}
	if g.TotalSize <= 0 {
		return fmt.Errorf("%w: generate.total_size must be positive, got %d", ErrInvalidConfig, g.TotalSize)
	}
	if g.ChunkSize <= 0 {
		return fmt.Errorf("%w: generate.chunk_size must be positive, got %d", ErrInvalidConfig, g.ChunkSize)
	}

	p := c.Plot
	if p.InputPath == "" {
		return fmt.Errorf("%w: plot.input_path is empty", ErrInvalidConfig)
	}
	if p.Save && p.OutputDir == "" {
		return fmt.Errorf("%w: plot.output_dir is empty", ErrInvalidConfig)
	}
	if !isChartFormat(p.Format) {
		return fmt.Errorf("%w: plot.format %q is not one of %s", ErrInvalidConfig, p.Format, strings.Join(ChartFormats, ", "))
	}
	cols := map[string]string{
		"tool":       p.Columns.Tool,
		"operation":  p.Columns.Operation,
		"trial":      p.Columns.Trial,
		"time":       p.Columns.Time,
		"max_memory": p.Columns.MaxMemory,
	}
	for _, key := range []string{"tool", "operation", "trial", "time", "max_memory"} {
		if strings.TrimSpace(cols[key]) == "" {
			return fmt.Errorf("%w: plot.columns.%s is empty", ErrInvalidConfig, key)
		}
	}
	return nil
}

func isChartFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range ChartFormats {
		if f == format {
			return true
		}
	}
	return false
}
