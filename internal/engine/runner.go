/*
PURPOSE:
  High-level runner that orchestrates both utilities.
  Generate: config -> textgen -> file.
  Report:   CSV -> normalize -> aggregate -> summaries -> charts.

REQUIREMENTS:
  User-specified:
  - Generator writes a target-sized file in bounded chunks.
  - Plotter drops rows with unparsable Time, aggregates per
    (Tool, Operation), and renders four charts in order.
  - Chart saving is enabled unless explicitly turned off.

  Implementation-discovered:
  - The summary table / CSV / JSON Lines outputs are shared by the plot
    and summarize commands.
  - An input where every row was dropped is an error, not an empty report.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/textgen, internal/dataset, internal/stats,
    internal/charts, internal/output

ERROR HANDLING:
  - Every stage returns wrapped errors; the CLI turns them into exit code 1.
  - Per-row Time errors are logged by internal/dataset and never reach here.

USAGE:
  engine.Generate(cfg)
  engine.Report(cfg, os.Stdout)
*/

package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/smallfiles-bench/internal/charts"
	"github.com/daryltucker/smallfiles-bench/internal/config"
	"github.com/daryltucker/smallfiles-bench/internal/dataset"
	"github.com/daryltucker/smallfiles-bench/internal/model"
	"github.com/daryltucker/smallfiles-bench/internal/output"
	"github.com/daryltucker/smallfiles-bench/internal/stats"
	"github.com/daryltucker/smallfiles-bench/internal/textgen"
)

// ErrNoMeasurements is returned when no row survived Time normalization.
var ErrNoMeasurements = errors.New("no valid measurements in dataset")

// Generate writes the random text file described by cfg.Generate.
func Generate(cfg *config.Config) error {
	g := cfg.Generate

	if dir := filepath.Dir(g.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	var opts []textgen.Option
	if g.Seed != nil {
		opts = append(opts, textgen.WithSeed(*g.Seed))
	}

	output.Logger.Info("Generating random text",
		"path", g.OutputPath,
		"size", g.TotalSize.String(),
		"chunk", g.ChunkSize.String(),
	)

	n, err := textgen.New(opts...).WriteFile(g.OutputPath, g.TotalSize.Int64(), g.ChunkSize.Int64())
	if err != nil {
		return err
	}

	chunks := (n + g.ChunkSize.Int64() - 1) / g.ChunkSize.Int64()
	output.Logger.Info("Generated file", "path", g.OutputPath, "bytes", n, "chunks", chunks)
	return nil
}

// Report loads the dataset, prints and writes the summaries, and renders the charts.
func Report(cfg *config.Config, stdout io.Writer) error {
	ms, aggs, err := summarize(cfg, stdout)
	if err != nil {
		return err
	}

	cs, err := charts.Build(ms)
	if err != nil {
		return fmt.Errorf("failed to build charts: %w", err)
	}

	p := cfg.Plot
	if !p.Save {
		output.Logger.Info("Chart saving disabled", "charts", len(cs))
		return nil
	}

	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create chart directory %s: %w", p.OutputDir, err)
	}
	format := strings.ToLower(p.Format)
	for _, c := range cs {
		path, err := charts.Save(c, p.OutputDir, format)
		if err != nil {
			return err
		}
		output.Logger.Info("Saved chart", "name", c.Name, "path", path)
	}

	output.Logger.Info("Report complete", "groups", len(aggs), "charts", len(cs))
	return nil
}

// Summarize loads the dataset and prints and writes the summaries without charting.
func Summarize(cfg *config.Config, stdout io.Writer) error {
	_, _, err := summarize(cfg, stdout)
	return err
}

// Schema converts the configured column names into a dataset.Schema.
func Schema(cols config.ColumnsConfig) dataset.Schema {
	return dataset.Schema{
		Tool:      strings.TrimSpace(cols.Tool),
		Operation: strings.TrimSpace(cols.Operation),
		Trial:     strings.TrimSpace(cols.Trial),
		Time:      strings.TrimSpace(cols.Time),
		MaxMemory: strings.TrimSpace(cols.MaxMemory),
	}
}

func summarize(cfg *config.Config, stdout io.Writer) ([]model.Measurement, []model.Aggregate, error) {
	p := cfg.Plot

	output.Logger.Info("Loading dataset", "path", p.InputPath)
	res, err := dataset.Load(p.InputPath, Schema(p.Columns))
	if err != nil {
		return nil, nil, err
	}
	output.Logger.Info("Loaded dataset",
		"rows", res.Rows,
		"valid", len(res.Measurements),
		"dropped", len(res.Dropped),
	)
	if len(res.Measurements) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", p.InputPath, ErrNoMeasurements)
	}

	aggs := stats.Aggregate(res.Measurements)
	fmt.Fprintln(stdout, output.SummaryTable(aggs))

	if err := writeSummaries(p, aggs); err != nil {
		return nil, nil, err
	}
	return res.Measurements, aggs, nil
}

func writeSummaries(p config.PlotConfig, aggs []model.Aggregate) error {
	if p.SummaryCSV != "" {
		w, err := output.NewCSVWriter(p.SummaryCSV)
		if err != nil {
			return fmt.Errorf("failed to init CSV writer at %s: %w", p.SummaryCSV, err)
		}
		for _, a := range aggs {
			if err := w.Write(a); err != nil {
				w.Close()
				return fmt.Errorf("failed to write summary CSV: %w", err)
			}
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to close summary CSV: %w", err)
		}
		output.Logger.Info("Wrote summary", "path", p.SummaryCSV, "format", "csv")
	}

	if p.SummaryJSON != "" {
		w, err := output.NewJSONWriter(p.SummaryJSON)
		if err != nil {
			return fmt.Errorf("failed to init JSON writer at %s: %w", p.SummaryJSON, err)
		}
		for _, a := range aggs {
			if err := w.Write(a); err != nil {
				w.Close()
				return fmt.Errorf("failed to write summary JSON: %w", err)
			}
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to close summary JSON: %w", err)
		}
		output.Logger.Info("Wrote summary", "path", p.SummaryJSON, "format", "jsonl")
	}
	return nil
}
