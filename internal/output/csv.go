/*
PURPOSE:
  Writes per-(Tool, Operation) aggregates to a CSV file.
  This is the persisted counterpart of the summary table printed by
  the plot and summarize commands.

REQUIREMENTS:
  User-specified:
  - Mean and standard deviation of Time, mean of Max Memory per group.

  Implementation-discovered:
  - Undefined standard deviation (single-row group) is written as an
    empty cell, the way pandas writes NaN.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Aggregate

ERROR HANDLING:
  - Returns error on file creation or write failure.

USAGE:
  w, err := output.NewCSVWriter("summary.csv")
  w.Write(agg)
  w.Close()
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/daryltucker/smallfiles-bench/internal/model"
)

// CSVHeader is the first row of every summary CSV.
var CSVHeader = []string{
	"tool", "operation", "count",
	"time_mean_s", "time_std_s", "time_min_s", "time_max_s",
	"max_memory_mean_kb",
}

// CSVWriter handles writing aggregates to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single aggregate row.
func (cw *CSVWriter) Write(a model.Aggregate) error {
	std := ""
	if a.HasStdDev() {
		std = formatFloat(a.TimeStdDev)
	}

	record := []string{
		a.Key.Tool,
		a.Key.Operation,
		strconv.Itoa(a.Count),
		formatFloat(a.TimeMean),
		std,
		formatFloat(a.TimeMin),
		formatFloat(a.TimeMax),
		formatFloat(a.MaxMemoryMean),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close flushes pending rows and closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	if err := cw.writer.Error(); err != nil {
		cw.file.Close()
		return err
	}
	return cw.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
