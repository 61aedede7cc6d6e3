/*
PURPOSE:
  Loads a benchmark results CSV into model.Measurement values.
  The column layout is an explicit Schema checked against the header
  before any row is read.

REQUIREMENTS:
  User-specified:
  - Required columns: Tool, Operation, Trial, Time(s), Max Memory(KB).
  - Time may be plain seconds or minutes:seconds.
  - Rows with an unparsable Time are reported and dropped (non-fatal).
  - Missing file, unreadable CSV, or missing columns are fatal.

  Implementation-discovered:
  - Header names are trimmed and may carry a UTF-8 BOM (spreadsheet exports).
  - Trial and Max Memory failures are fatal: they indicate a broken file,
    not a single bad measurement.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: []model.Measurement
  - Logs via: internal/output.Logger

ERROR HANDLING:
  - ErrMissingColumns (wrapped) when the header lacks required columns.
  - Errors carry the CSV line number and column name.

USAGE:
  res, err := dataset.Load("results_small_files_raw.csv", dataset.DefaultSchema())
*/

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/smallfiles-bench/internal/model"
	"github.com/daryltucker/smallfiles-bench/internal/output"
)

// ErrMissingColumns is returned when the CSV header lacks a required column.
var ErrMissingColumns = errors.New("missing required columns")

// Schema names the header of each required column.
type Schema struct {
	Tool      string
	Operation string
	Trial     string
	Time      string
	MaxMemory string
}

// DefaultSchema matches the header written by the small-files benchmark scripts.
func DefaultSchema() Schema {
	return Schema{
		Tool:      "Tool",
		Operation: "Operation",
		Trial:     "Trial",
		Time:      "Time(s)",
		MaxMemory: "Max Memory(KB)",
	}
}

func (s Schema) columns() []string {
	return []string{s.Tool, s.Operation, s.Trial, s.Time, s.MaxMemory}
}

// DroppedRow is a row excluded because its Time could not be normalized.
type DroppedRow struct {
	Line  int
	Value string
	Err   error
}

// Result is the outcome of loading a dataset.
type Result struct {
	Measurements []model.Measurement
	Dropped      []DroppedRow
	Rows         int // data rows read, including dropped ones
}

// Load opens path and reads it with Read.
func Load(path string, schema Schema) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	res, err := Read(f, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return res, nil
}

// Read parses CSV data with a header row.
func Read(r io.Reader, schema Schema) (*Result, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty dataset: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := resolveColumns(header, schema)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		res.Rows++
		line, _ := cr.FieldPos(0)

		field := func(col string) string {
			return strings.TrimSpace(record[idx[col]])
		}

		rawTime := field(schema.Time)
		seconds, err := ParseTime(rawTime)
		if err != nil {
			output.Logger.Warn("Error parsing time", "value", rawTime, "line", line, "error", err)
			res.Dropped = append(res.Dropped, DroppedRow{Line: line, Value: rawTime, Err: err})
			continue
		}

		trial, err := strconv.Atoi(field(schema.Trial))
		if err != nil {
			return nil, fmt.Errorf("line %d: column %q: %w", line, schema.Trial, err)
		}
		mem, err := strconv.ParseFloat(field(schema.MaxMemory), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: column %q: %w", line, schema.MaxMemory, err)
		}

		res.Measurements = append(res.Measurements, model.Measurement{
			Tool:        field(schema.Tool),
			Operation:   field(schema.Operation),
			Trial:       trial,
			Time:        seconds,
			MaxMemoryKB: mem,
			Line:        line,
		})
	}

	return res, nil
}

// resolveColumns maps each required column name to its index in header.
func resolveColumns(header []string, schema Schema) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	idx := make(map[string]int, 5)
	var missing []string
	for _, col := range schema.columns() {
		i, ok := pos[col]
		if !ok {
			missing = append(missing, strconv.Quote(col))
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}
