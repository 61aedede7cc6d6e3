/*
PURPOSE:
  Defines the core data structures shared by the report pipeline.
  These models represent raw benchmark measurements and their
  per-(Tool, Operation) aggregates.

REQUIREMENTS:
  User-specified:
  - One measurement per CSV row: Tool, Operation, Trial, Time, Max Memory.
  - Aggregate: mean and standard deviation of Time, mean of Max Memory.

  Implementation-discovered:
  - Keep the CSV line number so errors and dropped rows can be located.
  - Standard deviation is undefined for single-row groups (NaN).

ARCHITECTURE INTEGRATION:
  - Used by: internal/dataset, internal/stats, internal/charts, internal/output

ERROR HANDLING:
  - None (pure data structs).

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go
*/

package model

import (
	"fmt"
	"math"
)

// Measurement is a single benchmark row after Time normalization.
type Measurement struct {
	Tool        string  `json:"tool"`
	Operation   string  `json:"operation"`
	Trial       int     `json:"trial"`
	Time        float64 `json:"time_s"`
	MaxMemoryKB float64 `json:"max_memory_kb"`
	Line        int     `json:"line"` // 1-based line in the source CSV
}

// Key returns the grouping key of the measurement.
func (m Measurement) Key() GroupKey {
	return GroupKey{Tool: m.Tool, Operation: m.Operation}
}

// GroupKey identifies one (Tool, Operation) pair.
type GroupKey struct {
	Tool      string `json:"tool"`
	Operation string `json:"operation"`
}

// String renders the key as "Tool - Operation", the label used in charts.
func (k GroupKey) String() string {
	return fmt.Sprintf("%s - %s", k.Tool, k.Operation)
}

// Less orders keys by Tool, then Operation.
func (k GroupKey) Less(o GroupKey) bool {
	if k.Tool != o.Tool {
		return k.Tool < o.Tool
	}
	return k.Operation < o.Operation
}

// Aggregate holds the summary statistics of one (Tool, Operation) group.
type Aggregate struct {
	Key           GroupKey
	Count         int
	TimeMean      float64
	TimeStdDev    float64 // NaN when Count < 2
	TimeMin       float64
	TimeMax       float64
	MaxMemoryMean float64
}

// GroupKey returns the (Tool, Operation) pair the aggregate summarizes.
func (a Aggregate) GroupKey() GroupKey { return a.Key }

// HasStdDev reports whether TimeStdDev is defined.
func (a Aggregate) HasStdDev() bool {
	return !math.IsNaN(a.TimeStdDev)
}
