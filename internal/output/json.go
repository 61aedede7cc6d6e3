/*
PURPOSE:
  Writes per-(Tool, Operation) aggregates to a JSON Lines file (NDJSON).

REQUIREMENTS:
  Implementation-discovered:
  - encoding/json rejects NaN, so an undefined standard deviation is
    encoded as null.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Aggregate

USAGE:
  w, err := output.NewJSONWriter("summary.jsonl")
  w.Write(agg)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/daryltucker/smallfiles-bench/internal/model"
)

// AggregateRecord is the JSON shape of one aggregate.
type AggregateRecord struct {
	Tool          string   `json:"tool"`
	Operation     string   `json:"operation"`
	Count         int      `json:"count"`
	TimeMean      float64  `json:"time_mean_s"`
	TimeStdDev    *float64 `json:"time_std_s"`
	TimeMin       float64  `json:"time_min_s"`
	TimeMax       float64  `json:"time_max_s"`
	MaxMemoryMean float64  `json:"max_memory_mean_kb"`
}

// NewAggregateRecord converts a model.Aggregate for encoding.
func NewAggregateRecord(a model.Aggregate) AggregateRecord {
	rec := AggregateRecord{
		Tool:          a.Key.Tool,
		Operation:     a.Key.Operation,
		Count:         a.Count,
		TimeMean:      a.TimeMean,
		TimeMin:       a.TimeMin,
		TimeMax:       a.TimeMax,
		MaxMemoryMean: a.MaxMemoryMean,
	}
	if a.HasStdDev() {
		std := a.TimeStdDev
		rec.TimeStdDev = &std
	}
	return rec
}

// JSONWriter handles writing aggregates to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single aggregate as a JSON line.
func (jw *JSONWriter) Write(a model.Aggregate) error {
	return jw.encoder.Encode(NewAggregateRecord(a))
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
