/*
PURPOSE:
  Groups measurements by (Tool, Operation) and computes the summary
  statistics that drive the bar charts and summary tables.

REQUIREMENTS:
  User-specified:
  - Mean and standard deviation of Time, mean of Max Memory, per group.
  - Same input gives identical output.

  Implementation-discovered:
  - Standard deviation is the sample (n-1) estimator, NaN for one row,
    matching pandas.
  - Groups are sorted by Tool then Operation so charts and tables are stable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/charts
  - Dependencies: gonum.org/v1/gonum/stat, github.com/samber/lo

ERROR HANDLING:
  - None; an empty input yields no groups.
*/

package stats

import (
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/daryltucker/smallfiles-bench/internal/model"
)

// Group is the raw measurements of one (Tool, Operation) pair, ordered by Trial.
type Group struct {
	Key          model.GroupKey
	Measurements []model.Measurement
}

// GroupKey implements Keyed.
func (g Group) GroupKey() model.GroupKey { return g.Key }

// Times returns the normalized Time of every measurement in trial order.
func (g Group) Times() []float64 {
	return lo.Map(g.Measurements, func(m model.Measurement, _ int) float64 { return m.Time })
}

// Series groups measurements by key. Groups are sorted by Tool then
// Operation; within a group measurements are sorted by Trial, keeping input
// order for equal trials.
func Series(ms []model.Measurement) []Group {
	byKey := lo.GroupBy(ms, model.Measurement.Key)

	keys := lo.Keys(byKey)
	slices.SortFunc(keys, compareKeys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		rows := slices.Clone(byKey[k])
		slices.SortStableFunc(rows, func(a, b model.Measurement) int { return a.Trial - b.Trial })
		groups = append(groups, Group{Key: k, Measurements: rows})
	}
	return groups
}

// Aggregate computes per-group statistics.
func Aggregate(ms []model.Measurement) []model.Aggregate {
	groups := Series(ms)
	out := make([]model.Aggregate, 0, len(groups))
	for _, g := range groups {
		times := g.Times()
		mems := lo.Map(g.Measurements, func(m model.Measurement, _ int) float64 { return m.MaxMemoryKB })

		mean, std := stat.MeanStdDev(times, nil)
		if len(times) < 2 {
			std = math.NaN()
		}

		out = append(out, model.Aggregate{
			Key:           g.Key,
			Count:         len(times),
			TimeMean:      mean,
			TimeStdDev:    std,
			TimeMin:       floats.Min(times),
			TimeMax:       floats.Max(times),
			MaxMemoryMean: stat.Mean(mems, nil),
		})
	}
	return out
}

// Keyed is implemented by model.Aggregate and Group.
type Keyed interface {
	GroupKey() model.GroupKey
}

// Tools returns the distinct tools of items in order of appearance.
func Tools[T Keyed](items []T) []string {
	return lo.Uniq(lo.Map(items, func(it T, _ int) string { return it.GroupKey().Tool }))
}

// Operations returns the distinct operations of items, sorted.
func Operations[T Keyed](items []T) []string {
	ops := lo.Uniq(lo.Map(items, func(it T, _ int) string { return it.GroupKey().Operation }))
	slices.Sort(ops)
	return ops
}

func compareKeys(a, b model.GroupKey) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
