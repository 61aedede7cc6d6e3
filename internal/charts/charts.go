/*
PURPOSE:
  Renders the four benchmark comparison charts with gonum/plot:
  average time (bar), time distribution (box), average max memory (bar),
  and time per trial (line).

REQUIREMENTS:
  User-specified:
  - Bars and boxes grouped per Tool, one series per Operation.
  - Line chart uses raw (non-aggregated) times, one line per
    (Tool, Operation), points ordered by Trial.
  - Saving charts is an explicit option (see Save).

  Implementation-discovered:
  - gonum/plot has no hue grouping; grouped bars/boxes are separate
    plotters shifted with Offset around each category tick.
  - Brewer palettes top out at 12 colors and start at 3, so colors cycle.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine.Report
  - Uses: internal/stats for grouping

ERROR HANDLING:
  - ErrNoData when there is nothing to plot.
  - Plotter construction and file errors are wrapped and returned.

USAGE:
  cs, err := charts.Build(measurements)
  for _, c := range cs { path, err := charts.Save(c, "charts", "png") }
*/

package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/daryltucker/smallfiles-bench/internal/model"
	"github.com/daryltucker/smallfiles-bench/internal/stats"
)

// Chart names, also used as output file base names.
const (
	AverageTime      = "average_time"
	TimeDistribution = "time_distribution"
	MaxMemoryUsage   = "max_memory_usage"
	TimePerTrial     = "time_per_trial"
)

// ErrNoData is returned when no measurements are left to plot.
var ErrNoData = errors.New("no measurements to plot")

// Chart is a rendered plot with its canvas size.
type Chart struct {
	Name   string
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length
}

// Build renders all four charts in order.
func Build(ms []model.Measurement) ([]Chart, error) {
	if len(ms) == 0 {
		return nil, ErrNoData
	}
	aggs := stats.Aggregate(ms)
	groups := stats.Series(ms)

	builders := []func() (Chart, error){
		func() (Chart, error) { return AverageTimeChart(aggs) },
		func() (Chart, error) { return TimeDistributionChart(groups) },
		func() (Chart, error) { return MaxMemoryChart(aggs) },
		func() (Chart, error) { return TimePerTrialChart(groups) },
	}

	out := make([]Chart, 0, len(builders))
	for _, build := range builders {
		c, err := build()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AverageTimeChart is a grouped bar chart of mean Time per Tool.
func AverageTimeChart(aggs []model.Aggregate) (Chart, error) {
	c := newChart(AverageTime, 10, 6)
	p := c.Plot
	p.Title.Text = "Average Time (s) for Each Tool and Operation"
	p.X.Label.Text = "Tool"
	p.Y.Label.Text = "Average Time (s)"

	err := groupedBars(c, aggs, func(a model.Aggregate) float64 { return a.TimeMean })
	return c, err
}

// MaxMemoryChart is a grouped bar chart of mean Max Memory per Tool.
func MaxMemoryChart(aggs []model.Aggregate) (Chart, error) {
	c := newChart(MaxMemoryUsage, 10, 6)
	p := c.Plot
	p.Title.Text = "Average Max Memory Usage for Each Tool and Operation"
	p.X.Label.Text = "Tool"
	p.Y.Label.Text = "Max Memory (KB)"

	err := groupedBars(c, aggs, func(a model.Aggregate) float64 { return a.MaxMemoryMean })
	return c, err
}

// TimeDistributionChart is a box chart of Time per Tool, grouped by Operation.
func TimeDistributionChart(groups []stats.Group) (Chart, error) {
	c := newChart(TimeDistribution, 10, 6)
	p := c.Plot
	p.Title.Text = "Time Distribution for Each Tool and Operation"
	p.X.Label.Text = "Tool"
	p.Y.Label.Text = "Time (s)"
	if len(groups) == 0 {
		return c, ErrNoData
	}

	tools, ops := stats.Tools(groups), stats.Operations(groups)
	colors, err := seriesColors(len(ops))
	if err != nil {
		return c, err
	}
	width := slotWidth(c.Width, len(tools), len(ops))

	for _, g := range groups {
		ti, oi := slices.Index(tools, g.Key.Tool), slices.Index(ops, g.Key.Operation)
		box, err := plotter.NewBoxPlot(width, float64(ti), plotter.Values(g.Times()))
		if err != nil {
			return c, fmt.Errorf("box for %s: %w", g.Key, err)
		}
		box.Offset = groupOffset(width, oi, len(ops))
		box.FillColor = colors[oi]
		p.Add(box)
	}
	for i, op := range ops {
		p.Legend.Add(op, swatch{colors[i]})
	}

	categoryAxis(p, tools)
	return c, nil
}

// TimePerTrialChart draws raw Time against Trial, one line per (Tool, Operation).
func TimePerTrialChart(groups []stats.Group) (Chart, error) {
	c := newChart(TimePerTrial, 12, 6)
	p := c.Plot
	p.Title.Text = "Time per Trial for Each Tool and Operation"
	p.X.Label.Text = "Trial"
	p.Y.Label.Text = "Time (s)"
	if len(groups) == 0 {
		return c, ErrNoData
	}

	colors, err := seriesColors(len(groups))
	if err != nil {
		return c, err
	}

	for i, g := range groups {
		pts := make(plotter.XYs, len(g.Measurements))
		for j, m := range g.Measurements {
			pts[j].X = float64(m.Trial)
			pts[j].Y = m.Time
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return c, fmt.Errorf("line for %s: %w", g.Key, err)
		}
		line.LineStyle.Color = colors[i]
		line.LineStyle.Width = vg.Points(1.5)
		points.GlyphStyle.Color = colors[i]
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(g.Key.String(), line, points)
	}

	return c, nil
}

// Save writes c to dir/<name>.<format> and returns the path.
func Save(c Chart, dir, format string) (string, error) {
	path := filepath.Join(dir, c.Name+"."+format)
	if err := c.Plot.Save(c.Width, c.Height, path); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", c.Name, err)
	}
	return path, nil
}

func newChart(name string, widthIn, heightIn float64) Chart {
	p := plot.New()
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return Chart{
		Name:   name,
		Plot:   p,
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
	}
}

func groupedBars(c Chart, aggs []model.Aggregate, value func(model.Aggregate) float64) error {
	if len(aggs) == 0 {
		return ErrNoData
	}
	p := c.Plot

	tools, ops := stats.Tools(aggs), stats.Operations(aggs)
	colors, err := seriesColors(len(ops))
	if err != nil {
		return err
	}
	width := slotWidth(c.Width, len(tools), len(ops))

	for oi, op := range ops {
		vals := make(plotter.Values, len(tools))
		for _, a := range aggs {
			if a.Key.Operation == op {
				vals[slices.Index(tools, a.Key.Tool)] = value(a)
			}
		}

		bars, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return fmt.Errorf("bars for %s: %w", op, err)
		}
		bars.Color = colors[oi]
		bars.LineStyle.Width = 0
		bars.Offset = groupOffset(width, oi, len(ops))

		p.Add(bars)
		p.Legend.Add(op, bars)
	}

	categoryAxis(p, tools)
	return nil
}

// categoryAxis puts one rotated tick per tool at x = 0..n-1.
func categoryAxis(p *plot.Plot, tools []string) {
	ticks := make([]plot.Tick, len(tools))
	for i, t := range tools {
		ticks[i] = plot.Tick{Value: float64(i), Label: t}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Min = -0.5
	p.X.Max = float64(len(tools)) - 0.5
}

// slotWidth sizes one bar or box so a full group fills ~80% of a category slot.
func slotWidth(canvas vg.Length, tools, ops int) vg.Length {
	slot := canvas * 0.8 / vg.Length(max(tools, 1))
	w := slot * 0.8 / vg.Length(max(ops, 1))
	return min(w, vg.Points(40))
}

// groupOffset centers series i of n around the category tick.
func groupOffset(width vg.Length, i, n int) vg.Length {
	return width*vg.Length(i) - width*vg.Length(n-1)/2
}

func seriesColors(n int) ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", min(max(n, 3), 12))
	if err != nil {
		return nil, err
	}
	base := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, nil
}

// swatch is a filled legend thumbnail; box plots don't provide one.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}
