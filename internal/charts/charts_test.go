package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/daryltucker/smallfiles-bench/internal/model"
	"github.com/daryltucker/smallfiles-bench/internal/stats"
)

func sample() []model.Measurement {
	var ms []model.Measurement
	for trial := 1; trial <= 3; trial++ {
		ms = append(ms,
			model.Measurement{Tool: "cp", Operation: "copy", Trial: trial, Time: 1 + float64(trial)/10, MaxMemoryKB: 2000},
			model.Measurement{Tool: "cp", Operation: "delete", Trial: trial, Time: 0.2, MaxMemoryKB: 1500},
			model.Measurement{Tool: "io_uring_rsync", Operation: "copy", Trial: trial, Time: 0.5 * float64(trial), MaxMemoryKB: 9000},
		)
	}
	// a tool with only one operation leaves a gap in the grouped bars
	ms = append(ms, model.Measurement{Tool: "mv", Operation: "move", Trial: 1, Time: 0.01, MaxMemoryKB: 800})
	return ms
}

func TestBuild(t *testing.T) {
	cs, err := Build(sample())
	require.NoError(t, err)
	require.Len(t, cs, 4)

	wantNames := []string{AverageTime, TimeDistribution, MaxMemoryUsage, TimePerTrial}
	wantTitles := []string{
		"Average Time (s) for Each Tool and Operation",
		"Time Distribution for Each Tool and Operation",
		"Average Max Memory Usage for Each Tool and Operation",
		"Time per Trial for Each Tool and Operation",
	}
	for i, c := range cs {
		assert.Equal(t, wantNames[i], c.Name)
		assert.Equal(t, wantTitles[i], c.Plot.Title.Text)
		assert.Positive(t, c.Width)
		assert.Positive(t, c.Height)
	}
	assert.Equal(t, 12*vg.Inch, cs[3].Width)
}

func TestBuildCategoryAxis(t *testing.T) {
	c, err := AverageTimeChart(stats.Aggregate(sample()))
	require.NoError(t, err)

	ticks := c.Plot.X.Tick.Marker.Ticks(c.Plot.X.Min, c.Plot.X.Max)
	labels := make([]string, len(ticks))
	for i, tk := range ticks {
		labels[i] = tk.Label
	}
	assert.Equal(t, []string{"cp", "io_uring_rsync", "mv"}, labels)
	assert.Equal(t, -0.5, c.Plot.X.Min)
	assert.Equal(t, 2.5, c.Plot.X.Max)
}

func TestTimePerTrialUsesTrialAxis(t *testing.T) {
	c, err := TimePerTrialChart(stats.Series(sample()))
	require.NoError(t, err)
	assert.Equal(t, "Trial", c.Plot.X.Label.Text)
	assert.LessOrEqual(t, c.Plot.X.Min, 1.0)
	assert.GreaterOrEqual(t, c.Plot.X.Max, 3.0)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = AverageTimeChart(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = TimeDistributionChart(nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = TimePerTrialChart(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSave(t *testing.T) {
	cs, err := Build(sample())
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"png", "svg"} {
		for _, c := range cs {
			path, err := Save(c, dir, format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, c.Name+"."+format), path)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		}
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	cs, err := Build(sample())
	require.NoError(t, err)
	_, err = Save(cs[0], t.TempDir(), "bmp")
	assert.Error(t, err)
}

func TestSeriesColorsCycle(t *testing.T) {
	one, err := seriesColors(1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	many, err := seriesColors(15)
	require.NoError(t, err)
	require.Len(t, many, 15)
	assert.Equal(t, many[0], many[12])
}

func TestGroupOffsetIsCentered(t *testing.T) {
	w := vg.Points(10)
	assert.Equal(t, vg.Length(0), groupOffset(w, 0, 1))
	assert.Equal(t, -groupOffset(w, 0, 3), groupOffset(w, 2, 3))
	assert.Equal(t, vg.Length(0), groupOffset(w, 1, 3))
}
