package engine

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/smallfiles-bench/internal/charts"
	"github.com/daryltucker/smallfiles-bench/internal/config"
	"github.com/daryltucker/smallfiles-bench/internal/dataset"
	"github.com/daryltucker/smallfiles-bench/internal/output"
	"github.com/daryltucker/smallfiles-bench/internal/textgen"
)

const resultsCSV = `Tool,Operation,Trial,Time(s),Max Memory(KB)
cp,copy,1,0:01.00,2000
cp,copy,2,3.0,4000
io_uring_rsync,copy,1,0.50,900
io_uring_rsync,copy,2,0:00.70,1100
mv,move,1,garbage,100
`

// quietLogs captures log output for the duration of the test.
func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := output.Logger
	var buf bytes.Buffer
	output.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { output.SetLogger(prev) })
	return &buf
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "results_small_files_raw.csv")
	require.NoError(t, os.WriteFile(input, []byte(resultsCSV), 0o644))

	cfg := config.DefaultConfig()
	cfg.Plot.InputPath = input
	cfg.Plot.OutputDir = filepath.Join(dir, "charts")
	cfg.Generate.OutputPath = filepath.Join(dir, "out", "large_random_text.txt")
	return cfg
}

func TestGenerate(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	cfg.Generate.TotalSize = 25*config.KiB + 3
	cfg.Generate.ChunkSize = 10 * config.KiB
	seed := uint64(11)
	cfg.Generate.Seed = &seed

	require.NoError(t, Generate(cfg))

	data, err := os.ReadFile(cfg.Generate.OutputPath)
	require.NoError(t, err)
	assert.Len(t, data, 25*1024+3)
	assert.Empty(t, strings.Trim(string(data), textgen.Alphabet))

	// same seed, same file
	first := data
	require.NoError(t, Generate(cfg))
	data, err = os.ReadFile(cfg.Generate.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, first, data)
}

func TestReport(t *testing.T) {
	logs := quietLogs(t)
	cfg := testConfig(t)
	cfg.Plot.SummaryCSV = filepath.Join(t.TempDir(), "summary.csv")
	cfg.Plot.SummaryJSON = filepath.Join(t.TempDir(), "summary.jsonl")

	var stdout bytes.Buffer
	require.NoError(t, Report(cfg, &stdout))

	for _, name := range []string{charts.AverageTime, charts.TimeDistribution, charts.MaxMemoryUsage, charts.TimePerTrial} {
		assert.FileExists(t, filepath.Join(cfg.Plot.OutputDir, name+".png"))
	}

	assert.Contains(t, stdout.String(), "io_uring_rsync")
	assert.NotContains(t, stdout.String(), "mv", "dropped row must not produce a group")
	assert.Contains(t, logs.String(), "Error parsing time")
	assert.Contains(t, logs.String(), "garbage")

	f, err := os.Open(cfg.Plot.SummaryCSV)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"cp", "copy", "2", "2", "1.4142135623730951", "1", "3", "3000"}, records[1])

	lines, err := os.ReadFile(cfg.Plot.SummaryJSON)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(lines, []byte("\n")))
}

func TestReportWithoutSaving(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	cfg.Plot.Save = false

	require.NoError(t, Report(cfg, io.Discard))
	assert.NoDirExists(t, cfg.Plot.OutputDir)
}

func TestReportSVG(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	cfg.Plot.Format = "SVG"

	require.NoError(t, Report(cfg, io.Discard))
	assert.FileExists(t, filepath.Join(cfg.Plot.OutputDir, charts.TimePerTrial+".svg"))
}

func TestSummarizeDoesNotChart(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)

	var stdout bytes.Buffer
	require.NoError(t, Summarize(cfg, &stdout))
	assert.Contains(t, stdout.String(), "cp")
	assert.NoDirExists(t, cfg.Plot.OutputDir)
}

func TestReportMissingColumns(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	cfg.Plot.Columns.MaxMemory = "Peak RSS"

	err := Report(cfg, io.Discard)
	assert.ErrorIs(t, err, dataset.ErrMissingColumns)
}

func TestReportAllRowsDropped(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	data := "Tool,Operation,Trial,Time(s),Max Memory(KB)\ncp,copy,1,abc,1\n"
	require.NoError(t, os.WriteFile(cfg.Plot.InputPath, []byte(data), 0o644))

	err := Report(cfg, io.Discard)
	assert.ErrorIs(t, err, ErrNoMeasurements)
}

func TestReportMissingInput(t *testing.T) {
	quietLogs(t)
	cfg := testConfig(t)
	cfg.Plot.InputPath = filepath.Join(t.TempDir(), "nope.csv")
	assert.Error(t, Report(cfg, io.Discard))
}

func TestSchemaTrimsNames(t *testing.T) {
	s := Schema(config.ColumnsConfig{Tool: " Tool ", Operation: "Operation", Trial: "Trial", Time: "Time(s) ", MaxMemory: "Max Memory(KB)"})
	assert.Equal(t, dataset.DefaultSchema(), s)
}
