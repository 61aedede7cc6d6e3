package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1:30", 90},
		{"45.5", 45.5},
		{"0:00.64", 0.64},
		{"2:05.5", 125.5},
		{" 12 ", 12},
		{"0", 0},
		{"1e1", 10},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseTimeErrors(t *testing.T) {
	for _, in := range []string{"abc", "", "  ", "1:2:3", "a:30", "1:b", ":", "NaN", "inf", "1:NaN"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTime(in)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func ExampleParseTime() {
	for _, s := range []string{"1:30", "45.5", "0:00.64"} {
		v, _ := ParseTime(s)
		fmt.Println(v)
	}
	// Output:
	// 90
	// 45.5
	// 0.64
}

const sampleCSV = `Tool,Operation,Trial,Time(s),Max Memory(KB)
cp,copy,1,0:00.64,2048
cp,copy,2,0.70,2052
rsync,copy,1,abc,4000
rsync,copy,2,1:30,4100
`

func TestRead(t *testing.T) {
	res, err := Read(strings.NewReader(sampleCSV), DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rows)
	require.Len(t, res.Measurements, 3)
	require.Len(t, res.Dropped, 1)

	first := res.Measurements[0]
	assert.Equal(t, "cp", first.Tool)
	assert.Equal(t, "copy", first.Operation)
	assert.Equal(t, 1, first.Trial)
	assert.InDelta(t, 0.64, first.Time, 1e-9)
	assert.Equal(t, 2048.0, first.MaxMemoryKB)
	assert.Equal(t, 2, first.Line)

	assert.InDelta(t, 90.0, res.Measurements[2].Time, 1e-9)

	dropped := res.Dropped[0]
	assert.Equal(t, "abc", dropped.Value)
	assert.Equal(t, 4, dropped.Line)
	assert.ErrorIs(t, dropped.Err, ErrInvalidTime)
}

func TestReadColumnOrderAndExtras(t *testing.T) {
	data := "\ufeffMax Memory(KB), Time(s) ,Host,Trial,Operation,Tool\n" +
		"512,3.5,box1,7,move,mv\n"
	res, err := Read(strings.NewReader(data), DefaultSchema())
	require.NoError(t, err)
	require.Len(t, res.Measurements, 1)

	m := res.Measurements[0]
	assert.Equal(t, "mv", m.Tool)
	assert.Equal(t, "move", m.Operation)
	assert.Equal(t, 7, m.Trial)
	assert.Equal(t, 3.5, m.Time)
	assert.Equal(t, 512.0, m.MaxMemoryKB)
}

func TestReadCustomSchema(t *testing.T) {
	schema := DefaultSchema()
	schema.Time = "Elapsed"
	data := "Tool,Operation,Trial,Elapsed,Max Memory(KB)\ncp,copy,1,2.5,10\n"

	res, err := Read(strings.NewReader(data), schema)
	require.NoError(t, err)
	require.Len(t, res.Measurements, 1)
	assert.Equal(t, 2.5, res.Measurements[0].Time)
}

func TestReadMissingColumns(t *testing.T) {
	data := "Tool,Trial,Time(s)\ncp,1,2\n"
	_, err := Read(strings.NewReader(data), DefaultSchema())
	require.ErrorIs(t, err, ErrMissingColumns)
	assert.Contains(t, err.Error(), `"Operation"`)
	assert.Contains(t, err.Error(), `"Max Memory(KB)"`)
}

func TestReadFatalErrors(t *testing.T) {
	header := "Tool,Operation,Trial,Time(s),Max Memory(KB)\n"
	tests := map[string]string{
		"empty":        "",
		"ragged row":   header + "cp,copy,1,2\n",
		"bad trial":    header + "cp,copy,first,2,10\n",
		"bad memory":   header + "cp,copy,1,2,lots\n",
		"bare quote":   header + "cp,co\"py,1,2,10\n",
		"empty memory": header + "cp,copy,1,2,\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(data), DefaultSchema())
			assert.Error(t, err)
		})
	}
}

func TestReadBadTrialNamesLine(t *testing.T) {
	data := "Tool,Operation,Trial,Time(s),Max Memory(KB)\ncp,copy,1,2,10\ncp,copy,x,2,10\n"
	_, err := Read(strings.NewReader(data), DefaultSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"Trial"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	res, err := Load(path, DefaultSchema())
	require.NoError(t, err)
	assert.Len(t, res.Measurements, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultSchema())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
