package samples

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurves() []schema.Curve {
	return []schema.Curve{
		{ID: schema.BenchmarkID{GroupID: "sort", FunctionID: schema.StringPtr("quick"), ValueStr: schema.StringPtr("1024")}, Sample: []float64{100, 110.5}},
		{ID: schema.BenchmarkID{GroupID: "sort", FunctionID: schema.StringPtr("merge"), ValueStr: schema.StringPtr("1024")}, Sample: []float64{120}},
		{ID: schema.BenchmarkID{GroupID: "hash", Throughput: &schema.Throughput{Kind: schema.BytesThroughput, Count: 4096}, Title: "hash, 4k"}, Sample: []float64{7, 8}},
	}
}

func TestSaveAndLoad(t *testing.T) {
	for _, ext := range []string{".json", ".csv", ".parquet", ".db"} {
		t.Run(ext, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "samples"+ext)

			require.NoError(t, Save(ctx, path, testCurves()))

			curves, err := Load(ctx, path, schema.AutoFormat)
			require.NoError(t, err)
			assert.Equal(t, testCurves(), curves)
		})
	}
}

func TestLoadExplicitFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, WriteJSONFile(path, testCurves()))

	curves, err := Load(context.Background(), path, schema.JSONFormat)
	require.NoError(t, err)
	assert.Len(t, curves, 3)

	_, err = Load(context.Background(), path, schema.AutoFormat)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), schema.AutoFormat)
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	input := `[
		{"id": {"group": "sort", "function": "quick", "value": "8"}, "sample": [1, 2, 3]},
		{"id": {"group": "copy", "throughput": {"kind": "elements", "count": 16}}, "sample": [4]}
	]`

	curves, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, curves, 2)

	name, ok := curves[0].ID.Function()
	assert.True(t, ok)
	assert.Equal(t, "quick", name)
	assert.Equal(t, []float64{1, 2, 3}, curves[0].Sample)
	assert.Equal(t, &schema.Throughput{Kind: schema.ElementsThroughput, Count: 16}, curves[1].ID.Throughput)
}

func TestReadJSONUnknownField(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`[{"id": {"group": "x"}, "samples": [1]}]`))
	assert.Error(t, err)
}

func TestReadCSVWithoutCurveColumn(t *testing.T) {
	input := "group,function,value,measurement\n" +
		"sort,quick,8,1\n" +
		"sort,quick,8,2\n" +
		"sort,merge,8,3\n" +
		"sort,quick,8,4\n"

	curves, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, curves, 3)
	assert.Equal(t, []float64{1, 2}, curves[0].Sample)
	assert.Equal(t, []float64{3}, curves[1].Sample)
	assert.Equal(t, []float64{4}, curves[2].Sample)
	assert.Nil(t, curves[0].ID.Throughput)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no measurement column", "group,value\nsort,8\n"},
		{"bad measurement", "group,measurement\nsort,fast\n"},
		{"bad throughput count", "group,throughput_kind,throughput_count,measurement\nsort,bytes,many,1\n"},
		{"bad curve ordinal", "curve,group,measurement\nfirst,sort,1\n"},
		{"unknown throughput kind", "group,throughput_kind,throughput_count,measurement\nsort,bits,8,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testCurves()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[4], `"hash, 4k"`)
}

func TestWriteCSVEmptySample(t *testing.T) {
	curves := append(testCurves(), schema.Curve{ID: schema.BenchmarkID{GroupID: "idle"}})

	var buf bytes.Buffer
	err := WriteCSV(&buf, curves)
	assert.ErrorIs(t, err, schema.ErrCallerContract)
	assert.Zero(t, buf.Len())
}

func TestWriteJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteJSONFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
