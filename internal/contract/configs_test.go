package contract

import (
	"testing"

	"github.com/huangsam/benchplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		InputPathStr: "results/sort.json",
		Color:        "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name: "valid minimal config",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.JSONFormat, cfg.InputFormat)
				assert.Equal(t, "sort", cfg.Title)
				assert.Equal(t, schema.AutoValue, cfg.ValueType)
				assert.Equal(t, schema.DurationUnit, cfg.Unit)
				assert.Equal(t, schema.LinearScale, cfg.Plot.XScale)
				assert.Equal(t, schema.RunsGrouping, cfg.Plot.Grouping)
				assert.Equal(t, DefaultDBName, cfg.DBPath)
				assert.Nil(t, cfg.Bandwidth)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name: "explicit plot options",
			mutate: func(in *ConfigRawInput) {
				in.XScale = "log"
				in.YScale = "Logarithmic"
				in.Tics = "1024, 2048"
				in.Speedup = true
				in.SpeedupID = " baseline "
				in.Grouping = "PARTITION"
				in.Title = "Sorting"
				in.Bandwidth = 0.5
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.LogarithmicScale, cfg.Plot.XScale)
				assert.Equal(t, schema.LogarithmicScale, cfg.Plot.YScale)
				assert.Equal(t, []int64{1024, 2048}, cfg.Plot.Tics)
				assert.True(t, cfg.Plot.Speedup)
				assert.Equal(t, "baseline", cfg.Plot.SpeedupID)
				assert.Equal(t, schema.PartitionGrouping, cfg.Plot.Grouping)
				assert.Equal(t, "Sorting", cfg.Title)
				require.NotNil(t, cfg.Bandwidth)
				assert.Equal(t, 0.5, *cfg.Bandwidth)
			},
		},
		{
			name:        "speedup without baseline",
			mutate:      func(in *ConfigRawInput) { in.Speedup = true },
			expectError: true,
		},
		{
			name:        "invalid axis scale",
			mutate:      func(in *ConfigRawInput) { in.XScale = "cubic" },
			expectError: true,
		},
		{
			name:        "invalid tics",
			mutate:      func(in *ConfigRawInput) { in.Tics = "1kb" },
			expectError: true,
		},
		{
			name:        "invalid grouping",
			mutate:      func(in *ConfigRawInput) { in.Grouping = "sorted" },
			expectError: true,
		},
		{
			name:        "invalid value type",
			mutate:      func(in *ConfigRawInput) { in.ValueType = "seconds" },
			expectError: true,
		},
		{
			name:        "invalid unit",
			mutate:      func(in *ConfigRawInput) { in.Unit = "furlongs" },
			expectError: true,
		},
		{
			name:        "negative bandwidth",
			mutate:      func(in *ConfigRawInput) { in.Bandwidth = -1 },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "sometimes" },
			expectError: true,
		},
		{
			name:        "undetectable format",
			mutate:      func(in *ConfigRawInput) { in.InputPathStr = "results.txt" },
			expectError: true,
		},
		{
			name: "explicit format skips detection",
			mutate: func(in *ConfigRawInput) {
				in.InputPathStr = "results.txt"
				in.Format = "csv"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.CSVFormat, cfg.InputFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.mutate != nil {
				tt.mutate(input)
			}
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    schema.InputFormat
		wantErr bool
	}{
		{"a.json", schema.JSONFormat, false},
		{"a.CSV", schema.CSVFormat, false},
		{"dir/a.parquet", schema.ParquetFormat, false},
		{"a.db", schema.SQLiteFormat, false},
		{"a.sqlite3", schema.SQLiteFormat, false},
		{"a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "custom.png", DefaultOutputPath(&Config{OutputFile: "custom.png"}, "violin"))
	assert.Equal(t, "sort_quick-violin.svg", DefaultOutputPath(&Config{Title: "sort/quick"}, "violin"))
	assert.Equal(t, "benchplot-comparison.svg", DefaultOutputPath(&Config{}, "comparison"))
}

func TestConfigClone(t *testing.T) {
	bw := 1.5
	cfg := &Config{Title: "x", Bandwidth: &bw}
	cfg.Plot.Tics = []int64{1, 2}

	clone := cfg.Clone()
	clone.Plot.Tics[0] = 99
	*clone.Bandwidth = 3

	assert.Equal(t, int64(1), cfg.Plot.Tics[0])
	assert.Equal(t, 1.5, *cfg.Bandwidth)
	assert.Equal(t, "x", clone.Title)
}

func TestParseAxisScale(t *testing.T) {
	s, err := ParseAxisScale("")
	require.NoError(t, err)
	assert.Equal(t, schema.LinearScale, s)

	s, err = ParseAxisScale("LOG")
	require.NoError(t, err)
	assert.Equal(t, schema.LogarithmicScale, s)

	_, err = ParseAxisScale("exp")
	assert.Error(t, err)
}
