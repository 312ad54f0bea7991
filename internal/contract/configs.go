package contract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/benchplot/schema"
)

// Default values for configuration.
const (
	DefaultOutputExt = ".svg"
	DefaultDBName    = ".benchplot.db"
)

// Config holds the runtime configuration for one plot command.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string
	InputFormat schema.InputFormat
	OutputFile  string
	Title       string

	ValueType schema.ValueType
	Unit      schema.UnitKind

	// Plot is handed to the comparison pipeline unchanged. The violin
	// pipeline reads only Plot.XScale.
	Plot schema.PlotConfiguration

	// Bandwidth overrides the KDE bandwidth when set.
	Bandwidth *float64

	DBPath string

	Width     int  // Terminal width override (0 = auto-detect)
	Verbose   bool // Enable debug logging
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Format    string  `mapstructure:"format"`
	Output    string  `mapstructure:"output"`
	Title     string  `mapstructure:"title"`
	ValueType string  `mapstructure:"value-type"`
	Unit      string  `mapstructure:"unit"`
	Color     string  `mapstructure:"color"`
	Verbose   bool    `mapstructure:"verbose"`
	Width     int     `mapstructure:"width"`
	DB        string  `mapstructure:"db"`
	Bandwidth float64 `mapstructure:"bandwidth"`

	// --- Fields from the plot flags ---
	XLabel     string `mapstructure:"x-label"`
	YLabel     string `mapstructure:"y-label"`
	Label      string `mapstructure:"label"`
	XScale     string `mapstructure:"x-scale"`
	YScale     string `mapstructure:"y-scale"`
	XGridMajor bool   `mapstructure:"x-grid-major"`
	XGridMinor bool   `mapstructure:"x-grid-minor"`
	YGridMajor bool   `mapstructure:"y-grid-major"`
	YGridMinor bool   `mapstructure:"y-grid-minor"`
	Tics       string `mapstructure:"tics"`
	Speedup    bool   `mapstructure:"speedup"`
	SpeedupID  string `mapstructure:"speedup-id"`
	Grouping   string `mapstructure:"grouping"`
}

// Clone creates a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Plot.Tics != nil {
		clone.Plot.Tics = append([]int64(nil), c.Plot.Tics...)
	}
	if c.Bandwidth != nil {
		bw := *c.Bandwidth
		clone.Bandwidth = &bw
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processInput(cfg, input); err != nil {
		return err
	}
	if err := processPlotConfiguration(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the non-plot fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = strings.TrimSpace(input.Output)
	cfg.Verbose = input.Verbose
	cfg.Width = input.Width
	cfg.DBPath = input.DB
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Value type and unit validation ---
	cfg.ValueType = schema.ValueType(strings.ToLower(input.ValueType))
	if cfg.ValueType == "" {
		cfg.ValueType = schema.AutoValue
	}
	if _, ok := schema.ValidValueTypes[cfg.ValueType]; !ok {
		return fmt.Errorf("invalid value type '%s'. must be auto, bytes, elements, value", input.ValueType)
	}

	cfg.Unit = schema.UnitKind(strings.ToLower(input.Unit))
	if cfg.Unit == "" {
		cfg.Unit = schema.DurationUnit
	}
	if _, ok := schema.ValidUnitKinds[cfg.Unit]; !ok {
		return fmt.Errorf("invalid unit '%s'. must be duration, decimal", input.Unit)
	}

	// --- 2. Bandwidth validation ---
	switch {
	case input.Bandwidth < 0:
		return fmt.Errorf("bandwidth must not be negative (received %g)", input.Bandwidth)
	case input.Bandwidth > 0:
		bw := input.Bandwidth
		cfg.Bandwidth = &bw
	default:
		cfg.Bandwidth = nil
	}

	if cfg.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", cfg.Width)
	}
	return nil
}

// processInput resolves the input path, its format and the default title.
func processInput(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = strings.TrimSpace(input.InputPathStr)

	format := schema.InputFormat(strings.ToLower(input.Format))
	if format == "" {
		format = schema.AutoFormat
	}
	if _, ok := schema.ValidInputFormats[format]; !ok {
		return fmt.Errorf("invalid format '%s'. must be auto, json, csv, parquet, sqlite", input.Format)
	}
	if format == schema.AutoFormat && cfg.InputPath != "" {
		detected, err := DetectFormat(cfg.InputPath)
		if err != nil {
			return err
		}
		format = detected
	}
	cfg.InputFormat = format

	cfg.Title = strings.TrimSpace(input.Title)
	if cfg.Title == "" && cfg.InputPath != "" {
		base := filepath.Base(cfg.InputPath)
		cfg.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return nil
}

// processPlotConfiguration builds the plot configuration bundle.
func processPlotConfiguration(cfg *Config, input *ConfigRawInput) error {
	plot := schema.DefaultPlotConfiguration()
	plot.XLabel = input.XLabel
	plot.YLabel = input.YLabel
	plot.Label = input.Label
	plot.XGridMajor = input.XGridMajor
	plot.XGridMinor = input.XGridMinor
	plot.YGridMajor = input.YGridMajor
	plot.YGridMinor = input.YGridMinor

	var err error
	if plot.XScale, err = ParseAxisScale(input.XScale); err != nil {
		return fmt.Errorf("invalid --x-scale: %w", err)
	}
	if plot.YScale, err = ParseAxisScale(input.YScale); err != nil {
		return fmt.Errorf("invalid --y-scale: %w", err)
	}

	if plot.Tics, err = ParseTics(input.Tics); err != nil {
		return fmt.Errorf("invalid --tics: %w", err)
	}

	if input.Grouping != "" {
		plot.Grouping = schema.GroupingMode(strings.ToLower(input.Grouping))
	}
	if _, ok := schema.ValidGroupingModes[plot.Grouping]; !ok {
		return fmt.Errorf("invalid grouping '%s'. must be runs, strict, partition", input.Grouping)
	}

	plot.Speedup = input.Speedup
	plot.SpeedupID = strings.TrimSpace(input.SpeedupID)
	if plot.Speedup && plot.SpeedupID == "" {
		return fmt.Errorf("must specify --speedup-id when --speedup is enabled")
	}

	cfg.Plot = plot
	return nil
}

// ParseAxisScale accepts linear, log and logarithmic (case-insensitive).
// An empty string means linear.
func ParseAxisScale(s string) (schema.AxisScale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear", "lin":
		return schema.LinearScale, nil
	case "log", "logarithmic":
		return schema.LogarithmicScale, nil
	default:
		return "", fmt.Errorf("unknown axis scale %q (expected linear/logarithmic)", s)
	}
}

// ParseTics parses a comma-separated list of non-negative byte positions.
func ParseTics(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var tics []int64
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tick %q is not an integer", part)
		}
		if v < 0 {
			return nil, fmt.Errorf("tick %d must not be negative", v)
		}
		tics = append(tics, v)
	}
	return tics, nil
}

// DetectFormat picks the input format from a file extension.
func DetectFormat(path string) (schema.InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schema.JSONFormat, nil
	case ".csv":
		return schema.CSVFormat, nil
	case ".parquet":
		return schema.ParquetFormat, nil
	case ".db", ".sqlite", ".sqlite3":
		return schema.SQLiteFormat, nil
	default:
		return "", fmt.Errorf("cannot detect input format of %q; pass --format", path)
	}
}

// DefaultOutputPath derives an output file name from the title and plot kind.
func DefaultOutputPath(cfg *Config, kind string) string {
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	name := cfg.Title
	if name == "" {
		name = "benchplot"
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("%s-%s%s", name, kind, DefaultOutputExt)
}
