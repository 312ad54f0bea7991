package outwriter

import (
	"slices"

	"github.com/aclements/go-moremath/stats"
	"github.com/huangsam/benchplot/core/algo"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/units"
	"github.com/huangsam/benchplot/schema"
)

// SummaryRow holds the descriptive statistics of one curve.
// Statistics are expressed in Unit after scaling.
type SummaryRow struct {
	Title     string  `json:"title"`
	Function  string  `json:"function,omitempty"`
	Parameter string  `json:"parameter"`
	Samples   int     `json:"samples"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"stddev"`
	Median    float64 `json:"median"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Unit      string  `json:"unit"`
}

// Summary is the statistics table for a curve set.
type Summary struct {
	Title string       `json:"title"`
	Unit  string       `json:"unit"`
	Rows  []SummaryRow `json:"rows"`
}

// BuildSummary computes per-curve statistics in input order. All rows share
// one unit, picked by formatter for the largest mean in the set.
func BuildSummary(title string, curves []schema.Curve, formatter contract.ValueFormatter, valueType schema.ValueType) Summary {
	if formatter == nil {
		formatter = units.DurationFormatter{}
	}
	typical := algo.MaxMean(curves)
	unit := formatter.ScaleValues(typical, []float64{1})

	rows := make([]SummaryRow, 0, len(curves))
	for _, c := range curves {
		row := SummaryRow{
			Title:     c.ID.DisplayTitle(),
			Parameter: formatParameter(c.ID, valueType),
			Samples:   len(c.Sample),
			Unit:      unit,
		}
		if name, ok := c.ID.Function(); ok {
			row.Function = name
		}
		if len(c.Sample) > 0 {
			sorted := stats.Sample{Xs: slices.Clone(c.Sample)}
			sorted.Sort()
			lo, hi := sorted.Bounds()
			values := []float64{sorted.Mean(), 0, sorted.Quantile(0.5), lo, hi}
			if len(c.Sample) > 1 {
				values[1] = sorted.StdDev()
			}
			formatter.ScaleValues(typical, values)
			row.Mean, row.StdDev, row.Median, row.Min, row.Max = values[0], values[1], values[2], values[3], values[4]
		}
		rows = append(rows, row)
	}
	return Summary{Title: title, Unit: unit, Rows: rows}
}

// formatParameter renders the input parameter the way plot axes label it.
func formatParameter(id schema.BenchmarkID, valueType schema.ValueType) string {
	x, err := id.AsNumber()
	if err != nil {
		if id.ValueStr != nil {
			return *id.ValueStr
		}
		return "-"
	}
	if valueType == schema.BytesValue {
		return algo.FormatBytes(int64(x))
	}
	return units.Humanize(x, valueType)
}
