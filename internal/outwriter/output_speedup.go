package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/huangsam/benchplot/core"
	"github.com/huangsam/benchplot/internal/contract"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// SpeedupReport is a speedup result with the baseline it was measured against.
type SpeedupReport struct {
	Baseline string
	Unit     string // Unit of the Baseline and Comparison columns
	Result   core.SpeedupResult
}

// BuildSpeedupReport scales the baseline and comparison means of result into
// one unit picked by formatter for the largest raw mean. Ratios are unitless
// and left alone. The result's points are copied, not modified.
func BuildSpeedupReport(baseline string, result core.SpeedupResult, formatter contract.ValueFormatter) SpeedupReport {
	scaled := core.SpeedupResult{
		Points:  slices.Clone(result.Points),
		MaxMean: result.MaxMean,
	}
	report := SpeedupReport{Baseline: baseline, Result: scaled}
	if formatter == nil {
		return report
	}

	means := make([]float64, 0, 2*len(scaled.Points))
	for _, p := range scaled.Points {
		means = append(means, p.Baseline, p.Comparison)
	}
	report.Unit = formatter.ScaleValues(result.MaxMean, means)
	for i := range scaled.Points {
		scaled.Points[i].Baseline = means[2*i]
		scaled.Points[i].Comparison = means[2*i+1]
	}
	return report
}

// speedupJSON is one point of the JSON speedup report.
type speedupJSON struct {
	Parameter  uint64  `json:"parameter"`
	Baseline   float64 `json:"baseline"`
	Comparison float64 `json:"comparison"`
	Ratio      float64 `json:"ratio"`
	Label      string  `json:"label"`
}

// WriteSpeedupResults outputs a speedup report, dispatching on the extension of cfg.OutputFile.
// Means are printed as they appear in the result; the ratio is unitless.
func WriteSpeedupResults(report SpeedupReport, cfg *contract.Config) error {
	fmtFloat := createFormatter(summaryPrecision)

	switch outputKind(cfg.OutputFile) {
	case jsonOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONSpeedup(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case csvOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSpeedup(w, report, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSpeedupTable(w, report, fmtFloat, cfg.UseColors)
		}, "Wrote table")
	}
	return nil
}

func speedupLabel(ratio float64, useColors bool) string {
	if useColors {
		return contract.GetColorSpeedupLabel(ratio)
	}
	return contract.GetPlainSpeedupLabel(ratio)
}

// writeSpeedupTable generates and writes the human-readable table.
func writeSpeedupTable(w io.Writer, report SpeedupReport, fmtFloat func(float64) string, useColors bool) error {
	table := tablewriter.NewWriter(w)

	unit := ""
	if report.Unit != "" {
		unit = fmt.Sprintf(" (%s)", report.Unit)
	}
	table.Header([]string{"Parameter", "Baseline" + unit, "Comparison" + unit, "Ratio", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range report.Result.Points {
		data = append(data, []string{
			strconv.FormatUint(p.X, 10),
			fmtFloat(p.Baseline),
			fmtFloat(p.Comparison),
			fmtFloat(p.Ratio),
			speedupLabel(p.Ratio, useColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Speedup relative to %s across %d parameters\n", report.Baseline, len(report.Result.Points)); err != nil {
		return err
	}
	return nil
}

func writeCSVSpeedup(w io.Writer, report SpeedupReport, fmtFloat func(float64) string) error {
	header := []string{"parameter", "baseline", "comparison", "ratio", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range report.Result.Points {
			rec := []string{
				strconv.FormatUint(p.X, 10),
				fmtFloat(p.Baseline),
				fmtFloat(p.Comparison),
				fmtFloat(p.Ratio),
				contract.GetPlainSpeedupLabel(p.Ratio),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeJSONSpeedup(w io.Writer, report SpeedupReport) error {
	output := struct {
		Baseline string        `json:"baseline"`
		Unit     string        `json:"unit,omitempty"`
		MaxMean  float64       `json:"max_mean"`
		Points   []speedupJSON `json:"points"`
	}{
		Baseline: report.Baseline,
		Unit:     report.Unit,
		MaxMean:  report.Result.MaxMean,
		Points:   make([]speedupJSON, len(report.Result.Points)),
	}
	for i, p := range report.Result.Points {
		output.Points[i] = speedupJSON{
			Parameter:  p.X,
			Baseline:   p.Baseline,
			Comparison: p.Comparison,
			Ratio:      p.Ratio,
			Label:      contract.GetPlainSpeedupLabel(p.Ratio),
		}
	}
	return writeJSON(w, output)
}
