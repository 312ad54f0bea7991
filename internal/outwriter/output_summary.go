package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/benchplot/internal/contract"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryPrecision is the number of decimals printed for scaled statistics.
const summaryPrecision = 3

// WriteSummaryResults outputs a summary, dispatching on the extension of cfg.OutputFile.
func WriteSummaryResults(summary Summary, cfg *contract.Config) error {
	fmtFloat := createFormatter(summaryPrecision)

	switch outputKind(cfg.OutputFile) {
	case jsonOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case csvOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSummary(w, summary, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, fmtFloat, GetMaxTitleWidth(cfg))
		}, "Wrote table")
	}
	return nil
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(w io.Writer, summary Summary, fmtFloat func(float64) string, titleWidth int) error {
	table := tablewriter.NewWriter(w)

	unit := fmt.Sprintf(" (%s)", summary.Unit)
	table.Header([]string{
		"Benchmark", "Parameter", "Samples",
		"Mean" + unit, "StdDev" + unit, "Median" + unit, "Min" + unit, "Max" + unit,
	})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range summary.Rows {
		data = append(data, []string{
			contract.TruncateTitle(r.Title, titleWidth),
			r.Parameter,
			strconv.Itoa(r.Samples),
			fmtFloat(r.Mean),
			fmtFloat(r.StdDev),
			fmtFloat(r.Median),
			fmtFloat(r.Min),
			fmtFloat(r.Max),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Summarized %d curves from %s\n", len(summary.Rows), summary.Title); err != nil {
		return err
	}
	return nil
}

// writeCSVSummary writes one record per curve. Statistics are already scaled.
func writeCSVSummary(w io.Writer, summary Summary, fmtFloat func(float64) string) error {
	header := []string{
		"title",
		"function",
		"parameter",
		"samples",
		"mean",
		"stddev",
		"median",
		"min",
		"max",
		"unit",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range summary.Rows {
			rec := []string{
				r.Title,
				r.Function,
				r.Parameter,
				strconv.Itoa(r.Samples),
				fmtFloat(r.Mean),
				fmtFloat(r.StdDev),
				fmtFloat(r.Median),
				fmtFloat(r.Min),
				fmtFloat(r.Max),
				r.Unit,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
