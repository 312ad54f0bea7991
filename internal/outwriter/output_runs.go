package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRunsResults lists stored import runs, dispatching on the extension of cfg.OutputFile.
func WriteRunsResults(runs []schema.ImportRun, cfg *contract.Config) error {
	switch outputKind(cfg.OutputFile) {
	case jsonOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if runs == nil {
				runs = []schema.ImportRun{}
			}
			return writeJSON(w, runs)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case csvOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRuns(w, runs)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(w, runs, GetMaxTitleWidth(cfg))
		}, "Wrote table")
	}
	return nil
}

func writeRunsTable(w io.Writer, runs []schema.ImportRun, sourceWidth int) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs stored yet")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Run", "Source", "Imported", "Curves", "Rows"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		data = append(data, []string{
			strconv.FormatInt(r.ID, 10),
			contract.TruncateTitle(r.Source, sourceWidth),
			r.ImportedAt.Format(time.RFC3339),
			strconv.Itoa(r.Curves),
			strconv.Itoa(r.Rows),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeCSVRuns(w io.Writer, runs []schema.ImportRun) error {
	header := []string{"run_id", "source", "imported_at", "curves", "rows"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range runs {
			rec := []string{
				strconv.FormatInt(r.ID, 10),
				r.Source,
				r.ImportedAt.Format(time.RFC3339),
				strconv.Itoa(r.Curves),
				strconv.Itoa(r.Rows),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
