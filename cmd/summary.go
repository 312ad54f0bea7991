package cmd

import (
	"context"

	"github.com/huangsam/benchplot/core"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/outwriter"
	"github.com/huangsam/benchplot/internal/samples"
	"github.com/huangsam/benchplot/internal/units"
	"github.com/spf13/cobra"
)

// summaryCmd prints per-curve statistics without drawing anything.
var summaryCmd = &cobra.Command{
	Use:   "summary <input>",
	Short: "Print sample statistics for every benchmark curve.",
	Long: `Print the sample count, mean, standard deviation, median and range of
every curve, scaled into one readable unit.

With --speedup a second table lists the baseline mean, comparison mean and
their ratio at each input parameter, labelled Faster, Even or Slower.

The output extension picks the format: .json and .csv write machine-readable
reports, anything else (or no --output) prints a table.

Examples:
  # Quick look at a result file
  benchplot summary results/sort.json

  # Speedup table for CI logs
  benchplot summary results/sort.json --speedup --speedup-id quick --color no`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runSummary(rootCtx, cfg.Clone()); err != nil {
			contract.LogFatal("Summary failed", err)
		}
	},
}

func runSummary(ctx context.Context, cfg *contract.Config) error {
	curves, err := samples.Load(ctx, cfg.InputPath, cfg.InputFormat)
	if err != nil {
		return err
	}
	formatter := units.ForKind(cfg.Unit)
	valueType := core.ResolveValueType(curves, cfg.ValueType)

	if !cfg.Plot.Speedup {
		return writer.WriteSummary(outwriter.BuildSummary(cfg.Title, curves, formatter, valueType), cfg)
	}

	groups, err := core.GroupCurves(curves, cfg.Plot.Grouping, logger)
	if err != nil {
		return err
	}
	result, err := core.Speedup(groups, cfg.Plot.SpeedupID)
	if err != nil {
		return err
	}
	return writer.WriteSpeedup(outwriter.BuildSpeedupReport(cfg.Plot.SpeedupID, result, formatter), cfg)
}
