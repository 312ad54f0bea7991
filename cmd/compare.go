package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/benchplot/core"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/kde"
	"github.com/huangsam/benchplot/internal/render"
	"github.com/huangsam/benchplot/internal/samples"
	"github.com/huangsam/benchplot/internal/units"
	"github.com/spf13/cobra"
)

// compareCmd draws mean against input parameter per function.
var compareCmd = &cobra.Command{
	Use:   "compare <input>",
	Short: "Plot mean time against input parameter for each function.",
	Long: `Plot the mean of every curve against its input parameter, one line per function.

The input parameter is the throughput count when present, else the numeric
benchmark value. With --speedup the plot shows a single ratio line: the
baseline function's mean divided by the other function's mean at each
parameter.

The output extension picks the backend: .svg, .png and .pdf are drawn,
.json writes the plot description itself.

Examples:
  # Compare sort implementations, log-scaled input sizes
  benchplot compare results/sort.json --x-scale log --value-type bytes

  # Speedup of heap sort relative to quick sort
  benchplot compare results/sort.csv --speedup --speedup-id quick -o speedup.png`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runCompare(rootCtx, cfg.Clone()); err != nil {
			contract.LogFatal("Comparison plot failed", err)
		}
	},
}

func runCompare(ctx context.Context, cfg *contract.Config) error {
	curves, err := samples.Load(ctx, cfg.InputPath, cfg.InputFormat)
	if err != nil {
		return err
	}
	valueType := core.ResolveValueType(curves, cfg.ValueType)
	path := contract.DefaultOutputPath(cfg, "comparison")

	plotter := core.NewPlotter(render.ForPath(path, logger), kde.NewEstimator(logger), render.Escaper, logger)
	job, err := plotter.LineComparison(ctx, units.ForKind(cfg.Unit), cfg.Title, curves, path, valueType, cfg.Plot)
	if err != nil {
		return err
	}
	return waitForPlot(job)
}

// waitForPlot blocks on a render job and reports where it was written.
func waitForPlot(job contract.Job) error {
	if err := job.Wait(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Saved plot to %s\n", job.Output())
	return nil
}
