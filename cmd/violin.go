package cmd

import (
	"context"

	"github.com/huangsam/benchplot/core"
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/internal/kde"
	"github.com/huangsam/benchplot/internal/render"
	"github.com/huangsam/benchplot/internal/samples"
	"github.com/huangsam/benchplot/internal/units"
	"github.com/spf13/cobra"
)

// violinCmd draws the sample distribution of every curve.
var violinCmd = &cobra.Command{
	Use:   "violin <input>",
	Short: "Plot the sample distribution of every benchmark as a violin.",
	Long: `Plot one violin lane per curve from a Gaussian kernel density estimate.

Lanes are stacked bottom to top in reverse input order, so the first curve
appears at the top. Densities are scaled so each lane's peak fills its lane.
Only --x-scale from the plot options applies.

Examples:
  # Distribution of every sort benchmark
  benchplot violin results/sort.json

  # Narrower kernel on a log time axis
  benchplot violin results/sort.json --bandwidth 50 --x-scale log -o sort-violin.svg`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runViolin(rootCtx, cfg.Clone()); err != nil {
			contract.LogFatal("Violin plot failed", err)
		}
	},
}

func runViolin(ctx context.Context, cfg *contract.Config) error {
	curves, err := samples.Load(ctx, cfg.InputPath, cfg.InputFormat)
	if err != nil {
		return err
	}
	path := contract.DefaultOutputPath(cfg, "violin")

	plotter := core.NewPlotter(render.ForPath(path, logger), kde.NewEstimator(logger), render.Escaper, logger)
	plotter.Bandwidth = cfg.Bandwidth
	job, err := plotter.Violin(ctx, units.ForKind(cfg.Unit), cfg.Title, curves, path, cfg.Plot.XScale)
	if err != nil {
		return err
	}
	return waitForPlot(job)
}
