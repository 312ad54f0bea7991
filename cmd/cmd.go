// Package cmd defines the command-line interface for benchplot.
package cmd

import (
	"github.com/huangsam/benchplot/internal/contract"
	"github.com/huangsam/benchplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(violinCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeImportCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeRunsCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("format", string(schema.AutoFormat), "Input format: auto or json or csv or parquet or sqlite")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Path to write the plot or table to (.svg, .png, .pdf, .json, .csv)")
	rootCmd.PersistentFlags().String("title", "", "Plot title (defaults to the input file name)")
	rootCmd.PersistentFlags().String("value-type", string(schema.AutoValue), "Parameter kind: auto or bytes or elements or value")
	rootCmd.PersistentFlags().String("unit", string(schema.DurationUnit), "Measurement unit: duration or decimal")
	rootCmd.PersistentFlags().String("x-scale", string(schema.LinearScale), "X axis scale: linear or logarithmic")
	rootCmd.PersistentFlags().String("grouping", string(schema.RunsGrouping), "Curve grouping: runs or strict or partition")
	rootCmd.PersistentFlags().Bool("speedup", false, "Plot or tabulate the ratio against --speedup-id")
	rootCmd.PersistentFlags().String("speedup-id", "", "Function identity of the speedup baseline")
	rootCmd.PersistentFlags().String("db", contract.DefaultDBName, "Path to the SQLite sample store")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("x-label", "", "Override the X axis label")
	compareCmd.Flags().String("y-label", "", "Override the Y axis label")
	compareCmd.Flags().String("label", "", "Override the whole plot title")
	compareCmd.Flags().String("y-scale", string(schema.LinearScale), "Y axis scale: linear or logarithmic")
	compareCmd.Flags().Bool("x-grid-major", false, "Draw major grid lines on the X axis")
	compareCmd.Flags().Bool("x-grid-minor", false, "Draw minor grid lines on the X axis")
	compareCmd.Flags().Bool("y-grid-major", false, "Draw major grid lines on the Y axis")
	compareCmd.Flags().Bool("y-grid-minor", false, "Draw minor grid lines on the Y axis")
	compareCmd.Flags().String("tics", "", "Comma-separated X tick positions, labelled as byte sizes")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of violinCmd to Viper
	violinCmd.Flags().Float64("bandwidth", 0, "KDE bandwidth override (0 = Silverman's rule)")
	if err := viper.BindPFlags(violinCmd.Flags()); err != nil {
		contract.LogFatal("Error binding violin flags", err)
	}

	// Bind all flags of storeExportCmd and storeMigrateCmd to Viper
	storeExportCmd.Flags().Int64("run-id", 0, "Run to export (0 means the latest run)")
	if err := viper.BindPFlags(storeExportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store export flags", err)
	}
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
