/*
PURPOSE:
  Defines the 'plot' and 'summarize' subcommands.
  Both load a benchmark results CSV and print per-(Tool, Operation)
  aggregates; 'plot' also renders the four comparison charts.

REQUIREMENTS:
  User-specified:
  - Charts are saved unless --no-save is given.

  Implementation-discovered:
  - Both commands share input and summary flags.

RELATED FILES:
  - internal/engine/runner.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/smallfiles-bench/internal/config"
	"github.com/daryltucker/smallfiles-bench/internal/engine"
)

var (
	plotInput       string
	plotOutputDir   string
	plotFormat      string
	plotNoSave      bool
	plotSummaryCSV  string
	plotSummaryJSON string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Summarize benchmark results and render comparison charts",
	Long: `Loads a results CSV with the columns Tool, Operation, Trial, Time(s) and
Max Memory(KB). Time may be plain seconds or minutes:seconds; rows whose Time
cannot be parsed are logged and dropped. Prints the per-(Tool, Operation)
summary and writes four charts:

  average_time       mean time per tool, grouped by operation
  time_distribution  time spread per tool, grouped by operation
  max_memory_usage   mean max memory per tool, grouped by operation
  time_per_trial     raw time per trial, one line per tool/operation`,
	Example: `  smallfiles-bench plot -i results_small_files_raw.csv -o charts
  smallfiles-bench plot --format svg --summary-csv summary.csv
  smallfiles-bench plot --no-save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(plotOverrides(true))
		if err != nil {
			return err
		}
		return engine.Report(cfg, cmd.OutOrStdout())
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print and export benchmark aggregates without charting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(plotOverrides(false))
		if err != nil {
			return err
		}
		return engine.Summarize(cfg, cmd.OutOrStdout())
	},
}

// plotOverrides applies the plot flags; charts is false for summarize.
func plotOverrides(charts bool) func(*config.Config) error {
	return func(cfg *config.Config) error {
		p := &cfg.Plot
		if plotInput != "" {
			p.InputPath = plotInput
		}
		if plotOutputDir != "" {
			p.OutputDir = plotOutputDir
		}
		if plotFormat != "" {
			p.Format = plotFormat
		}
		if plotNoSave || !charts {
			p.Save = false
		}
		if plotSummaryCSV != "" {
			p.SummaryCSV = plotSummaryCSV
		}
		if plotSummaryJSON != "" {
			p.SummaryJSON = plotSummaryJSON
		}
		return nil
	}
}

func init() {
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(summarizeCmd)

	for _, c := range []*cobra.Command{plotCmd, summarizeCmd} {
		c.Flags().StringVarP(&plotInput, "input", "i", "", "Results CSV (default results_small_files_raw.csv)")
		c.Flags().StringVar(&plotSummaryCSV, "summary-csv", "", "Write aggregates to this CSV file")
		c.Flags().StringVar(&plotSummaryJSON, "summary-json", "", "Write aggregates to this JSON Lines file")
	}

	plotCmd.Flags().StringVarP(&plotOutputDir, "output-dir", "o", "", "Directory for chart files (default charts)")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "Chart file format: png, svg, pdf, jpg, eps, tif")
	plotCmd.Flags().BoolVar(&plotNoSave, "no-save", false, "Build charts without writing them")
}
