/*
PURPOSE:
  Defines the root Cobra command for the smallfiles-bench CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface for both utilities.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logs go to stderr so the summary table on stdout stays pipeable.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/smallfiles-bench/main.go
  - Calls: Child commands (generate, plot, summarize)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

RELATED FILES:
  - cmd/smallfiles-bench/main.go
  - internal/cli/generate.go
  - internal/cli/plot.go
*/

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/smallfiles-bench/internal/config"
	"github.com/daryltucker/smallfiles-bench/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logFormat string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "smallfiles-bench",
		Short: "Test data generator and report plotter for small-file copy benchmarks",
		Long: `Utilities around the small-files benchmark:
  generate   write a large file of random text in bounded chunks
  plot       summarize a results CSV and render comparison charts
  summarize  summarize a results CSV without charting`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return output.Configure(os.Stderr, logFormat, logLevel)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file, applies flag overrides and validates the result.
func loadConfig(apply func(*config.Config) error) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		if err := apply(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./smallfiles_bench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
