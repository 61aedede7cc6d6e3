/*
PURPOSE:
  Entry point for smallfiles-bench.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Single binary for both the text generator and the report plotter.
  - Non-zero exit code on any fatal error.

  Implementation-discovered:
  - Uses cobra for CLI command management.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o smallfiles-bench ./cmd/smallfiles-bench
  ./smallfiles-bench generate --size 100MiB
  ./smallfiles-bench plot -i results_small_files_raw.csv

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/smallfiles-bench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
