/*
PURPOSE:
  Defines the 'generate' subcommand.
  Writes a large file of random text in bounded-size chunks.

USAGE:
  smallfiles-bench generate -o large_random_text.txt --size 100MiB --chunk 10KiB
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/smallfiles-bench/internal/config"
	"github.com/daryltucker/smallfiles-bench/internal/engine"
)

var (
	genOutput string
	genSize   config.ByteSize
	genChunk  config.ByteSize
	genSeed   uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a large file of random text",
	Long: `Writes random letters, digits, spaces and newlines until the file reaches
the requested size. Data is produced one chunk at a time, so memory use is
bounded by the chunk size rather than the file size.`,
	Example: `  # 100 MiB in 10 KiB chunks (defaults)
  smallfiles-bench generate

  # 1 GiB, reproducible
  smallfiles-bench generate -o big.txt --size 1GiB --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(func(cfg *config.Config) error {
			flags := cmd.Flags()
			if genOutput != "" {
				cfg.Generate.OutputPath = genOutput
			}
			if flags.Changed("size") {
				cfg.Generate.TotalSize = genSize
			}
			if flags.Changed("chunk") {
				cfg.Generate.ChunkSize = genChunk
			}
			if flags.Changed("seed") {
				seed := genSeed
				cfg.Generate.Seed = &seed
			}
			return nil
		})
		if err != nil {
			return err
		}
		return engine.Generate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := config.DefaultConfig().Generate
	genSize = defaults.TotalSize
	genChunk = defaults.ChunkSize

	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default "+defaults.OutputPath+")")
	generateCmd.Flags().Var(&genSize, "size", "Total size, e.g. 100MiB or 104857600")
	generateCmd.Flags().Var(&genChunk, "chunk", "Chunk size, e.g. 10KiB")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "Seed for reproducible output (default: random)")
}
