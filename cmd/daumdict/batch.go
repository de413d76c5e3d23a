package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daumdict/internal/app"
	"github.com/heartmarshall/daumdict/internal/config"
)

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Look up every word in a word-list file",
		Long: `Batch reads one word per line, looks each one up with a fixed pause between
requests, and writes one line per word to the results file:

  救助, jiu4zhu4, ['구조']

Failed lookups are also appended to the error log as "word - Error: message".

Examples:
  # Use the configured paths (test_data.txt, result.txt, error.txt)
  daumdict batch

  # Custom files and a slower pace
  daumdict batch -i words.txt -o out.txt -e failed.txt --delay 1s`,
		Args: cobra.NoArgs,
		RunE: runBatchCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Word-list file (overrides batch.input_path)")
	cmd.Flags().StringP("output", "o", "", "Results file, truncated (overrides batch.output_path)")
	cmd.Flags().StringP("errors", "e", "", "Error log, appended (overrides batch.error_log_path)")
	cmd.Flags().Duration("delay", 0, "Pause between lookups (overrides batch.delay)")

	return cmd
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyBatchFlags(cmd, &cfg.Batch); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stats, err := app.Batch(cmd.Context(), cfg)
	fmt.Fprintf(cmd.OutOrStdout(), "processed %d of %d words: %d succeeded, %d failed\n",
		stats.Succeeded+stats.Failed, stats.Total, stats.Succeeded, stats.Failed)
	return err
}

func applyBatchFlags(cmd *cobra.Command, b *config.BatchConfig) error {
	flags := cmd.Flags()

	for name, dst := range map[string]*string{
		"input":  &b.InputPath,
		"output": &b.OutputPath,
		"errors": &b.ErrorLogPath,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if flags.Changed("delay") {
		d, err := flags.GetDuration("delay")
		if err != nil {
			return err
		}
		b.Delay = d
	}
	return nil
}
