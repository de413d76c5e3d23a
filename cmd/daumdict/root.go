package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/daumdict/internal/config"
)

// NewRootCmd creates the root command for daumdict.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daumdict",
		Short: "Chinese to Korean word lookup backed by the Daum dictionary",
		Long: `daumdict resolves a Chinese word on dic.daum.net in two steps (search page,
then word detail page) and extracts the pinyin and Korean meanings.

Configuration is read from a YAML file (--config, CONFIG_PATH or ./config.yaml)
and environment variables; command flags override both.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to YAML config file")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadConfig loads configuration from --config when given, otherwise from
// CONFIG_PATH or the default path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
