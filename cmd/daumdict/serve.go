package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/daumdict/internal/app"
	"github.com/heartmarshall/daumdict/internal/config"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP translation API",
		Long: `Serve starts the HTTP API:

  POST /api/translate   {"word": "救助"}
  GET  /api/health

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("host", "", "Listen host (overrides server.host)")
	cmd.Flags().IntP("port", "p", 0, "Listen port (overrides server.port)")
	cmd.Flags().Int("rate-limit", 0, "Translate requests per minute per client, 0 disables (overrides rate_limit.per_minute)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyServeFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return app.Serve(cmd.Context(), cfg)
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("host") {
		v, err := flags.GetString("host")
		if err != nil {
			return err
		}
		cfg.Server.Host = v
	}
	if flags.Changed("port") {
		v, err := flags.GetInt("port")
		if err != nil {
			return err
		}
		cfg.Server.Port = v
	}
	if flags.Changed("rate-limit") {
		v, err := flags.GetInt("rate-limit")
		if err != nil {
			return err
		}
		cfg.RateLimit.PerMinute = v
	}
	return nil
}
