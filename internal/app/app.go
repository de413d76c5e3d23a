package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/daumdict/internal/adapter/provider/daum"
	"github.com/heartmarshall/daumdict/internal/batch"
	"github.com/heartmarshall/daumdict/internal/config"
)

// Serve initializes the logger and dictionary client from cfg and runs the
// HTTP API until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting server",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("dictionary", cfg.Dictionary.BaseURL),
		slog.String("log_level", cfg.Log.Level),
	)

	provider := daum.NewProvider(cfg.Dictionary, logger)
	srv := NewServer(cfg, provider, logger)
	defer srv.Close()

	return srv.Run(ctx)
}

// Batch initializes the logger and dictionary client from cfg and processes
// the configured word list once.
func Batch(ctx context.Context, cfg *config.Config) (batch.Stats, error) {
	logger := NewLogger(cfg.Log)

	logger.Info("starting batch",
		slog.String("version", BuildVersion()),
		slog.String("input", cfg.Batch.InputPath),
		slog.String("output", cfg.Batch.OutputPath),
		slog.String("error_log", cfg.Batch.ErrorLogPath),
		slog.Duration("delay", cfg.Batch.Delay),
	)

	provider := daum.NewProvider(cfg.Dictionary, logger)
	runner := batch.NewRunner(provider, cfg.Batch.Delay, logger)

	return runner.RunFiles(ctx, batch.Paths{
		Input:    cfg.Batch.InputPath,
		Output:   cfg.Batch.OutputPath,
		ErrorLog: cfg.Batch.ErrorLogPath,
	})
}
