// Package batch looks up every word of a word-list file and writes the
// results and failures to separate files.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/daumdict/internal/domain"
)

type wordLookup interface {
	Lookup(ctx context.Context, word string) domain.LookupResult
}

// Stats holds run statistics.
type Stats struct {
	Total     int
	Succeeded int
	Failed    int
}

// Runner processes word lists sequentially with a fixed pause between lookups.
type Runner struct {
	lookup wordLookup
	delay  time.Duration
	log    *slog.Logger
}

// NewRunner creates a Runner. A non-positive delay disables the pause.
func NewRunner(lookup wordLookup, delay time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		lookup: lookup,
		delay:  delay,
		log:    logger.With("component", "batch"),
	}
}

// Run looks up each word in order. Every result is written to out as soon as
// it is known; failures are also written to errLog. A failed lookup does not
// stop the run. Cancelling ctx stops it between words and returns ctx.Err()
// together with the stats so far.
func (r *Runner) Run(ctx context.Context, words []string, out, errLog io.Writer) (Stats, error) {
	stats := Stats{Total: len(words)}
	r.log.InfoContext(ctx, "batch started", slog.Int("words", len(words)))

	for i, word := range words {
		if i > 0 {
			if err := sleep(ctx, r.delay); err != nil {
				return stats, err
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		r.log.InfoContext(ctx, fmt.Sprintf("processing %d/%d", i+1, len(words)), slog.String("word", word))

		res := r.lookup.Lookup(ctx, word)
		if _, err := io.WriteString(out, formatResult(res)); err != nil {
			return stats, fmt.Errorf("write result: %w", err)
		}

		if res.Succeeded {
			stats.Succeeded++
			continue
		}

		stats.Failed++
		r.log.WarnContext(ctx, "lookup failed",
			slog.String("word", word),
			slog.String("error", res.Error),
		)
		if _, err := io.WriteString(errLog, formatError(word, res.Error)); err != nil {
			return stats, fmt.Errorf("write error log: %w", err)
		}
	}

	r.log.InfoContext(ctx, "batch finished",
		slog.Int("total", stats.Total),
		slog.Int("succeeded", stats.Succeeded),
		slog.Int("failed", stats.Failed),
	)
	return stats, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
