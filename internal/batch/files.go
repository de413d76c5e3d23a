package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Paths names the files used by RunFiles.
type Paths struct {
	Input    string
	Output   string
	ErrorLog string
}

// RunFiles reads the word list at p.Input, truncates p.Output and appends
// failures to p.ErrorLog.
func (r *Runner) RunFiles(ctx context.Context, p Paths) (stats Stats, err error) {
	words, err := ReadWordListFile(p.Input)
	if err != nil {
		return stats, err
	}

	out, err := os.Create(p.Output)
	if err != nil {
		return stats, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	errLog, err := os.OpenFile(p.ErrorLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return stats, fmt.Errorf("open error log: %w", err)
	}
	defer func() {
		err = errors.Join(err, errLog.Close())
	}()

	return r.Run(ctx, words, out, errLog)
}
