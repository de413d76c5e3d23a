package batch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/daumdict/internal/domain"
)

type lookupStub struct {
	mu    sync.Mutex
	calls []string
	times []time.Time
	fn    func(word string) domain.LookupResult
}

func (s *lookupStub) Lookup(_ context.Context, word string) domain.LookupResult {
	s.mu.Lock()
	s.calls = append(s.calls, word)
	s.times = append(s.times, time.Now())
	s.mu.Unlock()
	return s.fn(word)
}

// succeedExcept fails the given words with a not-found result.
func succeedExcept(missing ...string) func(string) domain.LookupResult {
	return func(word string) domain.LookupResult {
		for _, m := range missing {
			if m == word {
				return domain.NewNotFoundResult(word, domain.ErrNotFound)
			}
		}
		return domain.LookupResult{
			Word:      word,
			Pinyin:    "py-" + word,
			Meanings:  []string{"뜻-" + word},
			Succeeded: true,
		}
	}
}

func newTestRunner(stub *lookupStub, delay time.Duration) *Runner {
	return NewRunner(stub, delay, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	stub := &lookupStub{fn: succeedExcept("zzzz")}
	r := newTestRunner(stub, 0)

	var out, errLog bytes.Buffer
	stats, err := r.Run(context.Background(), []string{"救助", "zzzz", "学习"}, &out, &errLog)
	require.NoError(t, err)

	assert.Equal(t, Stats{Total: 3, Succeeded: 2, Failed: 1}, stats)
	assert.Equal(t, []string{"救助", "zzzz", "学习"}, stub.calls)
	assert.Equal(t,
		"救助, py-救助, ['뜻-救助']\n"+
			"zzzz, , []\n"+
			"学习, py-学习, ['뜻-学习']\n",
		out.String())
	assert.Equal(t, "zzzz - Error: "+domain.MsgWordNotFound+"\n", errLog.String())
}

func TestRunner_Run_Empty(t *testing.T) {
	t.Parallel()

	stub := &lookupStub{fn: succeedExcept()}
	r := newTestRunner(stub, time.Hour)

	var out, errLog bytes.Buffer
	stats, err := r.Run(context.Background(), nil, &out, &errLog)
	require.NoError(t, err)

	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, out.String())
	assert.Empty(t, errLog.String())
}

func TestRunner_Run_DelayBetweenLookups(t *testing.T) {
	t.Parallel()

	const delay = 30 * time.Millisecond
	stub := &lookupStub{fn: succeedExcept()}
	r := newTestRunner(stub, delay)

	start := time.Now()
	_, err := r.Run(context.Background(), []string{"a", "b", "c"}, io.Discard, io.Discard)
	require.NoError(t, err)

	require.Len(t, stub.times, 3)
	assert.Less(t, stub.times[0].Sub(start), delay, "first lookup should not wait")
	assert.GreaterOrEqual(t, stub.times[1].Sub(stub.times[0]), delay)
	assert.GreaterOrEqual(t, stub.times[2].Sub(stub.times[1]), delay)
}

func TestRunner_Run_CancelDuringDelay(t *testing.T) {
	t.Parallel()

	stub := &lookupStub{fn: succeedExcept()}
	r := newTestRunner(stub, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	stub.fn = func(word string) domain.LookupResult {
		cancel()
		return succeedExcept()(word)
	}

	var out bytes.Buffer
	done := make(chan struct{})
	var (
		stats Stats
		err   error
	)
	go func() {
		defer close(done)
		stats, err = r.Run(ctx, []string{"a", "b"}, &out, io.Discard)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Stats{Total: 2, Succeeded: 1}, stats)
	assert.Equal(t, []string{"a"}, stub.calls)
	assert.Equal(t, "a, py-a, ['뜻-a']\n", out.String())
}

func TestRunner_Run_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	stub := &lookupStub{fn: succeedExcept()}
	r := newTestRunner(stub, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, []string{"a"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stub.calls)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunner_Run_WriteError(t *testing.T) {
	t.Parallel()

	stub := &lookupStub{fn: succeedExcept()}
	r := newTestRunner(stub, 0)

	_, err := r.Run(context.Background(), []string{"a", "b"}, failingWriter{}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, stub.calls, 1)
}

func TestRunner_RunFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := Paths{
		Input:    filepath.Join(dir, "test_data.txt"),
		Output:   filepath.Join(dir, "result.txt"),
		ErrorLog: filepath.Join(dir, "error.txt"),
	}
	require.NoError(t, os.WriteFile(paths.Input, []byte("救助\n\nzzzz\n"), 0o644))
	require.NoError(t, os.WriteFile(paths.Output, []byte("stale\n"), 0o644))
	require.NoError(t, os.WriteFile(paths.ErrorLog, []byte("old - Error: x\n"), 0o644))

	stub := &lookupStub{fn: succeedExcept("zzzz")}
	stats, err := newTestRunner(stub, 0).RunFiles(context.Background(), paths)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Succeeded: 1, Failed: 1}, stats)

	out, err := os.ReadFile(paths.Output)
	require.NoError(t, err)
	assert.Equal(t, "救助, py-救助, ['뜻-救助']\nzzzz, , []\n", string(out))

	errLog, err := os.ReadFile(paths.ErrorLog)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(errLog), "\n"), "\n")
	assert.Equal(t, []string{"old - Error: x", "zzzz - Error: " + domain.MsgWordNotFound}, lines)
}

func TestRunner_RunFiles_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stub := &lookupStub{fn: succeedExcept()}
	_, err := newTestRunner(stub, 0).RunFiles(context.Background(), Paths{
		Input:    filepath.Join(dir, "missing.txt"),
		Output:   filepath.Join(dir, "result.txt"),
		ErrorLog: filepath.Join(dir, "error.txt"),
	})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "result.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "output should not be created when input is missing")
}
