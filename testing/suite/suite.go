package suite

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - returns a context that expires after maxWaitDuration and a debug logger.
// Log records are printed only when the test fails.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)

	logs := &logBuffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		cancel()

		if t.Failed() {
			t.Log(logs.String())
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// logBuffer may be written by fold goroutines that outlive the test.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (that *logBuffer) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.Write(p)
}

func (that *logBuffer) String() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.buf.String()
}
