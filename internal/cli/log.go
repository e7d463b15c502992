package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Rendered 7 traces into lfp (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports figure and backend events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRender(_ context.Context, target, op string, traces int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "target", target, "op", op, "err", err)
		return
	}
	h.logger.Debug("render", "target", target, "op", op, "traces", traces, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnPurge(_ context.Context, target string, err error) {
	h.logger.Debug("purge", "target", target, "err", err)
}

func (h logHooks) OnRefresh(_ context.Context, target string, skipped bool, err error) {
	h.logger.Debug("refresh", "target", target, "skipped", skipped, "err", err)
}

func (h logHooks) OnStore(_ context.Context, backend, target string, size int) {
	h.logger.Debug("stored visual", "backend", backend, "target", target, "bytes", size)
}

func (h logHooks) OnLoad(_ context.Context, backend, target string, found bool) {
	h.logger.Debug("loaded visual", "backend", backend, "target", target, "found", found)
}

func (h logHooks) OnDelete(_ context.Context, backend, target string) {
	h.logger.Debug("deleted visual", "backend", backend, "target", target)
}
