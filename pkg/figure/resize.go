package figure

import (
	"context"
	"sync"
	"time"
)

// DefaultResizeWait is the quiet period before a resize burst is forwarded.
const DefaultResizeWait = 200 * time.Millisecond

// Refresher recomputes a visual's layout.
type Refresher interface {
	Refresh(ctx context.Context)
}

// ResizeDebouncer coalesces container resize notifications so that a burst
// results in a single Refresh once the container has been still for the
// wait period.
type ResizeDebouncer struct {
	ctx    context.Context
	target Refresher
	wait   time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewResizeDebouncer returns a debouncer forwarding to target. A
// non-positive wait selects [DefaultResizeWait].
func NewResizeDebouncer(ctx context.Context, target Refresher, wait time.Duration) *ResizeDebouncer {
	if wait <= 0 {
		wait = DefaultResizeWait
	}
	return &ResizeDebouncer{ctx: ctx, target: target, wait: wait}
}

// Notify records a resize. Any pending refresh is postponed.
func (d *ResizeDebouncer) Notify() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, d.fire)
}

func (d *ResizeDebouncer) fire() {
	if d.ctx.Err() != nil {
		return
	}
	d.target.Refresh(d.ctx)
}

// Stop cancels a pending refresh.
func (d *ResizeDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
