package figure

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingRefresher struct {
	n    atomic.Int32
	done chan struct{}
}

func (c *countingRefresher) Refresh(context.Context) {
	if c.n.Add(1) == 1 {
		close(c.done)
	}
}

func TestResizeDebouncerCoalesces(t *testing.T) {
	r := &countingRefresher{done: make(chan struct{})}
	d := NewResizeDebouncer(context.Background(), r, 20*time.Millisecond)
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Notify()
	}

	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never fired")
	}
	time.Sleep(100 * time.Millisecond)
	if n := r.n.Load(); n != 1 {
		t.Errorf("refreshed %d times, want 1", n)
	}
}

func TestResizeDebouncerStop(t *testing.T) {
	r := &countingRefresher{done: make(chan struct{})}
	d := NewResizeDebouncer(context.Background(), r, 20*time.Millisecond)

	d.Notify()
	d.Stop()
	time.Sleep(100 * time.Millisecond)
	if n := r.n.Load(); n != 0 {
		t.Errorf("refreshed %d times after Stop, want 0", n)
	}
}

func TestResizeDebouncerFigure(t *testing.T) {
	ctx := context.Background()
	rb := &recordingBackend{}
	fig := New("chart", rb)
	if err := fig.Render(ctx); err != nil {
		t.Fatalf("Render: %v", err)
	}

	d := NewResizeDebouncer(ctx, fig, 10*time.Millisecond)
	defer d.Stop()
	d.Notify()
	d.Notify()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if calls := rb.Calls(); len(calls) == 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := rb.Calls(); !equalStrings(got, []string{"newplot", "resize"}) {
		t.Errorf("engine calls = %v, want [newplot resize]", got)
	}
}
