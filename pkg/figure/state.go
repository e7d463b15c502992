package figure

import (
	"context"
	"fmt"
	"time"

	"github.com/neuroviz/neuroplot/pkg/observability"
)

// RenderState tracks whether the figure's visual exists on its target.
type RenderState int

const (
	// StateEmpty means no visual exists; the next render creates one.
	StateEmpty RenderState = iota
	// StateRendered means a visual exists; renders update it in place.
	StateRendered
)

func (s RenderState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateRendered:
		return "rendered"
	}
	return fmt.Sprintf("RenderState(%d)", int(s))
}

type renderEvent int

const (
	eventRender renderEvent = iota
	eventPurge
)

// transitions whitelists the state changes; anything missing is refused.
var transitions = map[RenderState]map[renderEvent]RenderState{
	StateEmpty: {
		eventRender: StateRendered,
	},
	StateRendered: {
		eventRender: StateRendered,
		eventPurge:  StateEmpty,
	},
}

func (s RenderState) next(e renderEvent) (RenderState, bool) {
	n, ok := transitions[s][e]
	return n, ok
}

// State returns the current render state.
func (f *Figure) State() RenderState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Render sends the figure to its target. The first render creates the
// visual; later ones update it in place. Backend errors, including a missing
// target, are returned and leave the state unchanged.
func (f *Figure) Render(ctx context.Context) error {
	spec := f.Spec()

	f.mu.Lock()
	defer f.mu.Unlock()

	next, _ := f.state.next(eventRender)
	op, call := "update", f.engine.React
	if f.state == StateEmpty {
		op, call = "create", f.engine.NewPlot
	}

	start := time.Now()
	err := call(ctx, f.target, spec)
	observability.Figure().OnRender(ctx, f.target, op, len(spec.Data), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("render %s: %w", f.target, err)
	}

	f.logger.Debug("rendered figure", "target", f.target, "op", op, "traces", len(spec.Data))
	f.state = next
	return nil
}

// Purge destroys the visual and returns the figure to Empty. Purging an
// Empty figure does nothing.
func (f *Figure) Purge(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, ok := f.state.next(eventPurge)
	if !ok {
		f.logger.Debug("purge ignored", "target", f.target, "state", f.state)
		return nil
	}

	err := f.engine.Purge(ctx, f.target)
	observability.Figure().OnPurge(ctx, f.target, err)
	if err != nil {
		return fmt.Errorf("purge %s: %w", f.target, err)
	}
	f.state = next
	return nil
}

// Refresh asks a rendered visual to recompute its layout, typically after
// its container was resized. It does nothing on an Empty figure, and engine
// errors are logged rather than returned.
func (f *Figure) Refresh(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateRendered {
		observability.Figure().OnRefresh(ctx, f.target, true, nil)
		return
	}
	err := f.engine.Resize(ctx, f.target)
	observability.Figure().OnRefresh(ctx, f.target, false, err)
	if err != nil {
		f.logger.Debug("resize failed", "target", f.target, "err", err)
	}
}
