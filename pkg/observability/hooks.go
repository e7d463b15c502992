// Package observability provides hooks for metrics, tracing, and logging.
//
// Figures, plotting backends and the figure server emit events through
// globally registered hooks. Nothing here depends on a metrics backend:
// main registers implementations at startup and libraries only call the
// accessors.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFigureHooks(&myFigureHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	err := backend.NewPlot(ctx, target, spec)
//	observability.Figure().OnRender(ctx, target, "create", len(spec.Data), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Figure Hooks
// =============================================================================

// FigureHooks receives events from the render state machine.
type FigureHooks interface {
	// OnRender records a render call. op is "create" for Empty→Rendered and
	// "update" for Rendered→Rendered.
	OnRender(ctx context.Context, target, op string, traces int, duration time.Duration, err error)

	// OnPurge records the teardown of a visual.
	OnPurge(ctx context.Context, target string, err error)

	// OnRefresh records a layout recompute request. skipped is true when the
	// figure had no visual yet.
	OnRefresh(ctx context.Context, target string, skipped bool, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from plotting backends that persist visuals.
type StoreHooks interface {
	// OnStore records a write of an encoded figure.
	OnStore(ctx context.Context, backend, target string, size int)

	// OnLoad records a read. found is false when the target had no visual.
	OnLoad(ctx context.Context, backend, target string, found bool)

	// OnDelete records the removal of a visual.
	OnDelete(ctx context.Context, backend, target string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the figure server.
type HTTPHooks interface {
	// OnResponse records a served request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFigureHooks is a no-op implementation of FigureHooks.
type NoopFigureHooks struct{}

func (NoopFigureHooks) OnRender(context.Context, string, string, int, time.Duration, error) {}
func (NoopFigureHooks) OnPurge(context.Context, string, error)                              {}
func (NoopFigureHooks) OnRefresh(context.Context, string, bool, error)                      {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStore(context.Context, string, string, int) {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, bool) {}
func (NoopStoreHooks) OnDelete(context.Context, string, string)     {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	figureHooks FigureHooks = NoopFigureHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetFigureHooks registers custom figure hooks.
// This should be called once at application startup before any figure is rendered.
func SetFigureHooks(h FigureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		figureHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Figure returns the registered figure hooks.
func Figure() FigureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return figureHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	figureHooks = NoopFigureHooks{}
	storeHooks = NoopStoreHooks{}
	httpHooks = NoopHTTPHooks{}
}
