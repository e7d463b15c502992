// Package memory provides an in-process plotting backend.
//
// Visuals are kept as encoded specs in a map keyed by render target. Views
// mount targets before figures render into them, mirroring a DOM container
// that must exist before the engine can draw; [WithAutoMount] drops that
// requirement for dry runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

const kind = backend.KindMemory

// Option configures a [Backend].
type Option func(*Backend)

// WithAutoMount mounts unknown targets on first NewPlot instead of failing.
func WithAutoMount() Option { return func(b *Backend) { b.autoMount = true } }

type visual struct {
	spec    []byte
	version int
	resizes int
}

// Backend is a thread-safe in-memory plotting engine.
type Backend struct {
	mu        sync.RWMutex
	mounts    map[string]*visual // nil value: mounted, no visual yet
	autoMount bool
}

// New creates an empty memory backend.
func New(opts ...Option) *Backend {
	b := &Backend{mounts: make(map[string]*visual)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mount registers target as a valid render destination.
func (b *Backend) Mount(target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.mounts[target]; !ok {
		b.mounts[target] = nil
	}
	return nil
}

// Unmount removes target and any visual rendered into it.
func (b *Backend) Unmount(target string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.mounts, target)
}

// NewPlot stores spec as the visual for target.
func (b *Backend) NewPlot(ctx context.Context, target string, spec backend.Spec) error {
	data, err := spec.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.mounts[target]; !ok {
		if !b.autoMount {
			return errs.New(errs.ErrCodeTargetNotFound, "render target %q is not mounted", target)
		}
		if err := errs.ValidateTarget(target); err != nil {
			return err
		}
	}
	b.mounts[target] = &visual{spec: data, version: 1}
	observability.Store().OnStore(ctx, kind, target, len(data))
	return nil
}

// React replaces the content of an existing visual.
func (b *Backend) React(ctx context.Context, target string, spec backend.Spec) error {
	data, err := spec.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	v, err := b.visualLocked(target)
	if err != nil {
		return err
	}
	v.spec = data
	v.version++
	observability.Store().OnStore(ctx, kind, target, len(data))
	return nil
}

// Purge drops the visual but keeps the target mounted.
func (b *Backend) Purge(ctx context.Context, target string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.mounts[target]; ok && v != nil {
		b.mounts[target] = nil
		observability.Store().OnDelete(ctx, kind, target)
	}
	return nil
}

// Resize records a layout recompute on the visual.
func (b *Backend) Resize(ctx context.Context, target string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, err := b.visualLocked(target)
	if err != nil {
		return err
	}
	v.resizes++
	return nil
}

// Load returns the encoded spec of target's visual.
func (b *Backend) Load(ctx context.Context, target string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, err := b.visualLocked(target)
	if err != nil {
		observability.Store().OnLoad(ctx, kind, target, false)
		return nil, err
	}
	observability.Store().OnLoad(ctx, kind, target, true)
	out := make([]byte, len(v.spec))
	copy(out, v.spec)
	return out, nil
}

// Version returns how many times target's visual was written since it was
// created, or 0 when there is no visual.
func (b *Backend) Version(target string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if v := b.mounts[target]; v != nil {
		return v.version
	}
	return 0
}

// Resizes returns the number of Resize calls on target's current visual.
func (b *Backend) Resizes(target string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if v := b.mounts[target]; v != nil {
		return v.resizes
	}
	return 0
}

// Targets returns the mounted targets in sorted order.
func (b *Backend) Targets() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.mounts))
	for t := range b.mounts {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (b *Backend) visualLocked(target string) (*visual, error) {
	v, ok := b.mounts[target]
	if !ok {
		return nil, errs.New(errs.ErrCodeTargetNotFound, "render target %q is not mounted", target)
	}
	if v == nil {
		return nil, errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	return v, nil
}

var _ backend.Store = (*Backend)(nil)
