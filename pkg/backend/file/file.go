// Package file provides a plotting backend that writes visuals to disk.
//
// Each target becomes <dir>/<target>.json holding the encoded spec and,
// unless disabled, <dir>/<target>.html, a standalone page that mounts the
// spec with the browser engine. The directory plays the role of the view's
// container: it must exist for NewPlot to succeed.
package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

const kind = backend.KindFile

// Option configures a [Backend].
type Option func(*Backend)

// WithoutPages disables the HTML page written next to each spec.
func WithoutPages() Option { return func(b *Backend) { b.pages = false } }

// Backend stores visuals as files in a directory.
type Backend struct {
	dir   string
	pages bool
}

// New creates a file backend rooted at dir.
// The directory will be created if it doesn't exist.
func New(dir string, opts ...Option) (*Backend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "create output dir %s", dir)
	}
	b := &Backend{dir: dir, pages: true}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Dir returns the output directory.
func (b *Backend) Dir() string { return b.dir }

// SpecPath returns the JSON file path for target.
func (b *Backend) SpecPath(target string) string {
	return filepath.Join(b.dir, target+".json")
}

// PagePath returns the HTML page path for target.
func (b *Backend) PagePath(target string) string {
	return filepath.Join(b.dir, target+".html")
}

// NewPlot writes the visual for target.
func (b *Backend) NewPlot(ctx context.Context, target string, spec backend.Spec) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	if _, err := os.Stat(b.dir); os.IsNotExist(err) {
		return errs.New(errs.ErrCodeTargetNotFound, "output dir %s does not exist", b.dir)
	}
	return b.write(ctx, target, spec)
}

// React rewrites an existing visual.
func (b *Backend) React(ctx context.Context, target string, spec backend.Spec) error {
	if err := b.requireVisual(target); err != nil {
		return err
	}
	return b.write(ctx, target, spec)
}

// Purge removes the visual's files.
func (b *Backend) Purge(ctx context.Context, target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	for _, path := range []string{b.SpecPath(target), b.PagePath(target)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errs.Wrap(errs.ErrCodeBackend, err, "remove %s", path)
		}
	}
	observability.Store().OnDelete(ctx, kind, target)
	return nil
}

// Resize touches the spec file so file watchers reload the page.
func (b *Backend) Resize(ctx context.Context, target string) error {
	if err := b.requireVisual(target); err != nil {
		return err
	}
	now := time.Now()
	if err := os.Chtimes(b.SpecPath(target), now, now); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "touch %s", target)
	}
	return nil
}

// Load reads the encoded spec of target.
func (b *Backend) Load(ctx context.Context, target string) ([]byte, error) {
	if err := errs.ValidateTarget(target); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.SpecPath(target))
	if os.IsNotExist(err) {
		observability.Store().OnLoad(ctx, kind, target, false)
		return nil, errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "read %s", target)
	}
	observability.Store().OnLoad(ctx, kind, target, true)
	return data, nil
}

func (b *Backend) requireVisual(target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	if _, err := os.Stat(b.SpecPath(target)); os.IsNotExist(err) {
		return errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	return nil
}

func (b *Backend) write(ctx context.Context, target string, spec backend.Spec) error {
	data, err := spec.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}
	if err := os.WriteFile(b.SpecPath(target), data, 0644); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "write %s", target)
	}
	if b.pages {
		var page bytes.Buffer
		if err := backend.WritePage(&page, target, data); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "page %s", target)
		}
		if err := os.WriteFile(b.PagePath(target), page.Bytes(), 0644); err != nil {
			return errs.Wrap(errs.ErrCodeBackend, err, "write page %s", target)
		}
	}
	observability.Store().OnStore(ctx, kind, target, len(data))
	return nil
}

var _ backend.Store = (*Backend)(nil)
