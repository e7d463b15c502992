// Package server serves stored figures to browser-side plotting engines.
//
// Routes:
//
//	GET /healthz                 liveness probe
//	GET /figures/{target}        encoded {data, layout, config}, with ETag
//	GET /figures/{target}/view   standalone HTML page rendering the figure
//	GET /events                  server-sent figure change events (optional)
//
// The server is read-only; figures are written by [figure.Figure.Render]
// through a shared backend.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/neuroviz/neuroplot/pkg/backend"
	redisbackend "github.com/neuroviz/neuroplot/pkg/backend/redis"
	"github.com/neuroviz/neuroplot/pkg/buildinfo"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 5 * time.Second

// EventSource streams figure change notifications.
type EventSource interface {
	Subscribe(ctx context.Context) <-chan redisbackend.Event
}

// Server is the figure HTTP surface.
type Server struct {
	store  backend.Loader
	events EventSource
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEvents enables the /events stream.
func WithEvents(src EventSource) Option {
	return func(s *Server) { s.events = src }
}

// New creates a server reading figures from store.
func New(store backend.Loader, opts ...Option) *Server {
	s := &Server{store: store, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Route("/figures/{target}", func(r chi.Router) {
		r.Get("/", s.handleSpec)
		r.Get("/view", s.handleView)
	})
	if s.events != nil {
		r.Get("/events", s.handleEvents)
	}
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving figures", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		w.Header().Set("Server", buildinfo.ServerHeader())
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, dur)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "bytes", ww.BytesWritten(), "duration", dur)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// load fetches target's encoded spec, writing an error response on failure.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	target := chi.URLParam(r, "target")
	if err := errs.ValidateTarget(target); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return "", nil, false
	}
	data, err := s.store.Load(r.Context(), target)
	if err != nil {
		status := http.StatusInternalServerError
		if errs.IsNotFound(err) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err)
		return "", nil, false
	}
	return target, data, true
}

func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	_, data, ok := s.load(w, r)
	if !ok {
		return
	}

	etag := ETag(data)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	target, data, ok := s.load(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := backend.WritePage(w, target, data); err != nil {
		s.logger.Warn("write page failed", "target", target, "err", err)
	}
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, errs.New(errs.ErrCodeUnsupported, "streaming not supported"))
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for ev := range s.events.Subscribe(r.Context()) {
		payload, err := redisbackend.EncodeEvent(ev)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Op, payload); err != nil {
			return
		}
		flusher.Flush()
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error: errs.UserMessage(err),
		Code:  string(errs.GetCode(err)),
	})
}

// ETag returns the strong entity tag of an encoded figure.
func ETag(data []byte) string {
	sum := sha256.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
