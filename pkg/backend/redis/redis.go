// Package redis provides a plotting backend backed by Redis.
//
// Each visual is stored as its encoded spec under <prefix>figure:<target>.
// Every state change is also published as a JSON [Event] on
// <prefix>events, so a browser bridge subscribed to that channel can call
// the engine's newPlot/react/purge/resize on its side.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

const kind = backend.KindRedis

// DefaultPrefix namespaces all keys and channels.
const DefaultPrefix = "neuroplot:"

// Event operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpPurge  = "purge"
	OpResize = "resize"
)

// Config holds connection settings.
type Config struct {
	Addr     string        // host:port
	Password string        // optional
	DB       int           // database index
	Prefix   string        // key prefix, DefaultPrefix when empty
	TTL      time.Duration // visual expiry, 0 keeps visuals forever
}

// Event is published on every visual change.
type Event struct {
	Target string    `json:"target"`
	Op     string    `json:"op"`
	At     time.Time `json:"at"`
}

// Backend stores visuals in Redis.
type Backend struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "connect to redis at %s", cfg.Addr)
	}
	return NewWithClient(client, cfg.Prefix, cfg.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client goredis.UniversalClient, prefix string, ttl time.Duration) *Backend {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Backend{client: client, prefix: prefix, ttl: ttl}
}

// Key returns the storage key for target.
func (b *Backend) Key(target string) string {
	return b.prefix + "figure:" + target
}

// Channel returns the pub/sub channel events are published on.
func (b *Backend) Channel() string {
	return b.prefix + "events"
}

// NewPlot stores the visual and announces it.
func (b *Backend) NewPlot(ctx context.Context, target string, spec backend.Spec) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	data, err := spec.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}
	if err := b.client.Set(ctx, b.Key(target), data, b.ttl).Err(); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "store %s", target)
	}
	observability.Store().OnStore(ctx, kind, target, len(data))
	return b.publish(ctx, target, OpCreate)
}

// React replaces an existing visual. It fails with VISUAL_NOT_FOUND when the
// key is gone, for example after expiry.
func (b *Backend) React(ctx context.Context, target string, spec backend.Spec) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	data, err := spec.Encode()
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}
	ok, err := b.client.SetXX(ctx, b.Key(target), data, b.ttl).Result()
	if err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "update %s", target)
	}
	if !ok {
		return errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	observability.Store().OnStore(ctx, kind, target, len(data))
	return b.publish(ctx, target, OpUpdate)
}

// Purge deletes the visual.
func (b *Backend) Purge(ctx context.Context, target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	if err := b.client.Del(ctx, b.Key(target)).Err(); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "delete %s", target)
	}
	observability.Store().OnDelete(ctx, kind, target)
	return b.publish(ctx, target, OpPurge)
}

// Resize announces a layout recompute for an existing visual.
func (b *Backend) Resize(ctx context.Context, target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	n, err := b.client.Exists(ctx, b.Key(target)).Result()
	if err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "check %s", target)
	}
	if n == 0 {
		return errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	return b.publish(ctx, target, OpResize)
}

// Load reads the encoded spec of target.
func (b *Backend) Load(ctx context.Context, target string) ([]byte, error) {
	if err := errs.ValidateTarget(target); err != nil {
		return nil, err
	}
	data, err := b.client.Get(ctx, b.Key(target)).Bytes()
	if errors.Is(err, goredis.Nil) {
		observability.Store().OnLoad(ctx, kind, target, false)
		return nil, errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "load %s", target)
	}
	observability.Store().OnLoad(ctx, kind, target, true)
	return data, nil
}

// Subscribe streams events until ctx is cancelled. The returned channel is
// closed when the subscription ends.
func (b *Backend) Subscribe(ctx context.Context) <-chan Event {
	sub := b.client.Subscribe(ctx, b.Channel())
	out := make(chan Event)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				ev, err := DecodeEvent([]byte(msg.Payload))
				if err != nil {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Close releases the client.
func (b *Backend) Close() error {
	return b.client.Close()
}

func (b *Backend) publish(ctx context.Context, target, op string) error {
	payload, err := EncodeEvent(Event{Target: target, Op: op, At: time.Now().UTC()})
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode event")
	}
	if err := b.client.Publish(ctx, b.Channel(), payload).Err(); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "publish %s %s", op, target)
	}
	return nil
}

// EncodeEvent serializes an event for publishing.
func EncodeEvent(ev Event) ([]byte, error) {
	return json.Marshal(ev)
}

// DecodeEvent parses a published event.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Target == "" || ev.Op == "" {
		return Event{}, fmt.Errorf("decode event: missing target or op")
	}
	return ev, nil
}

var _ backend.Store = (*Backend)(nil)
