// Package mongo provides a plotting backend backed by MongoDB.
//
// Each render target is one document in the figures collection:
//
//	{_id: <target>, spec: <encoded spec>, version: n, updated_at: ..., resized_at: ...}
//
// The spec is kept as its JSON encoding rather than converted to BSON so the
// bytes served to the browser are exactly what the figure produced.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

const kind = backend.KindMongo

// Defaults for Config.
const (
	DefaultDatabase   = "neuroplot"
	DefaultCollection = "figures"
)

// Config holds connection settings.
type Config struct {
	URI        string // mongodb:// or mongodb+srv:// connection string
	Database   string
	Collection string
}

// Document is the stored form of a visual.
type Document struct {
	Target    string    `bson:"_id"`
	Spec      string    `bson:"spec"`
	Version   int       `bson:"version"`
	UpdatedAt time.Time `bson:"updated_at"`
	ResizedAt time.Time `bson:"resized_at,omitempty"`
}

// Backend stores visuals in a MongoDB collection.
type Backend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to MongoDB and verifies the connection.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	if err := errs.ValidateURL(cfg.URI, "mongodb", "mongodb+srv"); err != nil {
		return nil, err
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "ping mongodb")
	}
	return &Backend{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// NewPlot upserts a fresh document for target.
func (b *Backend) NewPlot(ctx context.Context, target string, spec backend.Spec) error {
	doc, err := NewDocument(target, spec, time.Now().UTC())
	if err != nil {
		return err
	}
	_, err = b.coll.ReplaceOne(ctx, bson.M{"_id": target}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "store %s", target)
	}
	observability.Store().OnStore(ctx, kind, target, len(doc.Spec))
	return nil
}

// React replaces the spec of an existing document and bumps its version.
func (b *Backend) React(ctx context.Context, target string, spec backend.Spec) error {
	doc, err := NewDocument(target, spec, time.Now().UTC())
	if err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{"spec": doc.Spec, "updated_at": doc.UpdatedAt},
		"$inc": bson.M{"version": 1},
	}
	res, err := b.coll.UpdateOne(ctx, bson.M{"_id": target}, update)
	if err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "update %s", target)
	}
	if res.MatchedCount == 0 {
		return errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	observability.Store().OnStore(ctx, kind, target, len(doc.Spec))
	return nil
}

// Purge deletes target's document.
func (b *Backend) Purge(ctx context.Context, target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": target}); err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "delete %s", target)
	}
	observability.Store().OnDelete(ctx, kind, target)
	return nil
}

// Resize stamps resized_at so pollers know to recompute the layout.
func (b *Backend) Resize(ctx context.Context, target string) error {
	if err := errs.ValidateTarget(target); err != nil {
		return err
	}
	res, err := b.coll.UpdateOne(ctx, bson.M{"_id": target},
		bson.M{"$set": bson.M{"resized_at": time.Now().UTC()}})
	if err != nil {
		return errs.Wrap(errs.ErrCodeBackend, err, "resize %s", target)
	}
	if res.MatchedCount == 0 {
		return errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	return nil
}

// Load returns the encoded spec of target.
func (b *Backend) Load(ctx context.Context, target string) ([]byte, error) {
	if err := errs.ValidateTarget(target); err != nil {
		return nil, err
	}
	var doc Document
	err := b.coll.FindOne(ctx, bson.M{"_id": target}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observability.Store().OnLoad(ctx, kind, target, false)
		return nil, errs.New(errs.ErrCodeVisualNotFound, "no visual rendered into %q", target)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeBackend, err, "load %s", target)
	}
	observability.Store().OnLoad(ctx, kind, target, true)
	return []byte(doc.Spec), nil
}

// Close disconnects the client.
func (b *Backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

// NewDocument builds the version-1 document for a freshly created visual.
func NewDocument(target string, spec backend.Spec, now time.Time) (Document, error) {
	if err := errs.ValidateTarget(target); err != nil {
		return Document{}, err
	}
	data, err := spec.Encode()
	if err != nil {
		return Document{}, errs.Wrap(errs.ErrCodeInternal, err, "encode %s", target)
	}
	return Document{
		Target:    target,
		Spec:      string(data),
		Version:   1,
		UpdatedAt: now,
	}, nil
}

var _ backend.Store = (*Backend)(nil)
