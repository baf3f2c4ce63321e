// Package store abstracts the object stores holding raw extracts and
// cleansed output. Backends register themselves by kind; callers select one
// through configuration, mirroring how pipeline storage backends are wired
// elsewhere in this codebase.
package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Object describes one stored object.
type Object struct {
	Key  string
	Size int64
}

// Store is the minimal object-store surface the pipeline needs.
//
// Write has overwrite semantics: writing an existing key fully replaces it.
// Implementations must make Write all-or-nothing per key: a reader never
// observes a half-written object.
type Store interface {
	// List returns objects under prefix in ascending key order.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Read opens an object for reading. The caller closes the reader.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Write stores data at key, replacing any existing object.
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources. Call once at shutdown.
	Close()
}

// Config selects and parameterizes a backend.
type Config struct {
	// Kind is a registered backend kind ("s3", "local").
	Kind string

	// Bucket is the S3 bucket, or the root directory for the local backend.
	Bucket string

	// Region is used by the s3 backend; ignored elsewhere.
	Region string
}

type factory func(ctx context.Context, cfg Config) (Store, error)

var (
	mu        sync.RWMutex
	factories = map[string]factory{}
)

// Register registers a backend factory under a kind. Call from an init()
// in the backend package. Registering a kind twice panics.
func Register(kind string, f factory) {
	mu.Lock()
	defer mu.Unlock()

	if kind == "" {
		panic("store: Register called with empty kind")
	}
	if f == nil {
		panic("store: Register called with nil factory")
	}
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("store: factory already registered for kind=%q", kind))
	}
	factories[kind] = f
}

// New constructs a Store for the configured kind.
func New(ctx context.Context, cfg Config) (Store, error) {
	if cfg.Kind == "" {
		return nil, fmt.Errorf("store: missing kind")
	}

	mu.RLock()
	f := factories[cfg.Kind]
	mu.RUnlock()

	if f == nil {
		return nil, fmt.Errorf("store: unsupported kind=%q", cfg.Kind)
	}
	return f(ctx, cfg)
}

// ReplacePrefix gives a prefix full-overwrite semantics: it writes the new
// object first, then deletes every stale key under the prefix. Until the new
// object is fully written the old output remains authoritative, so a failed
// run leaves the previous dataset intact and a re-run is idempotent.
func ReplacePrefix(ctx context.Context, s Store, prefix, name string, data []byte) error {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	key := prefix + name

	if err := s.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	objs, err := s.List(ctx, prefix)
	if err != nil {
		return fmt.Errorf("list %s: %w", prefix, err)
	}
	for _, o := range objs {
		if o.Key == key {
			continue
		}
		if err := s.Delete(ctx, o.Key); err != nil {
			return fmt.Errorf("delete stale %s: %w", o.Key, err)
		}
	}
	return nil
}

// ReadAll fetches a whole object into memory. Unit inputs are read
// all-or-nothing, so partial reads never feed a transformation.
func ReadAll(ctx context.Context, s Store, key string) ([]byte, error) {
	rc, err := s.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
