// Package shapecache persists precomputed polygon vertex sets between
// sessions so expensive geometry (simplified or triangulated outlines)
// is not rebuilt on every launch. It is consumed by callers before shapes
// are constructed; nothing here runs inside a simulation step.
package shapecache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/hack-pad/hackpadfs"

	"github.com/hollowgrid/impact"
)

// ErrNotFound is returned when a key has no cached value.
var ErrNotFound = errors.New("shapecache: not found")

// Store is a minimal key to JSON-blob store. Implementations must return
// ErrNotFound (possibly wrapped) for absent keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// PutPolygon stores the vertex offsets under id.
func (c *Cache) PutPolygon(id string, verts []impact.Vector) error {
	data, err := json.Marshal(verts)
	if err != nil {
		return fmt.Errorf("shapecache: encode %s: %w", id, err)
	}
	return c.store.Set(id, data)
}

// Polygon returns the cached vertex offsets for id, or ErrNotFound.
func (c *Cache) Polygon(id string) ([]impact.Vector, error) {
	data, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}

	var verts []impact.Vector
	if err := json.Unmarshal(data, &verts); err != nil {
		return nil, fmt.Errorf("shapecache: decode %s: %w", id, err)
	}
	return verts, nil
}

// FSStore keeps one JSON file per key inside dir on any hackpadfs
// filesystem: OS disk, in-memory, or browser storage all work.
type FSStore struct {
	fs  hackpadfs.FS
	dir string
}

func NewFSStore(fsys hackpadfs.FS, dir string) (*FSStore, error) {
	if err := hackpadfs.MkdirAll(fsys, dir, 0755); err != nil {
		return nil, fmt.Errorf("shapecache: create %s: %w", dir, err)
	}
	return &FSStore{fs: fsys, dir: dir}, nil
}

func (s *FSStore) Get(key string) ([]byte, error) {
	data, err := fs.ReadFile(s.fs, s.keyPath(key))
	if errors.Is(err, hackpadfs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, err
}

func (s *FSStore) Set(key string, data []byte) error {
	return hackpadfs.WriteFullFile(s.fs, s.keyPath(key), data, 0644)
}

func (s *FSStore) keyPath(key string) string {
	return path.Join(s.dir, key+".json")
}
