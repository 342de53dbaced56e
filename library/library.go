package library

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/mesh"
	"github.com/hupe1980/shapesim/resource"
	"golang.org/x/sync/singleflight"
)

// ErrEmptyName is returned when a library key is empty.
var ErrEmptyName = errors.New("library: empty shape name")

// Entry is one stored shape.
type Entry struct {
	Name     string         `json:"name"`
	Features feature.Vector `json:"features"`
}

// Library maps unique shape names to feature vectors.
// It is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int

	inflight singleflight.Group
	extract  feature.ExtractorFunc
	rc       *resource.Controller
}

// Option configures a Library.
type Option func(*Library)

// WithExtractor replaces feature.Extract. Mainly useful for instrumentation.
func WithExtractor(fn feature.ExtractorFunc) Option {
	return func(l *Library) {
		if fn != nil {
			l.extract = fn
		}
	}
}

// WithResourceController bounds extractions with rc. Pass nil for no limits.
func WithResourceController(rc *resource.Controller) Option {
	return func(l *Library) {
		l.rc = rc
	}
}

// New creates an empty Library.
func New(optFns ...Option) *Library {
	l := &Library{
		index:   make(map[string]int),
		extract: feature.Extract,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(l)
		}
	}
	return l
}

// Upsert returns the feature vector stored under name, computing it from m
// first if the name is not yet present. The stored vector carries name as
// its Name regardless of m.Name.
//
// If ctx is canceled while the extraction runs, Upsert returns ctx.Err() but
// the extraction itself continues and its result is stored whole; nothing
// partial is ever stored. Extraction errors store nothing.
//
// A Remove or Clear that races an in-flight Upsert for the same name does
// not cancel it: the Upsert stores its result when it completes.
func (l *Library) Upsert(ctx context.Context, name string, m mesh.RawMesh) (feature.Vector, error) {
	if name == "" {
		return feature.Vector{}, ErrEmptyName
	}
	if v, ok := l.Get(name); ok {
		return v, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := l.inflight.DoChan(name, func() (any, error) {
		// A flight that finished between Get and DoChan has already stored.
		if v, ok := l.Get(name); ok {
			return v, nil
		}
		return l.compute(detached, name, m)
	})

	select {
	case <-ctx.Done():
		return feature.Vector{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return feature.Vector{}, res.Err
		}
		return res.Val.(feature.Vector), nil
	}
}

func (l *Library) compute(ctx context.Context, name string, m mesh.RawMesh) (feature.Vector, error) {
	release, err := l.rc.Reserve(ctx, m.SizeBytes(), m.VertexCount())
	if err != nil {
		return feature.Vector{}, err
	}
	defer release()

	v, err := l.extract(m)
	if err != nil {
		return feature.Vector{}, err
	}
	v.Name = name

	return l.store(v), nil
}

// store inserts v unless its name is already present and returns the stored value.
func (l *Library) store(v feature.Vector) feature.Vector {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.index[v.Name]; ok {
		return l.entries[i].Features
	}
	l.index[v.Name] = len(l.entries)
	l.entries = append(l.entries, Entry{Name: v.Name, Features: v})
	return v
}

// Get returns the vector stored under name.
func (l *Library) Get(name string) (feature.Vector, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[name]
	if !ok {
		return feature.Vector{}, false
	}
	return l.entries[i].Features, true
}

// Contains reports whether name is stored.
func (l *Library) Contains(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.index[name]
	return ok
}

// Remove evicts name. It reports whether an entry was removed.
func (l *Library) Remove(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[name]
	if !ok {
		return false
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	delete(l.index, name)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].Name] = j
	}
	return true
}

// Clear removes every entry.
func (l *Library) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	clear(l.index)
}

// Entries returns a snapshot of all entries in insertion order.
func (l *Library) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.entries)
}

// Names returns the stored names in insertion order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}
