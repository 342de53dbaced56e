package shapesim

import (
	"context"
	"time"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/library"
	"github.com/hupe1980/shapesim/mesh"
	"github.com/hupe1980/shapesim/resource"
	"github.com/hupe1980/shapesim/search"
	"golang.org/x/sync/errgroup"
)

// Engine owns one shape library and answers similarity queries against it.
//
// An Engine is safe for concurrent use. Its lifetime is the lifetime of the
// collection it indexes; create one per collection.
type Engine struct {
	lib              *library.Library
	extract          feature.ExtractorFunc
	resources        *resource.Controller
	batchConcurrency int
	metrics          MetricsCollector
	logger           *Logger
}

// New creates an Engine with an empty library.
func New(optFns ...Option) *Engine {
	opts := applyOptions(optFns)
	return &Engine{
		lib: library.New(
			library.WithExtractor(opts.extractor),
			library.WithResourceController(opts.resources),
		),
		extract:          opts.extractor,
		resources:        opts.resources,
		batchConcurrency: opts.batchConcurrency,
		metrics:          opts.metricsCollector,
		logger:           opts.logger,
	}
}

// Library returns the underlying library.
func (e *Engine) Library() *library.Library {
	return e.lib
}

// Add analyzes m and stores its features under m.Name. If the name is
// already stored, the cached features are returned and m is not analyzed.
//
// Meshes without usable geometry are rejected with an error matching
// ErrNoGeometry and nothing is stored.
func (e *Engine) Add(ctx context.Context, m mesh.RawMesh) (feature.Vector, error) {
	start := time.Now()
	v, err := e.lib.Upsert(ctx, m.Name, m)
	err = translateError(err)
	e.metrics.RecordUpsert(time.Since(start), err)
	e.logger.LogUpsert(ctx, m.Name, m.VertexCount(), err)
	return v, err
}

// BatchAddResult reports the outcome of AddBatch per input mesh.
type BatchAddResult struct {
	Features []feature.Vector // zero value where the mesh failed
	Errors   []error          // nil for successful adds
}

// Failed returns the number of meshes that could not be added.
func (r BatchAddResult) Failed() int {
	n := 0
	for _, err := range r.Errors {
		if err != nil {
			n++
		}
	}
	return n
}

// AddBatch adds meshes concurrently, bounded by WithBatchConcurrency.
// A failing mesh does not stop the others. Results are reported in input order.
func (e *Engine) AddBatch(ctx context.Context, meshes []mesh.RawMesh) BatchAddResult {
	start := time.Now()
	result := BatchAddResult{
		Features: make([]feature.Vector, len(meshes)),
		Errors:   make([]error, len(meshes)),
	}

	var g errgroup.Group
	g.SetLimit(e.batchConcurrency)
	for i, m := range meshes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				result.Errors[i] = err
				return nil
			}
			v, err := e.lib.Upsert(ctx, m.Name, m)
			result.Features[i], result.Errors[i] = v, translateError(err)
			return nil
		})
	}
	_ = g.Wait()

	failed := result.Failed()
	e.metrics.RecordBatchUpsert(len(meshes), failed, time.Since(start))
	e.logger.LogBatchUpsert(ctx, len(meshes), failed)
	return result
}

// Remove evicts name from the library. It reports whether it was present.
func (e *Engine) Remove(ctx context.Context, name string) bool {
	start := time.Now()
	removed := e.lib.Remove(name)
	e.metrics.RecordRemove(time.Since(start), removed)
	e.logger.LogRemove(ctx, name, removed)
	return removed
}

// Clear empties the library.
func (e *Engine) Clear(ctx context.Context) {
	start := time.Now()
	n := e.lib.Len()
	e.lib.Clear()
	e.metrics.RecordClear(n, time.Since(start))
	e.logger.LogClear(ctx, n)
}

// Features returns the stored features of name.
func (e *Engine) Features(name string) (feature.Vector, error) {
	v, ok := e.lib.Get(name)
	if !ok {
		return feature.Vector{}, ErrNotFound
	}
	return v, nil
}

// FindSimilar returns up to k stored shapes most similar to the stored shape
// name, best first, excluding name itself.
func (e *Engine) FindSimilar(ctx context.Context, name string, k int) ([]search.Result, error) {
	return e.Search(name).K(k).Execute(ctx)
}

// FindSimilarToMesh analyzes m without storing it and returns up to k stored
// shapes most similar to it. A stored shape named m.Name is excluded.
func (e *Engine) FindSimilarToMesh(ctx context.Context, m mesh.RawMesh, k int) (feature.Vector, []search.Result, error) {
	start := time.Now()
	if k < 0 {
		e.metrics.RecordSearch(k, time.Since(start), ErrInvalidK)
		e.logger.LogSearch(ctx, m.Name, k, 0, ErrInvalidK)
		return feature.Vector{}, nil, ErrInvalidK
	}

	query, err := e.analyze(ctx, m)
	if err != nil {
		e.metrics.RecordSearch(k, time.Since(start), err)
		e.logger.LogSearch(ctx, m.Name, k, 0, err)
		return feature.Vector{}, nil, err
	}

	results := search.TopK(query, e.lib, k)
	e.metrics.RecordSearch(k, time.Since(start), nil)
	e.logger.LogSearch(ctx, m.Name, k, len(results), nil)
	return query, results, nil
}

func (e *Engine) analyze(ctx context.Context, m mesh.RawMesh) (feature.Vector, error) {
	release, err := e.resources.Reserve(ctx, m.SizeBytes(), m.VertexCount())
	if err != nil {
		return feature.Vector{}, translateError(err)
	}
	defer release()

	v, err := e.extract(m)
	if err != nil {
		return feature.Vector{}, translateError(err)
	}
	v.Name = m.Name
	return v, nil
}

// Stats summarizes the library.
type Stats struct {
	Shapes             int   `json:"shapes"`
	Vertices           int   `json:"vertices"`
	Faces              int   `json:"faces"`
	RunningExtractions int64 `json:"runningExtractions"`
	ExtractionBytes    int64 `json:"extractionBytes"`
}

// Stats returns a snapshot of library size and in-flight extraction load.
func (e *Engine) Stats() Stats {
	entries := e.lib.Entries()
	s := Stats{
		Shapes:             len(entries),
		RunningExtractions: e.resources.RunningExtractions(),
		ExtractionBytes:    e.resources.MemoryUsage(),
	}
	for _, entry := range entries {
		s.Vertices += entry.Features.VertexCount
		s.Faces += entry.Features.FaceCount
	}
	return s
}
