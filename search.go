package shapesim

import (
	"context"
	"iter"
	"time"

	"github.com/hupe1980/shapesim/search"
)

// Search creates a new fluent search builder for the stored shape name.
//
// Example:
//
//	results, err := eng.Search("chair").
//	    K(10).
//	    MinSimilarity(60).
//	    Execute(ctx)
//
//	// Or with streaming:
//	for r, err := range eng.Search("chair").K(100).Stream(ctx) {
//	    if err != nil { return err }
//	    if r.Similarity < 80 { break }
//	    process(r)
//	}
func (e *Engine) Search(name string) *SearchBuilder {
	return &SearchBuilder{
		eng:  e,
		name: name,
		k:    10, // Default k
	}
}

// SearchBuilder is a fluent builder for constructing similarity queries.
type SearchBuilder struct {
	eng           *Engine
	name          string
	k             int
	minSimilarity int
	filterFunc    func(name string) bool
}

// K sets the maximum number of results.
func (sb *SearchBuilder) K(k int) *SearchBuilder {
	sb.k = k
	return sb
}

// MinSimilarity drops results scoring below threshold (0..100).
func (sb *SearchBuilder) MinSimilarity(threshold int) *SearchBuilder {
	sb.minSimilarity = threshold
	return sb
}

// Filter restricts candidates to names for which fn returns true.
func (sb *SearchBuilder) Filter(fn func(name string) bool) *SearchBuilder {
	sb.filterFunc = fn
	return sb
}

// Execute runs the query.
//
// It fails with ErrInvalidK for a negative k and ErrNotFound when the query
// shape is not stored. k == 0 returns an empty result.
func (sb *SearchBuilder) Execute(ctx context.Context) ([]search.Result, error) {
	e := sb.eng
	start := time.Now()

	results, err := sb.run()
	if err != nil {
		e.metrics.RecordSearch(sb.k, time.Since(start), err)
		e.logger.LogSearch(ctx, sb.name, sb.k, 0, err)
		return nil, err
	}

	e.metrics.RecordSearch(sb.k, time.Since(start), nil)
	e.logger.LogSearch(ctx, sb.name, sb.k, len(results), nil)
	return results, nil
}

// Stream runs the query and yields results best first.
//
// The iterator supports early termination by breaking from the loop. If the
// query fails, or ctx is done before the results are exhausted, the error is
// yielded once with a zero result and iteration ends.
func (sb *SearchBuilder) Stream(ctx context.Context) iter.Seq2[search.Result, error] {
	return func(yield func(search.Result, error) bool) {
		results, err := sb.Execute(ctx)
		if err != nil {
			yield(search.Result{}, err)
			return
		}
		for _, r := range results {
			if err := ctx.Err(); err != nil {
				yield(search.Result{}, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

func (sb *SearchBuilder) run() ([]search.Result, error) {
	if sb.k < 0 {
		return nil, ErrInvalidK
	}

	target, ok := sb.eng.lib.Get(sb.name)
	if !ok {
		return nil, ErrNotFound
	}

	entries := sb.eng.lib.Entries()
	if sb.filterFunc != nil {
		kept := entries[:0]
		for _, entry := range entries {
			if sb.filterFunc(entry.Name) {
				kept = append(kept, entry)
			}
		}
		entries = kept
	}

	results := search.Rank(target, entries, sb.k)
	if sb.minSimilarity > 0 {
		// Results are sorted, so the first miss ends the list.
		for i, r := range results {
			if r.Similarity < sb.minSimilarity {
				results = results[:i]
				break
			}
		}
	}
	return results, nil
}
