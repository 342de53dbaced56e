// Package search ranks library entries by similarity to a query.
package search

import (
	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/internal/rank"
	"github.com/hupe1980/shapesim/library"
	"github.com/hupe1980/shapesim/similarity"
)

// Result is one ranked match.
type Result struct {
	Name       string         `json:"name"`
	Similarity int            `json:"similarity"`
	Features   feature.Vector `json:"features"`
}

// Source provides the entries to rank, in insertion order.
// *library.Library implements Source.
type Source interface {
	Entries() []library.Entry
}

// TopK returns up to k entries of src most similar to target, best first.
//
// Entries named like the target are skipped. Equal scores keep the order of
// src.Entries(). A k <= 0 returns an empty result.
func TopK(target feature.Vector, src Source, k int) []Result {
	if k <= 0 {
		return []Result{}
	}
	return Rank(target, src.Entries(), k)
}

// Rank is TopK over an explicit entry snapshot.
func Rank(target feature.Vector, entries []library.Entry, k int) []Result {
	if k <= 0 {
		return []Result{}
	}

	q := rank.NewQueue(k)
	for i, e := range entries {
		if e.Name == target.Name {
			continue
		}
		q.Push(rank.Item{Ordinal: i, Score: similarity.Score(target, e.Features)})
	}

	items := q.Drain()
	results := make([]Result, len(items))
	for i, it := range items {
		e := entries[it.Ordinal]
		results[i] = Result{
			Name:       e.Name,
			Similarity: it.Score,
			Features:   e.Features,
		}
	}
	return results
}
