package search

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/library"
	"github.com/hupe1980/shapesim/mesh"
	"github.com/hupe1980/shapesim/similarity"
	"github.com/hupe1980/shapesim/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibrary(t *testing.T, meshes ...mesh.RawMesh) *library.Library {
	t.Helper()
	lib := library.New()
	for _, m := range meshes {
		_, err := lib.Upsert(context.Background(), m.Name, m)
		require.NoError(t, err)
	}
	return lib
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestTopK(t *testing.T) {
	lib := newLibrary(t,
		testutil.Cube("query", 1),
		testutil.Box("long", 1, 1, 4),
		testutil.Cube("twin", 1),
		testutil.Box("tall", 1, 1, 2),
	)
	target, ok := lib.Get("query")
	require.True(t, ok)

	t.Run("BoundedBySize", func(t *testing.T) {
		results := TopK(target, lib, 5)

		require.Len(t, results, 3)
		assert.Equal(t, []string{"twin", "tall", "long"}, names(results))
		assert.Equal(t, 100, results[0].Similarity)
		assert.Equal(t, 73, results[1].Similarity)
		assert.True(t, slices.IsSortedFunc(results, func(a, b Result) int {
			return b.Similarity - a.Similarity
		}))
	})

	t.Run("Truncated", func(t *testing.T) {
		results := TopK(target, lib, 2)
		assert.Equal(t, []string{"twin", "tall"}, names(results))
	})

	t.Run("SelfExcluded", func(t *testing.T) {
		for k := range 6 {
			for _, r := range TopK(target, lib, k) {
				assert.NotEqual(t, target.Name, r.Name)
			}
		}
	})

	t.Run("FeaturesAttached", func(t *testing.T) {
		results := TopK(target, lib, 1)
		require.Len(t, results, 1)

		twin, _ := lib.Get("twin")
		assert.Equal(t, twin, results[0].Features)
		assert.Equal(t, similarity.Score(target, twin), results[0].Similarity)
	})

	t.Run("NonPositiveK", func(t *testing.T) {
		assert.NotNil(t, TopK(target, lib, 0))
		assert.Empty(t, TopK(target, lib, 0))
		assert.Empty(t, TopK(target, lib, -1))
	})
}

func TestTopKOnlyTarget(t *testing.T) {
	lib := newLibrary(t, testutil.Cube("only", 1))
	target, _ := lib.Get("only")

	assert.Empty(t, TopK(target, lib, 3))
	assert.Empty(t, TopK(target, library.New(), 3))
}

func TestTopKTieBreakInsertionOrder(t *testing.T) {
	lib := newLibrary(t,
		testutil.Cube("c", 1),
		testutil.Cube("a", 1),
		testutil.Box("odd", 3, 1, 1),
		testutil.Cube("b", 1),
	)

	// The query is not stored; all cubes tie at 100.
	target, err := feature.Extract(testutil.Cube("query", 1))
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a", "b", "odd"}, names(TopK(target, lib, 10)))
	assert.Equal(t, []string{"c", "a"}, names(TopK(target, lib, 2)))
}

func TestRankMatchesStableSort(t *testing.T) {
	rng := testutil.NewRNG(4711)

	var entries []library.Entry
	for i := range 60 {
		name := fmt.Sprintf("shape-%02d", i)
		v, err := feature.Extract(rng.ScaledBox(name, 1, 1.5))
		require.NoError(t, err)
		entries = append(entries, library.Entry{Name: name, Features: v})
	}
	target := entries[7].Features

	expected := make([]Result, 0, len(entries))
	for _, e := range entries {
		if e.Name == target.Name {
			continue
		}
		expected = append(expected, Result{Name: e.Name, Similarity: similarity.Score(target, e.Features), Features: e.Features})
	}
	slices.SortStableFunc(expected, func(a, b Result) int { return b.Similarity - a.Similarity })

	for _, k := range []int{1, 5, 20, 59, 100} {
		assert.Equal(t, expected[:min(k, len(expected))], Rank(target, entries, k), "k=%d", k)
	}
}
