package library

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/mesh"
	"github.com/hupe1980/shapesim/resource"
	"github.com/hupe1980/shapesim/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingExtractor wraps feature.Extract and counts invocations.
type countingExtractor struct {
	calls atomic.Int64
}

func (c *countingExtractor) Extract(m mesh.RawMesh) (feature.Vector, error) {
	c.calls.Add(1)
	return feature.Extract(m)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Memoized", func(t *testing.T) {
		counter := &countingExtractor{}
		lib := New(WithExtractor(counter.Extract))

		first, err := lib.Upsert(ctx, "cube", testutil.Cube("cube", 1))
		require.NoError(t, err)

		// Different geometry under the same name is ignored.
		second, err := lib.Upsert(ctx, "cube", testutil.Box("cube", 1, 1, 2))
		require.NoError(t, err)

		assert.Equal(t, int64(1), counter.calls.Load())
		assert.Equal(t, first, second)
		assert.Equal(t, 1.0, second.Volume)
	})

	t.Run("NameFromKey", func(t *testing.T) {
		lib := New()

		v, err := lib.Upsert(ctx, "chair", testutil.Cube("decoder-label", 1))
		require.NoError(t, err)
		assert.Equal(t, "chair", v.Name)

		stored, ok := lib.Get("chair")
		require.True(t, ok)
		assert.Equal(t, v, stored)
	})

	t.Run("EmptyName", func(t *testing.T) {
		counter := &countingExtractor{}
		lib := New(WithExtractor(counter.Extract))

		_, err := lib.Upsert(ctx, "", testutil.Cube("", 1))
		require.ErrorIs(t, err, ErrEmptyName)
		assert.Zero(t, counter.calls.Load())
		assert.Zero(t, lib.Len())
	})

	t.Run("NoGeometryStoresNothing", func(t *testing.T) {
		lib := New()

		_, err := lib.Upsert(ctx, "empty", mesh.RawMesh{Name: "empty"})
		require.ErrorIs(t, err, feature.ErrNoGeometry)
		assert.False(t, lib.Contains("empty"))
		assert.Zero(t, lib.Len())

		// A later valid mesh for the same name is accepted.
		_, err = lib.Upsert(ctx, "empty", testutil.Cube("empty", 1))
		require.NoError(t, err)
		assert.True(t, lib.Contains("empty"))
	})

	t.Run("ResourceLimitError", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 8})
		lib := New(WithResourceController(rc))

		_, err := lib.Upsert(ctx, "cube", testutil.Cube("cube", 1))
		require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		assert.Zero(t, lib.Len())
	})
}

func TestUpsertConcurrentSameName(t *testing.T) {
	var calls atomic.Int64
	started := make(chan struct{})
	release := make(chan struct{})

	lib := New(WithExtractor(func(m mesh.RawMesh) (feature.Vector, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return feature.Extract(m)
	}))

	const callers = 16

	var (
		wg      sync.WaitGroup
		results [callers]feature.Vector
		errs    [callers]error
	)

	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = lib.Upsert(context.Background(), "cube", testutil.Cube("cube", 1))
		}()
	}

	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, 1, lib.Len())
}

func TestUpsertCanceledCallerLeavesWholeEntry(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	lib := New(WithExtractor(func(m mesh.RawMesh) (feature.Vector, error) {
		close(started)
		<-release
		return feature.Extract(m)
	}))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := lib.Upsert(ctx, "cube", testutil.Cube("cube", 1))
		done <- err
	}()

	<-started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// Nothing visible while the extraction is still running.
	assert.False(t, lib.Contains("cube"))

	close(release)
	require.Eventually(t, func() bool { return lib.Contains("cube") }, time.Second, time.Millisecond)

	v, ok := lib.Get("cube")
	require.True(t, ok)
	assert.Equal(t, 36, v.VertexCount)
	assert.Equal(t, 1.0, v.Volume)
}

func TestUpsertExtractorError(t *testing.T) {
	boom := errors.New("boom")
	lib := New(WithExtractor(func(mesh.RawMesh) (feature.Vector, error) {
		return feature.Vector{}, boom
	}))

	_, err := lib.Upsert(context.Background(), "x", testutil.Cube("x", 1))
	require.ErrorIs(t, err, boom)
	assert.False(t, lib.Contains("x"))
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	lib := New()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := lib.Upsert(ctx, name, testutil.Cube(name, 1))
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, lib.Names())

	assert.True(t, lib.Remove("b"))
	assert.False(t, lib.Remove("b"))
	assert.False(t, lib.Remove("missing"))
	assert.Equal(t, []string{"a", "c", "d"}, lib.Names())

	v, ok := lib.Get("d")
	require.True(t, ok)
	assert.Equal(t, "d", v.Name)

	// Re-upserting a removed name appends it.
	_, err := lib.Upsert(ctx, "b", testutil.Box("b", 1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d", "b"}, lib.Names())

	v, ok = lib.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2.0, v.Volume)

	lib.Clear()
	assert.Zero(t, lib.Len())
	assert.Empty(t, lib.Entries())
	_, ok = lib.Get("a")
	assert.False(t, ok)
}

func TestEntriesSnapshot(t *testing.T) {
	ctx := context.Background()
	lib := New()

	_, err := lib.Upsert(ctx, "a", testutil.Cube("a", 1))
	require.NoError(t, err)

	snapshot := lib.Entries()
	require.Len(t, snapshot, 1)

	_, err = lib.Upsert(ctx, "b", testutil.Cube("b", 2))
	require.NoError(t, err)
	lib.Remove("a")

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "a", snapshot[0].Name)
	assert.Equal(t, "a", snapshot[0].Features.Name)
}
