package rank

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	t.Run("KeepsBest", func(t *testing.T) {
		q := NewQueue(2)

		assert.True(t, q.Push(Item{Ordinal: 0, Score: 10}))
		assert.True(t, q.Push(Item{Ordinal: 1, Score: 50}))
		assert.True(t, q.Push(Item{Ordinal: 2, Score: 30}))
		assert.False(t, q.Push(Item{Ordinal: 3, Score: 5}))

		worst, ok := q.Worst()
		assert.True(t, ok)
		assert.Equal(t, 30, worst.Score)

		assert.Equal(t, []Item{{Ordinal: 1, Score: 50}, {Ordinal: 2, Score: 30}}, q.Drain())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("TieBreakByOrdinal", func(t *testing.T) {
		q := NewQueue(3)
		for i := range 5 {
			q.Push(Item{Ordinal: i, Score: 70})
		}
		assert.Equal(t, []Item{{0, 70}, {1, 70}, {2, 70}}, q.Drain())
	})

	t.Run("ZeroCapacity", func(t *testing.T) {
		q := NewQueue(0)
		assert.False(t, q.Push(Item{Score: 100}))
		_, ok := q.Worst()
		assert.False(t, ok)
		assert.Empty(t, q.Drain())

		assert.Empty(t, NewQueue(-3).Drain())
	})
}

func TestQueueMatchesStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))

	for range 50 {
		n := rng.Intn(200)
		k := rng.Intn(20) + 1

		items := make([]Item, n)
		for i := range items {
			items[i] = Item{Ordinal: i, Score: rng.Intn(10) * 10}
		}

		q := NewQueue(k)
		for _, it := range items {
			q.Push(it)
		}

		expected := slices.Clone(items)
		slices.SortStableFunc(expected, func(a, b Item) int { return b.Score - a.Score })
		expected = expected[:min(k, n)]

		assert.Equal(t, expected, q.Drain())
	}
}
