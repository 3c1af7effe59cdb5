package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentEngineSimilarityMatrix(t *testing.T) {
	ds := fixtureDataset()
	e := BuildContentEngine(ds.Movies)

	t.Run("identical genres score 1", func(t *testing.T) {
		s, ok := e.Similarity(1, 2)
		require.True(t, ok)
		assert.InDelta(t, 1.0, s, 1e-9)
	})

	t.Run("disjoint genres score 0", func(t *testing.T) {
		s, ok := e.Similarity(1, 3)
		require.True(t, ok)
		assert.Zero(t, s)
	})

	t.Run("partial overlap lands strictly between", func(t *testing.T) {
		s, ok := e.Similarity(1, 6)
		require.True(t, ok)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
	})

	t.Run("symmetric", func(t *testing.T) {
		for _, a := range e.MovieIDs() {
			for _, b := range e.MovieIDs() {
				sab, _ := e.Similarity(a, b)
				sba, _ := e.Similarity(b, a)
				assert.InDelta(t, sab, sba, 1e-9)
			}
		}
	})

	t.Run("unit diagonal for vectorizable movies", func(t *testing.T) {
		for _, id := range e.MovieIDs() {
			s, _ := e.Similarity(id, id)
			assert.InDelta(t, 1.0, s, 1e-9)
		}
	})

	t.Run("unknown movie", func(t *testing.T) {
		_, ok := e.Similarity(1, 999)
		assert.False(t, ok)
		assert.False(t, e.Has(999))
	})
}

func TestContentEngineTopSimilar(t *testing.T) {
	ds := fixtureDataset()
	e := BuildContentEngine(ds.Movies)

	t.Run("query movie excluded, sorted descending", func(t *testing.T) {
		sims, err := e.TopSimilar(1, 10)
		require.NoError(t, err)
		require.Len(t, sims, 5)

		for _, s := range sims {
			assert.NotEqual(t, 1, s.MovieID)
		}
		for i := 1; i < len(sims); i++ {
			assert.GreaterOrEqual(t, sims[i-1].Similarity, sims[i].Similarity)
		}
		// the identical-genre twin wins
		assert.Equal(t, 2, sims[0].MovieID)
		assert.InDelta(t, 1.0, sims[0].Similarity, 1e-9)
	})

	t.Run("truncates to n", func(t *testing.T) {
		sims, err := e.TopSimilar(1, 2)
		require.NoError(t, err)
		assert.Len(t, sims, 2)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		// movies 3, 4 and 5 are all similarity-0 to movie 1; they must
		// come back in catalog row order
		sims, err := e.TopSimilar(1, 10)
		require.NoError(t, err)

		var zeros []int
		for _, s := range sims {
			if s.Similarity == 0 {
				zeros = append(zeros, s.MovieID)
			}
		}
		assert.Equal(t, []int{3, 4, 5}, zeros)
	})

	t.Run("unknown movie is ErrNotFound", func(t *testing.T) {
		_, err := e.TopSimilar(999, 5)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
