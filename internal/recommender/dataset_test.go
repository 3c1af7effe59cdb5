package recommender

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	ratings := writeTemp(t, "ratings.csv",
		"userId,movieId,rating,timestamp\n"+
			"1,1,4.0,964982703\n"+
			"1,3,4.5,964981247\n"+
			"2,1,3.5,847434962\n")
	movies := writeTemp(t, "movies.csv",
		"movieId,title,genres\n"+
			"1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy\n"+
			"3,\"Grumpier Old Men (1995)\",Comedy|Romance\n")

	ds, err := LoadCSV(ratings, movies)
	require.NoError(t, err)

	require.Len(t, ds.Ratings, 3)
	assert.Equal(t, 1, ds.Ratings[0].UserID)
	assert.InDelta(t, 4.0, ds.Ratings[0].Rating, 1e-9)
	assert.Equal(t, int64(964982703), ds.Ratings[0].Timestamp)

	require.Len(t, ds.Movies, 2)
	assert.Equal(t, "Toy Story (1995)", ds.Movies[0].Title)
	assert.Equal(t, []string{"Adventure", "Animation", "Children", "Comedy", "Fantasy"}, ds.Movies[0].Genres)
	assert.Equal(t, "Grumpier Old Men (1995)", ds.Movies[1].Title)
}

func TestLoadCSVErrors(t *testing.T) {
	movies := writeTemp(t, "movies.csv", "movieId,title,genres\n1,Heat (1995),Action\n")

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), movies)
		assert.Error(t, err)
	})

	t.Run("bad rating value names the row", func(t *testing.T) {
		ratings := writeTemp(t, "ratings.csv",
			"userId,movieId,rating,timestamp\n1,1,notanumber,100\n")
		_, err := LoadCSV(ratings, movies)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
	})
}

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"Action", "Crime"}, SplitGenres("Action|Crime"))
	assert.Equal(t, []string{"(no genres listed)"}, SplitGenres("(no genres listed)"))
	assert.Nil(t, SplitGenres(""))
}

func TestDatasetAggregates(t *testing.T) {
	ds := fixtureDataset()

	t.Run("ratings mean over rows only", func(t *testing.T) {
		assert.InDelta(t, 31.5/8, ds.RatingsMean(), 1e-9)
	})

	t.Run("by-user groups preserve row order", func(t *testing.T) {
		byUser := ds.ByUser()
		require.Len(t, byUser[1], 3)
		assert.Equal(t, 1, byUser[1][0].MovieID)
		assert.Equal(t, 2, byUser[1][1].MovieID)
		assert.Equal(t, 3, byUser[1][2].MovieID)
	})

	t.Run("popularity normalized to the most rated movie", func(t *testing.T) {
		pop := ds.Popularity()
		// movies 1, 2, 3 and 4 all have exactly 2 ratings
		assert.InDelta(t, 1.0, pop[1], 1e-9)
		assert.InDelta(t, 1.0, pop[3], 1e-9)
		_, ok := pop[5]
		assert.False(t, ok)
	})
}
