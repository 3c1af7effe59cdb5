package recommender

import (
	"sort"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"gonum.org/v1/gonum/floats"
)

// ContentEngine holds the movie-movie cosine similarity matrix built
// from TF-IDF encoded genre tags. Built once, read-only afterwards.
type ContentEngine struct {
	movieIDs []int       // row order = catalog order
	rowOf    map[int]int // movieId -> row
	movies   map[int]models.Movie
	sim      [][]float64 // symmetric, unit diagonal
}

// BuildContentEngine encodes each movie's genre tags (pipe delimiter
// normalized to spaces, missing genres as empty string) with TF-IDF
// and computes the full pairwise cosine matrix.
func BuildContentEngine(movies []models.Movie) *ContentEngine {
	e := &ContentEngine{
		movieIDs: make([]int, len(movies)),
		rowOf:    make(map[int]int, len(movies)),
		movies:   make(map[int]models.Movie, len(movies)),
	}

	docs := make([]string, len(movies))
	for i, m := range movies {
		e.movieIDs[i] = m.MovieID
		e.rowOf[m.MovieID] = i
		e.movies[m.MovieID] = m
		docs[i] = strings.Join(m.Genres, " ")
	}

	rows := tfidfEncode(docs)

	// Rows are L2-normalized, so cosine similarity reduces to a dot
	// product. Only the upper triangle is computed.
	n := len(rows)
	e.sim = make([][]float64, n)
	for i := range e.sim {
		e.sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		e.sim[i][i] = selfSimilarity(rows[i])
		for j := i + 1; j < n; j++ {
			s := floats.Dot(rows[i], rows[j])
			e.sim[i][j] = s
			e.sim[j][i] = s
		}
	}
	return e
}

// selfSimilarity is 1.0 for any row with a non-zero norm and 0 for a
// movie whose genre string vectorized to nothing.
func selfSimilarity(row []float64) float64 {
	if floats.Norm(row, 2) > 0 {
		return 1.0
	}
	return 0
}

// Has reports whether the movie appears in the similarity matrix.
func (e *ContentEngine) Has(movieID int) bool {
	_, ok := e.rowOf[movieID]
	return ok
}

// Similarity returns sim(a, b), with ok=false when either movie is
// unknown to the matrix.
func (e *ContentEngine) Similarity(a, b int) (float64, bool) {
	i, ok := e.rowOf[a]
	if !ok {
		return 0, false
	}
	j, ok := e.rowOf[b]
	if !ok {
		return 0, false
	}
	return e.sim[i][j], true
}

// Size is the number of movies in the matrix.
func (e *ContentEngine) Size() int { return len(e.movieIDs) }

// MovieIDs returns the matrix row order (catalog order).
func (e *ContentEngine) MovieIDs() []int { return e.movieIDs }

// TopSimilar returns up to n movies most similar to movieID, the
// query movie itself excluded, sorted by similarity descending with
// ties kept in catalog row order. Returns ErrNotFound for a movie
// absent from the matrix.
func (e *ContentEngine) TopSimilar(movieID, n int) ([]models.SimilarMovie, error) {
	row, ok := e.rowOf[movieID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]models.SimilarMovie, 0, len(e.movieIDs)-1)
	for j, otherID := range e.movieIDs {
		if j == row {
			continue
		}
		m := e.movies[otherID]
		out = append(out, models.SimilarMovie{
			MovieID:    otherID,
			Title:      m.Title,
			Genres:     m.Genres,
			Similarity: e.sim[row][j],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
