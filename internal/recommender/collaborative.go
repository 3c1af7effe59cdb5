package recommender

import (
	"sort"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"gonum.org/v1/gonum/floats"
)

// CollaborativeEngine holds the dense user-item matrix and the
// user-user cosine similarity matrix derived from it. Built once over
// the training ratings, read-only afterwards.
type CollaborativeEngine struct {
	userIDs  []int // row order = first-appearance order in the ratings
	movieIDs []int // column order = first-appearance order
	rowOf    map[int]int
	colOf    map[int]int

	matrix [][]float64 // user x movie, 0 = unrated (real ratings are >= 0.5)
	sim    [][]float64 // user x user, symmetric

	matrixMean float64 // mean over every cell, zeros included
}

// BuildCollaborativeEngine pivots the ratings into a dense user-item
// matrix (absent cells 0.0) and computes pairwise cosine similarity
// over the full column space. Keeping the zero cells in the vectors
// deflates similarity for sparse users; downstream numbers depend on
// it, so it must stay.
func BuildCollaborativeEngine(ratings []models.Rating) *CollaborativeEngine {
	e := &CollaborativeEngine{
		rowOf: make(map[int]int),
		colOf: make(map[int]int),
	}

	for _, r := range ratings {
		if _, ok := e.rowOf[r.UserID]; !ok {
			e.rowOf[r.UserID] = len(e.userIDs)
			e.userIDs = append(e.userIDs, r.UserID)
		}
		if _, ok := e.colOf[r.MovieID]; !ok {
			e.colOf[r.MovieID] = len(e.movieIDs)
			e.movieIDs = append(e.movieIDs, r.MovieID)
		}
	}

	e.matrix = make([][]float64, len(e.userIDs))
	for i := range e.matrix {
		e.matrix[i] = make([]float64, len(e.movieIDs))
	}

	var total float64
	for _, r := range ratings {
		e.matrix[e.rowOf[r.UserID]][e.colOf[r.MovieID]] = r.Rating
	}
	for _, row := range e.matrix {
		total += floats.Sum(row)
	}
	if cells := len(e.userIDs) * len(e.movieIDs); cells > 0 {
		e.matrixMean = total / float64(cells)
	}

	norms := make([]float64, len(e.matrix))
	for i, row := range e.matrix {
		norms[i] = floats.Norm(row, 2)
	}

	n := len(e.matrix)
	e.sim = make([]([]float64), n)
	for i := range e.sim {
		e.sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if norms[i] > 0 {
			e.sim[i][i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			var s float64
			if norms[i] > 0 && norms[j] > 0 {
				s = floats.Dot(e.matrix[i], e.matrix[j]) / (norms[i] * norms[j])
			}
			e.sim[i][j] = s
			e.sim[j][i] = s
		}
	}
	return e
}

// HasUser reports whether the user has a row in the matrix.
func (e *CollaborativeEngine) HasUser(userID int) bool {
	_, ok := e.rowOf[userID]
	return ok
}

// HasMovie reports whether the movie has a column in the matrix.
func (e *CollaborativeEngine) HasMovie(movieID int) bool {
	_, ok := e.colOf[movieID]
	return ok
}

// UserIDs returns the matrix row order.
func (e *CollaborativeEngine) UserIDs() []int { return e.userIDs }

// MovieIDs returns the matrix column order.
func (e *CollaborativeEngine) MovieIDs() []int { return e.movieIDs }

// MatrixMean is the mean over the entire user-item matrix including
// zero (unrated) cells. Weak as a fallback value, kept for numeric
// parity with the evaluation baselines.
func (e *CollaborativeEngine) MatrixMean() float64 { return e.matrixMean }

// RatingOf returns the stored rating for (user, movie); 0 means the
// user never rated the movie.
func (e *CollaborativeEngine) RatingOf(userID, movieID int) float64 {
	i, ok := e.rowOf[userID]
	if !ok {
		return 0
	}
	j, ok := e.colOf[movieID]
	if !ok {
		return 0
	}
	return e.matrix[i][j]
}

// MovieMean is the mean rating of a movie over the users who actually
// rated it (zero cells excluded). Falls back to the matrix mean for a
// column with no raters.
func (e *CollaborativeEngine) MovieMean(movieID int) float64 {
	j, ok := e.colOf[movieID]
	if !ok {
		return e.matrixMean
	}
	var sum float64
	var n int
	for i := range e.matrix {
		if v := e.matrix[i][j]; v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return e.matrixMean
	}
	return sum / float64(n)
}

// UserSimilarity returns sim(a, b), with ok=false when either user is
// unknown.
func (e *CollaborativeEngine) UserSimilarity(a, b int) (float64, bool) {
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

// TopSimilarUsers returns the k users most similar to userID, self
// excluded, similarity descending with ties in matrix row order.
// Returns ErrNotFound for a user absent from the matrix.
func (e *CollaborativeEngine) TopSimilarUsers(userID, k int) ([]models.SimilarUser, error) {
	row, ok := e.rowOf[userID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]models.SimilarUser, 0, len(e.userIDs)-1)
	for j, otherID := range e.userIDs {
		if j == row {
			continue
		}
		out = append(out, models.SimilarUser{UserID: otherID, Similarity: e.sim[row][j]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}
