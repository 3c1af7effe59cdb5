package recommender

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
)

// Dataset is the fixed, preloaded ratings/movies tables. It is
// populated once (from CSV files or from Mongo) and never mutated;
// the engines built from it can be shared across request handlers
// without locking.
type Dataset struct {
	Ratings []models.Rating
	Movies  []models.Movie
}

// LoadCSV reads the two MovieLens tables. Both files are expected to
// carry a header row.
func LoadCSV(ratingsPath, moviesPath string) (*Dataset, error) {
	ratings, err := readRatingsCSV(ratingsPath)
	if err != nil {
		return nil, fmt.Errorf("loading ratings: %w", err)
	}
	movies, err := readMoviesCSV(moviesPath)
	if err != nil {
		return nil, fmt.Errorf("loading movies: %w", err)
	}
	return &Dataset{Ratings: ratings, Movies: movies}, nil
}

func readRatingsCSV(path string) ([]models.Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	out := make([]models.Rating, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) != 4 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 4", path, i+2, len(row))
		}
		userID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d userId: %w", path, i+2, err)
		}
		movieID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d movieId: %w", path, i+2, err)
		}
		rating, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d rating: %w", path, i+2, err)
		}
		ts, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d timestamp: %w", path, i+2, err)
		}
		out = append(out, models.Rating{UserID: userID, MovieID: movieID, Rating: rating, Timestamp: ts})
	}
	return out, nil
}

func readMoviesCSV(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	out := make([]models.Movie, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 3", path, i+2, len(row))
		}
		movieID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d movieId: %w", path, i+2, err)
		}
		out = append(out, models.Movie{
			MovieID: movieID,
			Title:   row[1],
			Genres:  SplitGenres(row[2]),
		})
	}
	return out, nil
}

// SplitGenres turns the pipe-delimited genres column into tags. An
// empty column yields nil.
func SplitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

// RatingsMean is the plain mean over all rating rows. This is the
// content-based cold-start fallback, distinct from the collaborative
// engine's matrix-wide mean (which averages over zero cells too).
func (d *Dataset) RatingsMean() float64 {
	if len(d.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range d.Ratings {
		sum += r.Rating
	}
	return sum / float64(len(d.Ratings))
}

// ByUser groups ratings per user, preserving input row order within
// each group.
func (d *Dataset) ByUser() map[int][]models.Rating {
	out := make(map[int][]models.Rating)
	for _, r := range d.Ratings {
		out[r.UserID] = append(out[r.UserID], r)
	}
	return out
}

// Popularity returns a rating-count based popularity score per movie,
// normalized so the most rated movie scores 1.0. Used as the novelty
// input of the evaluation harness.
func (d *Dataset) Popularity() map[int]float64 {
	counts := make(map[int]int)
	maxCount := 0
	for _, r := range d.Ratings {
		counts[r.MovieID]++
		if counts[r.MovieID] > maxCount {
			maxCount = counts[r.MovieID]
		}
	}
	out := make(map[int]float64, len(counts))
	if maxCount == 0 {
		return out
	}
	for id, c := range counts {
		out[id] = float64(c) / float64(maxCount)
	}
	return out
}
