package service

import (
	"context"
	"fmt"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
)

// MovieService answers catalog queries against Mongo.
type MovieService struct {
	movies  *repository.MovieRepository
	ratings *repository.RatingRepository
}

func NewMovieService(movies *repository.MovieRepository, ratings *repository.RatingRepository) *MovieService {
	return &MovieService{movies: movies, ratings: ratings}
}

func (s *MovieService) GetByID(ctx context.Context, movieID int) (*models.MovieDoc, error) {
	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if m == nil {
		return nil, recommender.ErrNotFound
	}
	return m, nil
}

// SearchParams bundles the catalog search filters.
type SearchParams struct {
	Query    string
	Genre    string
	YearFrom int
	YearTo   int
	Limit    int
	Offset   int
}

func (s *MovieService) Search(ctx context.Context, p SearchParams) ([]models.MovieDoc, error) {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return s.movies.Search(ctx, p.Query, p.Genre, p.YearFrom, p.YearTo, p.Limit, p.Offset)
}

// Top lists movies by rating count ("popular") or average ("rating").
func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	if metric != "popular" && metric != "rating" {
		metric = "popular"
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.movies.Top(ctx, metric, limit)
}

// UserRatings pages through one user's rating rows.
func (s *MovieService) UserRatings(ctx context.Context, userID, limit, offset int) ([]models.Rating, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
