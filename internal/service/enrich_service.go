package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"
)

// EnrichService runs TMDB metadata batches over movies that have not
// been enriched yet.
type EnrichService struct {
	cfg    *config.Config
	movies *repository.MovieRepository
	client *tmdb.Client
}

func NewEnrichService(cfg *config.Config, movies *repository.MovieRepository, client *tmdb.Client) *EnrichService {
	return &EnrichService{cfg: cfg, movies: movies, client: client}
}

// EnrichmentSummary reports one batch run.
type EnrichmentSummary struct {
	Processed int      `json:"processed"`
	Enriched  int      `json:"enriched"`
	NotFound  int      `json:"notFound"`
	Errors    []string `json:"errors,omitempty"`
}

// EnrichmentStatus reports overall catalog coverage.
type EnrichmentStatus struct {
	TotalMovies    int64   `json:"totalMovies"`
	EnrichedMovies int64   `json:"enrichedMovies"`
	Percent        float64 `json:"percent"`
}

func (s *EnrichService) Status(ctx context.Context) (*EnrichmentStatus, error) {
	total, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	enriched, err := s.movies.CountEnriched(ctx)
	if err != nil {
		return nil, err
	}
	st := &EnrichmentStatus{TotalMovies: total, EnrichedMovies: enriched}
	if total > 0 {
		st.Percent = float64(enriched) / float64(total) * 100
	}
	return st, nil
}

// RunBatch enriches up to limit movies, pausing between TMDB calls to
// stay under the API rate limit. Per-movie failures are collected, not
// fatal; a movie TMDB cannot find is still marked fetched so the next
// batch skips it.
func (s *EnrichService) RunBatch(ctx context.Context, limit int) (*EnrichmentSummary, error) {
	if s.client == nil {
		return nil, fmt.Errorf("tmdb api key not configured")
	}
	if limit <= 0 || limit > 1000 {
		limit = s.cfg.EnrichLimit
	}

	pending, err := s.movies.FindUnenriched(ctx, limit)
	if err != nil {
		return nil, err
	}

	delay := time.Duration(s.cfg.EnrichDelayMs) * time.Millisecond
	summary := &EnrichmentSummary{}

	for i, m := range pending {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return summary, ctx.Err()
			}
		}
		summary.Processed++

		title, year := tmdb.ParseTitleYear(m.Title)
		res, err := s.client.SearchMovie(ctx, title, year)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("movie %d: %v", m.MovieID, err))
			continue
		}

		ext := &models.ExternalData{TMDBFetched: true}
		if res == nil {
			summary.NotFound++
		} else {
			ext.TMDBID = res.ID
			ext.PosterPath = res.PosterPath
			ext.BackdropPath = res.BackdropPath
			ext.Overview = res.Overview
			ext.VoteAverage = res.VoteAverage
			ext.ReleaseDate = res.ReleaseDate
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if err := s.movies.SetExternalData(ctx, m.MovieID, ext, now); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("movie %d: %v", m.MovieID, err))
			continue
		}
		if res != nil {
			summary.Enriched++
		}
	}

	log.Printf("[enrich] batch done: processed=%d enriched=%d notFound=%d errors=%d",
		summary.Processed, summary.Enriched, summary.NotFound, len(summary.Errors))
	return summary, nil
}
