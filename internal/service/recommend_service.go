package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
)

const (
	DefaultN = 20
)

// RecommendService fronts the in-memory engines: point predictions,
// similarity lookups and hybrid top-N lists, with a Redis cache and a
// Mongo history trail for served lists.
type RecommendService struct {
	cfg       *config.Config
	predictor *recommender.Predictor
	content   *recommender.ContentEngine
	collab    *recommender.CollaborativeEngine
	titles    map[int]models.Movie
	recRepo   *repository.RecommendationRepository // nil in offline tools
}

func NewRecommendService(
	cfg *config.Config,
	ds *recommender.Dataset,
	content *recommender.ContentEngine,
	collab *recommender.CollaborativeEngine,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	predictor := recommender.NewPredictor(ds, content, collab)
	predictor.CFNeighbors = cfg.CFNeighbors
	predictor.CBNeighbors = cfg.CBNeighbors

	titles := make(map[int]models.Movie, len(ds.Movies))
	for _, m := range ds.Movies {
		titles[m.MovieID] = m
	}

	return &RecommendService{
		cfg:       cfg,
		predictor: predictor,
		content:   content,
		collab:    collab,
		titles:    titles,
		recRepo:   recRepo,
	}
}

// SimilarMovies answers the content-similarity lookup.
func (s *RecommendService) SimilarMovies(movieID, n int) ([]models.SimilarMovie, error) {
	if n <= 0 {
		n = 10
	} else if n > s.cfg.MaxRecommend {
		n = s.cfg.MaxRecommend
	}
	return s.content.TopSimilar(movieID, n)
}

// SimilarUsers answers the user-similarity lookup.
func (s *RecommendService) SimilarUsers(userID, k int) ([]models.SimilarUser, error) {
	if k <= 0 {
		k = 10
	} else if k > s.cfg.MaxRecommend {
		k = s.cfg.MaxRecommend
	}
	return s.collab.TopSimilarUsers(userID, k)
}

// Predict routes a point prediction to the requested method.
// Method is one of "collaborative", "content", "hybrid".
func (s *RecommendService) Predict(userID, movieID int, method string, collabWeight, contentWeight float64) (recommender.Prediction, error) {
	switch method {
	case "collaborative":
		return s.predictor.PredictCollaborative(userID, movieID, s.cfg.CFNeighbors), nil
	case "content":
		return s.predictor.PredictContentBased(userID, movieID, s.cfg.CBNeighbors), nil
	case "hybrid":
		return s.predictor.PredictHybrid(userID, movieID, collabWeight, contentWeight), nil
	default:
		return recommender.Prediction{}, fmt.Errorf("unknown prediction method %q", method)
	}
}

// RecRequest carries the runtime knobs of a hybrid top-N request.
type RecRequest struct {
	UserID   int
	N        int
	CBWeight float64
	Refresh  bool
}

func cacheKey(req RecRequest) string {
	// cached per user + n + weight; refresh only decides whether the
	// cache is consulted
	return fmt.Sprintf("rec:user:%d:n:%d:cb:%.2f", req.UserID, req.N, req.CBWeight)
}

// Recommend produces the hybrid top-N list for a user, consulting the
// Redis cache first and recording served lists in Mongo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	if req.N <= 0 {
		req.N = DefaultN
	} else if req.N > s.cfg.MaxRecommend {
		req.N = s.cfg.MaxRecommend
	}
	if req.CBWeight < 0 || req.CBWeight > 1 {
		req.CBWeight = s.cfg.HybridCB
	}

	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := s.predictor.RecommendHybrid(req.UserID, req.N, s.cfg.RecentK, req.CBWeight)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if m, ok := s.titles[items[i].MovieID]; ok {
			items[i].Title = m.Title
		}
	}

	// History write must not break the response.
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   "hybrid",
			Params: map[string]any{
				"n":        req.N,
				"cbWeight": req.CBWeight,
				"recentK":  s.cfg.RecentK,
				"refresh":  req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] history insert: %v", err)
		}
	}

	if err := cache.SetJSON(ctx, cacheKey(req), items, s.cfg.RecCacheTTL); err != nil {
		log.Printf("[recommend] cache set: %v", err)
	}
	return items, nil
}

// History lists previously served recommendation lists for a user.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	if s.recRepo == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}
