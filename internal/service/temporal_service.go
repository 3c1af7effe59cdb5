package service

import (
	"context"
	"log"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/temporal"
)

// temporalCacheTTL: the dataset is immutable while the process runs,
// so cached aggregates only need to survive restarts of Redis itself.
const temporalCacheTTL = 6 * 3600

// TemporalService fronts the time analyzer with a Redis cache for the
// dataset-wide aggregates (per-user weight queries are cheap and go
// straight through).
type TemporalService struct {
	cfg      *config.Config
	analyzer *temporal.Analyzer
}

func NewTemporalService(cfg *config.Config, analyzer *temporal.Analyzer) *TemporalService {
	return &TemporalService{cfg: cfg, analyzer: analyzer}
}

func (s *TemporalService) Trends(ctx context.Context) temporal.Trends {
	var out temporal.Trends
	if ok, err := cache.GetJSON(ctx, "temporal:trends", &out); err == nil && ok {
		return out
	}
	out = s.analyzer.Trends()
	if err := cache.SetJSON(ctx, "temporal:trends", out, temporalCacheTTL); err != nil {
		log.Printf("[temporal] cache set: %v", err)
	}
	return out
}

func (s *TemporalService) Seasonal(ctx context.Context) temporal.Seasonal {
	var out temporal.Seasonal
	if ok, err := cache.GetJSON(ctx, "temporal:seasonal", &out); err == nil && ok {
		return out
	}
	out = s.analyzer.Seasonal()
	if err := cache.SetJSON(ctx, "temporal:seasonal", out, temporalCacheTTL); err != nil {
		log.Printf("[temporal] cache set: %v", err)
	}
	return out
}

func (s *TemporalService) PopularityTrends(ctx context.Context, topN int) temporal.PopularityTrends {
	if topN <= 0 || topN > 50 {
		topN = 10
	}
	return s.analyzer.PopularityTrends(topN)
}

// UserTimeWeights exposes the decay-weight diagnostics for one user.
// decay <= 0 falls back to the configured factor.
func (s *TemporalService) UserTimeWeights(userID int, decay float64) (*temporal.UserWeights, error) {
	if decay <= 0 {
		decay = s.cfg.DecayFactor
	}
	return s.analyzer.UserTimeWeights(userID, decay)
}

// Report renders the plain-text analysis report.
func (s *TemporalService) Report() string {
	return s.analyzer.Report(time.Now().UTC())
}
