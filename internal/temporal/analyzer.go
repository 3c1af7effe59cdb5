// Package temporal derives descriptive time statistics from rating
// timestamps: period summaries, popularity trends around a one-year
// recency split, and exponential time-decay weights per user. It reads
// the same immutable dataset as the recommenders and feeds nothing
// back into them (the decay weights are exposed but not yet wired into
// prediction).
package temporal

import (
	"math"
	"sort"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
	"gonum.org/v1/gonum/stat"
)

// DefaultDecayFactor controls how fast old ratings fade in the
// time-weighted average.
const DefaultDecayFactor = 0.1

// recencyWindow splits the dataset into "old" and "recent" halves for
// the popularity-trend analysis.
const recencyWindow = 365 * 24 * time.Hour

// Analyzer precomputes the derived calendar fields for every rating.
type Analyzer struct {
	ratings []models.Rating
	times   []time.Time
	maxTime time.Time
}

// NewAnalyzer derives timestamps once up front; the analyzer is then
// read-only and safe for concurrent use.
func NewAnalyzer(ratings []models.Rating) *Analyzer {
	a := &Analyzer{
		ratings: ratings,
		times:   make([]time.Time, len(ratings)),
	}
	for i, r := range ratings {
		t := time.Unix(r.Timestamp, 0).UTC()
		a.times[i] = t
		if t.After(a.maxTime) {
			a.maxTime = t
		}
	}
	return a
}

// PeriodStats is one group-by bucket (year, month, weekday, ...).
type PeriodStats struct {
	Period int     `json:"period"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
	Std    float64 `json:"std"`
}

// groupBy buckets ratings with the supplied period extractor and
// returns per-bucket mean/count/std sorted by period ascending.
func (a *Analyzer) groupBy(period func(time.Time) int) []PeriodStats {
	buckets := make(map[int][]float64)
	for i, r := range a.ratings {
		p := period(a.times[i])
		buckets[p] = append(buckets[p], r.Rating)
	}

	out := make([]PeriodStats, 0, len(buckets))
	for p, values := range buckets {
		std := 0.0
		if len(values) > 1 {
			std = stat.StdDev(values, nil)
		}
		out = append(out, PeriodStats{
			Period: p,
			Mean:   stat.Mean(values, nil),
			Count:  len(values),
			Std:    std,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// Trends groups ratings by year, month and day of week (0=Monday,
// 6=Sunday).
type Trends struct {
	Yearly    []PeriodStats `json:"yearly"`
	Monthly   []PeriodStats `json:"monthly"`
	DayOfWeek []PeriodStats `json:"dayofweek"`
}

func (a *Analyzer) Trends() Trends {
	return Trends{
		Yearly:    a.groupBy(func(t time.Time) int { return t.Year() }),
		Monthly:   a.groupBy(func(t time.Time) int { return int(t.Month()) }),
		DayOfWeek: a.groupBy(mondayIndexedWeekday),
	}
}

// mondayIndexedWeekday maps Go's Sunday-first weekday to the
// Monday=0 convention the reports use.
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Seasonal groups ratings by quarter and hour, and reports the hour
// with the most rating activity.
type Seasonal struct {
	Quarterly []PeriodStats `json:"quarterly"`
	Hourly    []PeriodStats `json:"hourly"`
	PeakHour  int           `json:"peakHour"`
}

func (a *Analyzer) Seasonal() Seasonal {
	s := Seasonal{
		Quarterly: a.groupBy(func(t time.Time) int { return (int(t.Month())-1)/3 + 1 }),
		Hourly:    a.groupBy(func(t time.Time) int { return t.Hour() }),
	}
	peakCount := -1
	for _, h := range s.Hourly {
		if h.Count > peakCount {
			peakCount = h.Count
			s.PeakHour = h.Period
		}
	}
	return s
}

// MovieTrend is one movie's aggregate within the trailing-year window.
type MovieTrend struct {
	MovieID     int     `json:"movieId"`
	AvgRating   float64 `json:"avgRating"`
	RatingCount int     `json:"ratingCount"`
}

// RisingStar is a movie rated in both windows whose mean rating
// improved.
type RisingStar struct {
	MovieID      int     `json:"movieId"`
	OldAvgRating float64 `json:"oldAvgRating"`
	AvgRating    float64 `json:"avgRating"`
	RatingChange float64 `json:"ratingChange"`
}

// PopularityTrends is the output of the recency-split analysis.
type PopularityTrends struct {
	RecentPopular []MovieTrend `json:"recentPopular"`
	RisingStars   []RisingStar `json:"risingStars"`
}

// minRecentRatings filters noise out of the trailing-year ranking.
const minRecentRatings = 10

// PopularityTrends splits ratings at one year before the newest
// timestamp. "Recently popular" ranks trailing-year movies with at
// least 10 ratings by count; "rising stars" ranks movies present in
// both windows by mean-rating increase.
func (a *Analyzer) PopularityTrends(topN int) PopularityTrends {
	cutoff := a.maxTime.Add(-recencyWindow)

	type agg struct {
		sum   float64
		count int
	}
	recent := make(map[int]*agg)
	old := make(map[int]*agg)

	for i, r := range a.ratings {
		m := old
		if !a.times[i].Before(cutoff) {
			m = recent
		}
		if m[r.MovieID] == nil {
			m[r.MovieID] = &agg{}
		}
		m[r.MovieID].sum += r.Rating
		m[r.MovieID].count++
	}

	popular := make([]MovieTrend, 0, len(recent))
	for movieID, g := range recent {
		if g.count < minRecentRatings {
			continue
		}
		popular = append(popular, MovieTrend{
			MovieID:     movieID,
			AvgRating:   g.sum / float64(g.count),
			RatingCount: g.count,
		})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].RatingCount != popular[j].RatingCount {
			return popular[i].RatingCount > popular[j].RatingCount
		}
		return popular[i].MovieID < popular[j].MovieID
	})

	stars := make([]RisingStar, 0, len(popular))
	for _, p := range popular {
		g, ok := old[p.MovieID]
		if !ok {
			continue
		}
		oldAvg := g.sum / float64(g.count)
		stars = append(stars, RisingStar{
			MovieID:      p.MovieID,
			OldAvgRating: oldAvg,
			AvgRating:    p.AvgRating,
			RatingChange: p.AvgRating - oldAvg,
		})
	}
	sort.Slice(stars, func(i, j int) bool {
		if stars[i].RatingChange != stars[j].RatingChange {
			return stars[i].RatingChange > stars[j].RatingChange
		}
		return stars[i].MovieID < stars[j].MovieID
	})

	if len(popular) > topN {
		popular = popular[:topN]
	}
	if len(stars) > topN {
		stars = stars[:topN]
	}
	return PopularityTrends{RecentPopular: popular, RisingStars: stars}
}

// DecayWeight is one rating's exponential time weight within a user's
// history.
type DecayWeight struct {
	MovieID int     `json:"movieId"`
	Rating  float64 `json:"rating"`
	Weight  float64 `json:"weight"`
}

// UserWeights compares a user's time-weighted average rating against
// the plain average.
type UserWeights struct {
	UserID          int           `json:"userId"`
	TimeWeightedAvg float64       `json:"timeWeightedAvg"`
	TraditionalAvg  float64       `json:"traditionalAvg"`
	Adjustment      float64       `json:"adjustment"`
	Weights         []DecayWeight `json:"weights"`
}

// UserTimeWeights computes exp(-decay * daysSinceUsersNewestRating /
// 365) per rating and the resulting weighted average. Returns
// ErrNotFound for a user with no rating history.
func (a *Analyzer) UserTimeWeights(userID int, decay float64) (*UserWeights, error) {
	var history []models.Rating
	var times []time.Time
	var newest time.Time
	for i, r := range a.ratings {
		if r.UserID != userID {
			continue
		}
		history = append(history, r)
		times = append(times, a.times[i])
		if a.times[i].After(newest) {
			newest = a.times[i]
		}
	}
	if len(history) == 0 {
		return nil, recommender.ErrNotFound
	}

	out := &UserWeights{UserID: userID, Weights: make([]DecayWeight, len(history))}
	var weightedSum, weightSum, plainSum float64
	for i, r := range history {
		days := newest.Sub(times[i]).Hours() / 24
		w := math.Exp(-decay * days / 365)
		out.Weights[i] = DecayWeight{MovieID: r.MovieID, Rating: r.Rating, Weight: w}
		weightedSum += r.Rating * w
		weightSum += w
		plainSum += r.Rating
	}
	out.TimeWeightedAvg = weightedSum / weightSum
	out.TraditionalAvg = plainSum / float64(len(history))
	out.Adjustment = out.TimeWeightedAvg - out.TraditionalAvg
	return out, nil
}
