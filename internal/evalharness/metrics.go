// Package evalharness scores a batch of rating predictions against
// held-out actuals: accuracy (RMSE/MAE), ranking (Precision@K,
// Recall@K, F1) and beyond-accuracy (Coverage, Diversity, Novelty)
// metrics, plus a text report.
package evalharness

import (
	"math"
	"sort"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
)

// Prediction is one predicted rating for a (user, movie) pair.
type Prediction struct {
	UserID    int     `json:"userId"`
	MovieID   int     `json:"movieId"`
	Predicted float64 `json:"predictedRating"`
}

// DefaultRelevanceThreshold marks an actual rating as "relevant" for
// the ranking metrics.
const DefaultRelevanceThreshold = 3.5

type joinedRow struct {
	userID    int
	movieID   int
	predicted float64
	actual    float64
}

// Evaluator joins predictions with actuals and computes metrics over
// the joined set. The join is inner on (user, movie): predictions with
// no matching actual are silently dropped and vice versa, which
// shrinks the effective sample size. Intentional: callers can check
// JoinedLen when the shrinkage matters.
type Evaluator struct {
	predictions []Prediction
	joined      []joinedRow
	userOrder   []int // first-appearance order in the joined set
	byUser      map[int][]joinedRow
	k           int
}

// New builds an evaluator with top-K cutoff k for the ranking metrics.
func New(predictions []Prediction, actuals []models.Rating, k int) *Evaluator {
	type key struct{ user, movie int }
	actualOf := make(map[key]float64, len(actuals))
	for _, a := range actuals {
		actualOf[key{a.UserID, a.MovieID}] = a.Rating
	}

	e := &Evaluator{
		predictions: predictions,
		byUser:      make(map[int][]joinedRow),
		k:           k,
	}
	for _, p := range predictions {
		actual, ok := actualOf[key{p.UserID, p.MovieID}]
		if !ok {
			continue
		}
		row := joinedRow{userID: p.UserID, movieID: p.MovieID, predicted: p.Predicted, actual: actual}
		e.joined = append(e.joined, row)
		if _, seen := e.byUser[p.UserID]; !seen {
			e.userOrder = append(e.userOrder, p.UserID)
		}
		e.byUser[p.UserID] = append(e.byUser[p.UserID], row)
	}
	return e
}

// JoinedLen is the effective sample size after the inner join.
func (e *Evaluator) JoinedLen() int { return len(e.joined) }

// RMSE over the joined set. ok=false when the join is empty.
func (e *Evaluator) RMSE() (float64, bool) {
	if len(e.joined) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range e.joined {
		d := r.predicted - r.actual
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(e.joined))), true
}

// MAE over the joined set. ok=false when the join is empty.
func (e *Evaluator) MAE() (float64, bool) {
	if len(e.joined) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range e.joined {
		sum += math.Abs(r.predicted - r.actual)
	}
	return sum / float64(len(e.joined)), true
}

// topK returns a user's joined rows sorted by predicted rating
// descending (stable, join order on ties), truncated to k.
func (e *Evaluator) topK(userID int) []joinedRow {
	rows := make([]joinedRow, len(e.byUser[userID]))
	copy(rows, e.byUser[userID])
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].predicted > rows[j].predicted })
	if len(rows) > e.k {
		rows = rows[:e.k]
	}
	return rows
}

// PrecisionAtK averages, across users, the share of each user's top-K
// predicted rows whose actual rating clears the threshold. The
// denominator is the fixed K even for users with fewer rows — a
// conservative choice that penalizes sparse users, kept as-is.
func (e *Evaluator) PrecisionAtK(threshold float64) float64 {
	if e.k <= 0 || len(e.userOrder) == 0 {
		return 0
	}
	var sum float64
	for _, userID := range e.userOrder {
		relevant := 0
		for _, r := range e.topK(userID) {
			if r.actual >= threshold {
				relevant++
			}
		}
		sum += float64(relevant) / float64(e.k)
	}
	return sum / float64(len(e.userOrder))
}

// RecallAtK averages, across users with at least one relevant item,
// the share of the user's relevant items that made the top-K. Users
// with zero relevant items are skipped entirely rather than counted
// as zero.
func (e *Evaluator) RecallAtK(threshold float64) float64 {
	var sum float64
	var users int
	for _, userID := range e.userOrder {
		totalRelevant := 0
		for _, r := range e.byUser[userID] {
			if r.actual >= threshold {
				totalRelevant++
			}
		}
		if totalRelevant == 0 {
			continue
		}
		inTopK := 0
		for _, r := range e.topK(userID) {
			if r.actual >= threshold {
				inTopK++
			}
		}
		sum += float64(inTopK) / float64(totalRelevant)
		users++
	}
	if users == 0 {
		return 0
	}
	return sum / float64(users)
}

// F1 is the harmonic mean of precision and recall at K; 0 when both
// are 0.
func (e *Evaluator) F1(threshold float64) float64 {
	p := e.PrecisionAtK(threshold)
	r := e.RecallAtK(threshold)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Coverage is the percentage of the catalog that appears anywhere in
// the prediction set (not just the joined set).
func (e *Evaluator) Coverage(totalMovies int) float64 {
	if totalMovies <= 0 {
		return 0
	}
	unique := make(map[int]struct{})
	for _, p := range e.predictions {
		unique[p.MovieID] = struct{}{}
	}
	return float64(len(unique)) / float64(totalMovies) * 100
}

// Diversity averages, per user with at least 2 predictions, the ratio
// of distinct recommended movies to total recommended count. It only
// captures within-list duplication, not pairwise item distance.
func (e *Evaluator) Diversity() float64 {
	perUser := make(map[int][]int)
	var order []int
	for _, p := range e.predictions {
		if _, seen := perUser[p.UserID]; !seen {
			order = append(order, p.UserID)
		}
		perUser[p.UserID] = append(perUser[p.UserID], p.MovieID)
	}

	var sum float64
	var users int
	for _, userID := range order {
		recs := perUser[userID]
		if len(recs) < 2 {
			continue
		}
		unique := make(map[int]struct{}, len(recs))
		for _, id := range recs {
			unique[id] = struct{}{}
		}
		sum += float64(len(unique)) / float64(len(recs))
		users++
	}
	if users == 0 {
		return 0
	}
	return sum / float64(users)
}

// Novelty averages 1 - popularity(movie) over prediction rows whose
// movie has a popularity entry. ok=false when no row matched.
func (e *Evaluator) Novelty(popularity map[int]float64) (float64, bool) {
	var sum float64
	var n int
	for _, p := range e.predictions {
		if pop, ok := popularity[p.MovieID]; ok {
			sum += 1 - pop
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Metrics is the aggregate result of one evaluation run. RMSE/MAE and
// Novelty are pointers because they can be undefined (empty join, no
// popularity data).
type Metrics struct {
	K            int      `json:"k"`
	SampleSize   int      `json:"sampleSize"`
	RMSE         *float64 `json:"rmse"`
	MAE          *float64 `json:"mae"`
	PrecisionAtK float64  `json:"precisionAtK"`
	RecallAtK    float64  `json:"recallAtK"`
	F1           float64  `json:"f1"`
	Coverage     float64  `json:"coverage"`
	Diversity    float64  `json:"diversity"`
	Novelty      *float64 `json:"novelty,omitempty"`
}

// All computes every metric in one pass. popularity may be nil, in
// which case Novelty stays unset.
func (e *Evaluator) All(totalMovies int, popularity map[int]float64) Metrics {
	m := Metrics{
		K:            e.k,
		SampleSize:   len(e.joined),
		PrecisionAtK: e.PrecisionAtK(DefaultRelevanceThreshold),
		RecallAtK:    e.RecallAtK(DefaultRelevanceThreshold),
		F1:           e.F1(DefaultRelevanceThreshold),
		Coverage:     e.Coverage(totalMovies),
		Diversity:    e.Diversity(),
	}
	if v, ok := e.RMSE(); ok {
		m.RMSE = &v
	}
	if v, ok := e.MAE(); ok {
		m.MAE = &v
	}
	if popularity != nil {
		if v, ok := e.Novelty(popularity); ok {
			m.Novelty = &v
		}
	}
	return m
}
