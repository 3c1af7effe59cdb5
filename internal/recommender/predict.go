package recommender

import (
	"sort"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
)

// Fallback tells the caller which degraded path, if any, produced a
// prediction. A prediction of zero confidence is never silently
// disguised as a regular score.
type Fallback string

const (
	FallbackNone       Fallback = ""
	FallbackGlobalMean Fallback = "global_mean"
	FallbackMovieMean  Fallback = "movie_mean"
	FallbackUserMean   Fallback = "user_mean"
)

// Prediction is a transient point estimate for (user, movie).
type Prediction struct {
	UserID   int      `json:"userId"`
	MovieID  int      `json:"movieId"`
	Rating   float64  `json:"predictedRating"`
	Fallback Fallback `json:"fallback,omitempty"`
}

// Predictor produces rating predictions from the two similarity
// engines via k-nearest-neighbor weighted averaging.
type Predictor struct {
	content *ContentEngine
	collab  *CollaborativeEngine

	byUser      map[int][]models.Rating // training rows per user, input order
	userMeans   map[int]float64
	ratingsMean float64 // mean over rating rows (content-based cold start)

	// Neighbor counts used by PredictHybrid: 10 similar users, 20
	// similar rated movies by default.
	CFNeighbors int
	CBNeighbors int
}

// NewPredictor wires a predictor over engines built from the same
// training ratings.
func NewPredictor(ds *Dataset, content *ContentEngine, collab *CollaborativeEngine) *Predictor {
	p := &Predictor{
		content:     content,
		collab:      collab,
		byUser:      ds.ByUser(),
		userMeans:   make(map[int]float64),
		ratingsMean: ds.RatingsMean(),
		CFNeighbors: 10,
		CBNeighbors: 20,
	}
	for userID, rows := range p.byUser {
		var sum float64
		for _, r := range rows {
			sum += r.Rating
		}
		p.userMeans[userID] = sum / float64(len(rows))
	}
	return p
}

type simRating struct {
	sim    float64
	rating float64
}

// weightedAverage is sum(rating*sim) / sum(sim). ok=false when the
// pair set is empty or the similarity mass is zero, in which case the
// caller applies its documented fallback.
func weightedAverage(pairs []simRating) (float64, bool) {
	var num, den float64
	for _, p := range pairs {
		num += p.rating * p.sim
		den += p.sim
	}
	if den == 0 {
		return 0, false
	}
	return num / den, true
}

// PredictCollaborative estimates the rating from the k most similar
// users who rated the movie. Fallback chain: unknown movie -> matrix
// mean; unknown user -> movie mean over raters; no usable neighbors
// -> matrix mean.
func (p *Predictor) PredictCollaborative(userID, movieID, k int) Prediction {
	pred := Prediction{UserID: userID, MovieID: movieID}

	if !p.collab.HasMovie(movieID) {
		pred.Rating = p.collab.MatrixMean()
		pred.Fallback = FallbackGlobalMean
		return pred
	}
	if !p.collab.HasUser(userID) {
		pred.Rating = p.collab.MovieMean(movieID)
		pred.Fallback = FallbackMovieMean
		return pred
	}

	neighbors, _ := p.collab.TopSimilarUsers(userID, k)
	pairs := make([]simRating, 0, len(neighbors))
	for _, n := range neighbors {
		if r := p.collab.RatingOf(n.UserID, movieID); r > 0 {
			pairs = append(pairs, simRating{sim: n.Similarity, rating: r})
		}
	}

	if avg, ok := weightedAverage(pairs); ok {
		pred.Rating = avg
		return pred
	}
	pred.Rating = p.collab.MatrixMean()
	pred.Fallback = FallbackGlobalMean
	return pred
}

// PredictContentBased estimates the rating from the k rated movies
// most similar to the target. Fallback chain: no history -> global
// ratings mean; unknown movie or no usable pairs -> user mean.
func (p *Predictor) PredictContentBased(userID, movieID, k int) Prediction {
	pred := Prediction{UserID: userID, MovieID: movieID}

	history := p.byUser[userID]
	if len(history) == 0 {
		pred.Rating = p.ratingsMean
		pred.Fallback = FallbackGlobalMean
		return pred
	}
	if !p.content.Has(movieID) {
		pred.Rating = p.userMeans[userID]
		pred.Fallback = FallbackUserMean
		return pred
	}

	pairs := make([]simRating, 0, len(history))
	for _, r := range history {
		if sim, ok := p.content.Similarity(movieID, r.MovieID); ok {
			pairs = append(pairs, simRating{sim: sim, rating: r.Rating})
		}
	}
	// Stable: ties keep the user's rating-row order.
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].sim > pairs[j].sim })
	if len(pairs) > k {
		pairs = pairs[:k]
	}

	if avg, ok := weightedAverage(pairs); ok {
		pred.Rating = avg
		return pred
	}
	pred.Rating = p.userMeans[userID]
	pred.Fallback = FallbackUserMean
	return pred
}

// PredictHybrid blends the two point predictors linearly. The weights
// are taken as given and are not normalized; callers wanting a convex
// combination must pass weights summing to 1.
func (p *Predictor) PredictHybrid(userID, movieID int, collabWeight, contentWeight float64) Prediction {
	cf := p.PredictCollaborative(userID, movieID, p.CFNeighbors)
	cb := p.PredictContentBased(userID, movieID, p.CBNeighbors)

	pred := Prediction{
		UserID:  userID,
		MovieID: movieID,
		Rating:  collabWeight*cf.Rating + contentWeight*cb.Rating,
	}
	// Surface a fallback only when both sides degraded; a single
	// healthy side still anchors the blend.
	if cf.Fallback != FallbackNone && cb.Fallback != FallbackNone {
		pred.Fallback = cf.Fallback
	}
	return pred
}

// UserMean exposes the per-user training mean (0 for unknown users).
func (p *Predictor) UserMean(userID int) float64 { return p.userMeans[userID] }

// RatingsMean exposes the global training-row mean.
func (p *Predictor) RatingsMean() float64 { return p.ratingsMean }
