package recommender

import (
	"sort"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
)

// scoreboard accumulates per-movie scores. Reads of absent movies are
// an explicit zero, so absence handling stays auditable instead of
// being buried in map lookups.
type scoreboard map[int]float64

func (s scoreboard) add(movieID int, v float64) { s[movieID] += v }

func (s scoreboard) get(movieID int) float64 { return s[movieID] }

// maxNormalize divides every score by the maximum so the top movie
// lands exactly at 1.0. A board with no positive mass is left as-is.
func (s scoreboard) maxNormalize() {
	var max float64
	for _, v := range s {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return
	}
	for id, v := range s {
		s[id] = v / max
	}
}

// RecommendHybrid produces a top-N recommendation list by blending a
// max-normalized content score with a max-normalized collaborative
// score: final = cbWeight*content + (1-cbWeight)*collab. This is a
// different formula from PredictHybrid on purpose; the two are not
// interchangeable. Candidates are the union of the movies either side
// touches, a side that never scored a candidate contributes 0.
//
// The content side accumulates sim(candidate, rated) * rating over the
// user's recentK most recently rated movies; the collaborative side is
// the usual weighted average of similar users' ratings on the user's
// unrated movies. Returns ErrNotFound when the user has no training
// history at all.
func (p *Predictor) RecommendHybrid(userID, topN, recentK int, cbWeight float64) ([]models.RecItem, error) {
	history := p.byUser[userID]
	if len(history) == 0 {
		return nil, ErrNotFound
	}

	rated := make(map[int]bool, len(history))
	for _, r := range history {
		rated[r.MovieID] = true
	}

	content := p.contentScores(history, rated, recentK)
	collab := p.collabScores(userID, rated)

	content.maxNormalize()
	collab.maxNormalize()

	// Candidate union.
	candidates := make(map[int]struct{}, len(content)+len(collab))
	for id := range content {
		candidates[id] = struct{}{}
	}
	for id := range collab {
		candidates[id] = struct{}{}
	}

	cfWeight := 1 - cbWeight
	items := make([]models.RecItem, 0, len(candidates))
	for id := range candidates {
		items = append(items, models.RecItem{
			MovieID: id,
			Score:   cbWeight*content.get(id) + cfWeight*collab.get(id),
		})
	}

	// Deterministic order: score descending, movieId ascending on ties.
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].MovieID < items[j].MovieID
	})
	if len(items) > topN {
		items = items[:topN]
	}
	return items, nil
}

// contentScores walks the user's recentK most recently rated movies
// and credits every unrated similar movie with sim * rating.
func (p *Predictor) contentScores(history []models.Rating, rated map[int]bool, recentK int) scoreboard {
	recent := make([]models.Rating, len(history))
	copy(recent, history)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Timestamp > recent[j].Timestamp })
	if len(recent) > recentK {
		recent = recent[:recentK]
	}

	scores := make(scoreboard)
	for _, r := range recent {
		if !p.content.Has(r.MovieID) {
			continue
		}
		for _, candidateID := range p.content.MovieIDs() {
			if rated[candidateID] || candidateID == r.MovieID {
				continue
			}
			if sim, _ := p.content.Similarity(candidateID, r.MovieID); sim > 0 {
				scores.add(candidateID, sim*r.Rating)
			}
		}
	}
	return scores
}

// collabScores computes, per unrated movie, the similarity-weighted
// average of the top similar users' ratings. Numerator and
// denominator are accumulated separately and divided at the end.
func (p *Predictor) collabScores(userID int, rated map[int]bool) scoreboard {
	scores := make(scoreboard)
	neighbors, err := p.collab.TopSimilarUsers(userID, p.CFNeighbors)
	if err != nil {
		return scores
	}

	num := make(scoreboard)
	den := make(scoreboard)
	for _, n := range neighbors {
		if n.Similarity <= 0 {
			continue
		}
		for _, movieID := range p.collab.MovieIDs() {
			if rated[movieID] {
				continue
			}
			if r := p.collab.RatingOf(n.UserID, movieID); r > 0 {
				num.add(movieID, n.Similarity*r)
				den.add(movieID, n.Similarity)
			}
		}
	}
	for movieID, d := range den {
		if d > 0 {
			scores[movieID] = num.get(movieID) / d
		}
	}
	return scores
}
