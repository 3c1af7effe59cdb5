package models

import "time"

type RecItem struct {
	MovieID int     `bson:"movieId" json:"movieId"`
	Title   string  `bson:"title,omitempty" json:"title,omitempty"`
	Score   float64 `bson:"score" json:"score"`
}

// Recommendation is the served-recommendations history document.
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    int       `bson:"userId" json:"userId"`
	Algo      string    `bson:"algo" json:"algo"`
	Params    any       `bson:"params" json:"params"`
	Items     []RecItem `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SimilarMovie is one row of a content-similarity lookup.
type SimilarMovie struct {
	MovieID    int      `json:"movieId"`
	Title      string   `json:"title,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	Similarity float64  `json:"similarity"`
}

// SimilarUser is one row of a user-similarity lookup.
type SimilarUser struct {
	UserID     int     `json:"userId"`
	Similarity float64 `json:"similarity"`
}
