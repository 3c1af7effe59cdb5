package models

// Rating is one row of the ratings table. Ratings are immutable once
// loaded: the dataset is fixed per process, there is no write path.
// Values live in [0.5, 5.0] with 0.5 steps, so a stored 0.0 can never
// be a real rating; the engines rely on that to mark "unrated" cells.
type Rating struct {
	UserID    int     `json:"userId" bson:"userId"`
	MovieID   int     `json:"movieId" bson:"movieId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}
