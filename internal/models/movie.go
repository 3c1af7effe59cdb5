package models

type Links struct {
	IMDB string `json:"imdb,omitempty" bson:"imdb,omitempty"`
	TMDB string `json:"tmdb,omitempty" bson:"tmdb,omitempty"`
}

// ExternalData holds the metadata attached by the TMDB enrichment batch.
type ExternalData struct {
	TMDBID       int     `json:"tmdbId,omitempty" bson:"tmdbId,omitempty"`
	PosterPath   string  `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	BackdropPath string  `json:"backdropPath,omitempty" bson:"backdropPath,omitempty"`
	Overview     string  `json:"overview,omitempty" bson:"overview,omitempty"`
	VoteAverage  float64 `json:"voteAverage,omitempty" bson:"voteAverage,omitempty"`
	ReleaseDate  string  `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	TMDBFetched  bool    `json:"tmdbFetched" bson:"tmdbFetched"`
}

type RatingStats struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

// MovieDoc is the movies collection document.
type MovieDoc struct {
	MovieID      int           `json:"movieId" bson:"movieId"`
	Title        string        `json:"title" bson:"title"`
	Year         *int          `json:"year,omitempty" bson:"year,omitempty"`
	Genres       []string      `json:"genres" bson:"genres"`
	Links        *Links        `json:"links,omitempty" bson:"links,omitempty"`
	RatingStats  *RatingStats  `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	ExternalData *ExternalData `json:"externalData,omitempty" bson:"externalData,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Movie is the in-memory catalog row the engines work with.
// Genres keeps the original order from the pipe-delimited movies.csv column.
type Movie struct {
	MovieID int      `json:"movieId"`
	Title   string   `json:"title"`
	Genres  []string `json:"genres"`
}

func (d *MovieDoc) ToMovie() Movie {
	return Movie{MovieID: d.MovieID, Title: d.Title, Genres: d.Genres}
}
