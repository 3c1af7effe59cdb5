package recommender

import "github.com/Ferhan0/Movie-Recommendation-System/internal/models"

// fixtureDataset is a small hand-checked catalog: movies 1 and 2 share
// identical genres, movie 6 overlaps them on one tag, movie 5 is never
// rated. Users 1 and 2 agree on the action movies; user 3 does not.
func fixtureDataset() *Dataset {
	return &Dataset{
		Movies: []models.Movie{
			{MovieID: 1, Title: "Heat (1995)", Genres: []string{"Action", "Crime"}},
			{MovieID: 2, Title: "Ronin (1998)", Genres: []string{"Action", "Crime"}},
			{MovieID: 3, Title: "Clueless (1995)", Genres: []string{"Comedy"}},
			{MovieID: 4, Title: "Gattaca (1997)", Genres: []string{"Drama", "Sci-Fi"}},
			{MovieID: 5, Title: "Koyaanisqatsi (1982)", Genres: []string{"Documentary"}},
			{MovieID: 6, Title: "Die Hard (1988)", Genres: []string{"Action"}},
		},
		Ratings: []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5.0, Timestamp: 100},
			{UserID: 1, MovieID: 2, Rating: 4.0, Timestamp: 200},
			{UserID: 1, MovieID: 3, Rating: 2.0, Timestamp: 300},
			{UserID: 2, MovieID: 1, Rating: 4.5, Timestamp: 100},
			{UserID: 2, MovieID: 2, Rating: 4.0, Timestamp: 150},
			{UserID: 2, MovieID: 4, Rating: 3.0, Timestamp: 250},
			{UserID: 3, MovieID: 3, Rating: 5.0, Timestamp: 120},
			{UserID: 3, MovieID: 4, Rating: 4.0, Timestamp: 180},
		},
	}
}

func fixturePredictor() (*Predictor, *ContentEngine, *CollaborativeEngine) {
	ds := fixtureDataset()
	content := BuildContentEngine(ds.Movies)
	collab := BuildCollaborativeEngine(ds.Ratings)
	return NewPredictor(ds, content, collab), content, collab
}
