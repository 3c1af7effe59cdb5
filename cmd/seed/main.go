// Command seed loads the MovieLens CSVs into Mongo: movies with
// per-movie rating stats and the release year parsed from the title,
// plus the raw ratings rows.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"
)

const batchSize = 1000

func main() {
	var (
		ratingsPath = flag.String("ratings", "", "ratings.csv path (default from config)")
		moviesPath  = flag.String("movies", "", "movies.csv path (default from config)")
		drop        = flag.Bool("drop", false, "drop existing movies/ratings collections first")
	)
	flag.Parse()

	cfg := config.Load()
	if *ratingsPath == "" {
		*ratingsPath = cfg.RatingsCSV
	}
	if *moviesPath == "" {
		*moviesPath = cfg.MoviesCSV
	}

	db.InitMongo(cfg)
	ctx := context.Background()

	if *drop {
		for _, name := range []string{"movies", "ratings"} {
			if err := db.DB().Collection(name).Drop(ctx); err != nil {
				log.Fatalf("[seed] dropping %s: %v", name, err)
			}
		}
		log.Printf("[seed] dropped movies and ratings collections")
	}

	ds, err := recommender.LoadCSV(*ratingsPath, *moviesPath)
	if err != nil {
		log.Fatalf("[seed] loading csv: %v", err)
	}
	log.Printf("[seed] loaded %d ratings, %d movies", len(ds.Ratings), len(ds.Movies))

	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()

	// per-movie rating stats, computed once at seed time
	type agg struct {
		sum   float64
		count int
	}
	stats := make(map[int]*agg, len(ds.Movies))
	for _, r := range ds.Ratings {
		if stats[r.MovieID] == nil {
			stats[r.MovieID] = &agg{}
		}
		stats[r.MovieID].sum += r.Rating
		stats[r.MovieID].count++
	}

	now := time.Now().UTC().Format(time.RFC3339)
	docs := make([]models.MovieDoc, len(ds.Movies))
	for i, m := range ds.Movies {
		doc := models.MovieDoc{
			MovieID:   m.MovieID,
			Title:     m.Title,
			Genres:    m.Genres,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, year := tmdb.ParseTitleYear(m.Title); year > 0 {
			doc.Year = &year
		}
		if s := stats[m.MovieID]; s != nil {
			doc.RatingStats = &models.RatingStats{
				Average: s.sum / float64(s.count),
				Count:   s.count,
			}
		}
		docs[i] = doc
	}

	for i := 0; i < len(docs); i += batchSize {
		j := min(i+batchSize, len(docs))
		if err := movieRepo.InsertMany(ctx, docs[i:j]); err != nil {
			log.Fatalf("[seed] inserting movies: %v", err)
		}
	}
	log.Printf("[seed] inserted %d movies", len(docs))

	for i := 0; i < len(ds.Ratings); i += batchSize {
		j := min(i+batchSize, len(ds.Ratings))
		if err := ratingRepo.InsertMany(ctx, ds.Ratings[i:j]); err != nil {
			log.Fatalf("[seed] inserting ratings: %v", err)
		}
	}
	log.Printf("[seed] inserted %d ratings", len(ds.Ratings))
}
