package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	_ "github.com/Ferhan0/Movie-Recommendation-System/docs" // swagger docs

	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/handler"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/temporal"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// loadDataset prefers the seeded Mongo collections and falls back to
// the raw MovieLens CSVs when the database is empty (first run without
// the seed tool).
func loadDataset(ctx context.Context, cfg *config.Config, movies *repository.MovieRepository, ratings *repository.RatingRepository) *recommender.Dataset {
	count, err := ratings.Count(ctx)
	if err != nil {
		log.Fatalf("[data] counting ratings: %v", err)
	}

	if count == 0 {
		log.Printf("[data] mongo is empty, loading CSVs %s / %s", cfg.RatingsCSV, cfg.MoviesCSV)
		ds, err := recommender.LoadCSV(cfg.RatingsCSV, cfg.MoviesCSV)
		if err != nil {
			log.Fatalf("[data] loading csv: %v", err)
		}
		return ds
	}

	rows, err := ratings.LoadAll(ctx)
	if err != nil {
		log.Fatalf("[data] loading ratings: %v", err)
	}
	docs, err := movies.LoadAll(ctx)
	if err != nil {
		log.Fatalf("[data] loading movies: %v", err)
	}
	ms := make([]models.Movie, len(docs))
	for i, d := range docs {
		ms[i] = d.ToMovie()
	}
	return &recommender.Dataset{Ratings: rows, Movies: ms}
}

// @title Movie Recommendation System API
// @version 1.0
// @description Hybrid movie recommender (TF-IDF content + user-user collaborative) over MovieLens, with temporal analytics
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository()

	ctx := context.Background()
	ds := loadDataset(ctx, cfg, movieRepo, ratingRepo)
	log.Printf("[data] dataset ready: %d ratings, %d movies", len(ds.Ratings), len(ds.Movies))

	// Both engines are independent; build them in parallel.
	var (
		wg      sync.WaitGroup
		content *recommender.ContentEngine
		collab  *recommender.CollaborativeEngine
	)
	start := time.Now()
	wg.Add(2)
	go func() {
		defer wg.Done()
		content = recommender.BuildContentEngine(ds.Movies)
		log.Printf("[engine] content ready: %d movies", content.Size())
	}()
	go func() {
		defer wg.Done()
		collab = recommender.BuildCollaborativeEngine(ds.Ratings)
		log.Printf("[engine] collaborative ready: %d users x %d movies",
			len(collab.UserIDs()), len(collab.MovieIDs()))
	}()
	wg.Wait()
	log.Printf("[engine] all engines built in %s", time.Since(start))

	analyzer := temporal.NewAnalyzer(ds.Ratings)

	var tmdbClient *tmdb.Client
	if cfg.TMDBAPIKey != "" {
		tmdbClient = tmdb.NewClient(cfg.TMDBAPIKey)
	} else {
		log.Printf("[tmdb] no api key, enrichment endpoints disabled")
	}

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, ratingRepo)
	recSvc := service.NewRecommendService(cfg, ds, content, collab, recRepo)
	temporalSvc := service.NewTemporalService(cfg, analyzer)
	enrichSvc := service.NewEnrichService(cfg, movieRepo, tmdbClient)

	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	recH := handler.NewRecommendHandler(recSvc)
	temporalH := handler.NewTemporalHandler(temporalSvc)
	adminH := handler.NewAdminHandler(enrichSvc)
	healthH := handler.NewHealthHandler(ds)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// public routes
	r.Get("/health", healthH.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/similar", recH.GetSimilarMovies)

	r.Get("/predict", recH.Predict)

	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/ratings", movieH.UserRatings)
		r.Get("/similar", recH.GetSimilarUsers)
		r.Get("/recommendations", recH.GetRecommendations)
		r.Get("/recommendations/history", recH.GetHistory)
		r.Get("/ws/recommendations", recH.GetRecommendationsWS)
	})

	r.Route("/temporal", func(r chi.Router) {
		r.Get("/trends", temporalH.Trends)
		r.Get("/seasonal", temporalH.Seasonal)
		r.Get("/popular", temporalH.Popular)
		r.Get("/users/{id}/weights", temporalH.UserWeights)
		r.Get("/report", temporalH.Report)
	})

	// protected routes
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Get("/me/recommendations", recH.GetMyRecommendations)

		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/admin/enrichment/status", adminH.EnrichmentStatus)
			r.Post("/admin/enrichment/run", adminH.RunEnrichment)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP listening on :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
