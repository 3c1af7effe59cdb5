// Command evaluate runs the offline evaluation harness: it splits the
// MovieLens ratings into train/test, rebuilds the engines on the train
// half and scores each prediction method on the held-out half.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/evalharness"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		ratingsPath = flag.String("ratings", "data/ml-latest-small/ratings.csv", "ratings.csv path")
		moviesPath  = flag.String("movies", "data/ml-latest-small/movies.csv", "movies.csv path")
		k           = flag.Int("k", 10, "top-K cutoff for ranking metrics")
		testFrac    = flag.Float64("test", 0.2, "held-out fraction")
		seed        = flag.Int64("seed", 42, "split shuffle seed")
		sample      = flag.Int("sample", 0, "cap on test pairs per method (0 = all)")
	)
	flag.Parse()

	ds, err := recommender.LoadCSV(*ratingsPath, *moviesPath)
	if err != nil {
		log.Fatalf("[evaluate] loading dataset: %v", err)
	}
	log.Printf("[evaluate] dataset: %d ratings, %d movies", len(ds.Ratings), len(ds.Movies))

	train, test := split(ds.Ratings, *testFrac, *seed)
	log.Printf("[evaluate] split: %d train / %d test", len(train), len(test))
	if *sample > 0 && len(test) > *sample {
		test = test[:*sample]
		log.Printf("[evaluate] sampling %d test pairs", len(test))
	}

	trainDS := &recommender.Dataset{Ratings: train, Movies: ds.Movies}
	content := recommender.BuildContentEngine(trainDS.Movies)
	collab := recommender.BuildCollaborativeEngine(trainDS.Ratings)
	predictor := recommender.NewPredictor(trainDS, content, collab)

	popularity := trainDS.Popularity()
	totalMovies := len(ds.Movies)

	type method struct {
		name    string
		predict func(userID, movieID int) recommender.Prediction
	}
	methods := []method{
		{"Content-Based", func(u, m int) recommender.Prediction {
			return predictor.PredictContentBased(u, m, predictor.CBNeighbors)
		}},
		{"Collaborative", func(u, m int) recommender.Prediction {
			return predictor.PredictCollaborative(u, m, predictor.CFNeighbors)
		}},
		{"Hybrid", func(u, m int) recommender.Prediction {
			return predictor.PredictHybrid(u, m, 0.7, 0.3)
		}},
	}

	results := make([]evalharness.Metrics, len(methods))
	for i, mt := range methods {
		preds := make([]evalharness.Prediction, len(test))
		for j, row := range test {
			p := mt.predict(row.UserID, row.MovieID)
			preds[j] = evalharness.Prediction{
				UserID:    row.UserID,
				MovieID:   row.MovieID,
				Predicted: p.Rating,
			}
		}
		ev := evalharness.New(preds, test, *k)
		results[i] = ev.All(totalMovies, popularity)
		fmt.Println(evalharness.Report(mt.name, results[i]))
	}

	printComparison(methods[0].name, methods[1].name, methods[2].name, results)
}

// split shuffles a copy of the ratings with the given seed and cuts
// the last testFrac off as the held-out set.
func split(ratings []models.Rating, testFrac float64, seed int64) (train, test []models.Rating) {
	shuffled := make([]models.Rating, len(ratings))
	copy(shuffled, ratings)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := len(shuffled) - int(float64(len(shuffled))*testFrac)
	return shuffled[:cut], shuffled[cut:]
}

func printComparison(a, b, c string, results []evalharness.Metrics) {
	val := func(p *float64) string {
		if p == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.4f", *p)
	}

	fmt.Println()
	fmt.Printf("%-16s %10s %10s %10s %10s %10s\n", "METHOD", "RMSE", "MAE", "PREC@K", "RECALL@K", "F1")
	for i, name := range []string{a, b, c} {
		m := results[i]
		fmt.Printf("%-16s %10s %10s %10.4f %10.4f %10.4f\n",
			name, val(m.RMSE), val(m.MAE), m.PrecisionAtK, m.RecallAtK, m.F1)
	}
}
