package repository

import (
	"context"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// numeric casts: ratings seeded from NDJSON/CSV may come back from
// Mongo as int32, int64 or float64 depending on the loader.
func asInt(v any) int {
	switch x := v.(type) {
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func decodeRating(raw bson.M) models.Rating {
	return models.Rating{
		UserID:    asInt(raw["userId"]),
		MovieID:   asInt(raw["movieId"]),
		Rating:    asFloat64(raw["rating"]),
		Timestamp: asInt64(raw["timestamp"]),
	}
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Rating, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Rating
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, decodeRating(raw))
	}
	return out, cur.Err()
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.Rating, error) {
	return r.find(ctx,
		bson.M{"userId": userID},
		options.Find().SetLimit(int64(limit)).SetSkip(int64(offset)),
	)
}

// LoadAll streams the full ratings collection for the in-memory store.
// Sorted by insertion order (_id), so the engines see the same row
// order as a CSV load of the seeded file.
func (r *RatingRepository) LoadAll(ctx context.Context) ([]models.Rating, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// InsertMany bulk-loads seed rows.
func (r *RatingRepository) InsertMany(ctx context.Context, rows []models.Rating) error {
	if len(rows) == 0 {
		return nil
	}
	payload := make([]any, len(rows))
	for i := range rows {
		payload[i] = rows[i]
	}
	_, err := r.col.InsertMany(ctx, payload)
	return err
}
