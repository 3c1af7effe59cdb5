package temporal

import (
	"math"
	"testing"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Unix()
}

func TestMondayIndexedWeekday(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC), 0}, // Monday
		{time.Date(2000, time.January, 7, 0, 0, 0, 0, time.UTC), 4}, // Friday
		{time.Date(2000, time.January, 9, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mondayIndexedWeekday(tt.day), tt.day.Weekday().String())
	}
}

func TestTrends(t *testing.T) {
	a := NewAnalyzer([]models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: ts(1999, time.March, 1, 10)},
		{UserID: 1, MovieID: 2, Rating: 2.0, Timestamp: ts(1999, time.March, 2, 11)},
		{UserID: 2, MovieID: 1, Rating: 5.0, Timestamp: ts(2001, time.July, 5, 22)},
	})
	trends := a.Trends()

	t.Run("yearly buckets sorted ascending", func(t *testing.T) {
		require.Len(t, trends.Yearly, 2)
		assert.Equal(t, 1999, trends.Yearly[0].Period)
		assert.InDelta(t, 3.0, trends.Yearly[0].Mean, 1e-9)
		assert.Equal(t, 2, trends.Yearly[0].Count)
		assert.Equal(t, 2001, trends.Yearly[1].Period)
		assert.Zero(t, trends.Yearly[1].Std, "single sample has no spread")
	})

	t.Run("monthly buckets", func(t *testing.T) {
		require.Len(t, trends.Monthly, 2)
		assert.Equal(t, int(time.March), trends.Monthly[0].Period)
		assert.Equal(t, int(time.July), trends.Monthly[1].Period)
	})
}

func TestSeasonal(t *testing.T) {
	a := NewAnalyzer([]models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: ts(1999, time.February, 1, 9)},  // Q1
		{UserID: 1, MovieID: 2, Rating: 3.0, Timestamp: ts(1999, time.June, 1, 21)},     // Q2
		{UserID: 2, MovieID: 1, Rating: 5.0, Timestamp: ts(1999, time.October, 1, 21)},  // Q4
		{UserID: 2, MovieID: 2, Rating: 2.0, Timestamp: ts(1999, time.December, 1, 21)}, // Q4
	})
	s := a.Seasonal()

	quarters := make(map[int]int)
	for _, q := range s.Quarterly {
		quarters[q.Period] = q.Count
	}
	assert.Equal(t, map[int]int{1: 1, 2: 1, 4: 2}, quarters)

	assert.Equal(t, 21, s.PeakHour)
}

func TestPopularityTrends(t *testing.T) {
	newest := time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC)
	var ratings []models.Rating

	// movie 1: 10 ratings of 4.5 inside the trailing year, 2 older
	// ratings of 3.0 -> recently popular and a rising star (+1.5)
	for i := 0; i < 10; i++ {
		ratings = append(ratings, models.Rating{
			UserID: 100 + i, MovieID: 1, Rating: 4.5,
			Timestamp: newest.AddDate(0, 0, -i).Unix(),
		})
	}
	for i := 0; i < 2; i++ {
		ratings = append(ratings, models.Rating{
			UserID: 200 + i, MovieID: 1, Rating: 3.0,
			Timestamp: newest.AddDate(-2, 0, 0).Unix(),
		})
	}
	// movie 2: only 3 recent ratings, below the noise floor
	for i := 0; i < 3; i++ {
		ratings = append(ratings, models.Rating{
			UserID: 300 + i, MovieID: 2, Rating: 5.0,
			Timestamp: newest.AddDate(0, 0, -i).Unix(),
		})
	}

	a := NewAnalyzer(ratings)
	trends := a.PopularityTrends(10)

	require.Len(t, trends.RecentPopular, 1)
	assert.Equal(t, 1, trends.RecentPopular[0].MovieID)
	assert.Equal(t, 10, trends.RecentPopular[0].RatingCount)
	assert.InDelta(t, 4.5, trends.RecentPopular[0].AvgRating, 1e-9)

	require.Len(t, trends.RisingStars, 1)
	star := trends.RisingStars[0]
	assert.Equal(t, 1, star.MovieID)
	assert.InDelta(t, 3.0, star.OldAvgRating, 1e-9)
	assert.InDelta(t, 1.5, star.RatingChange, 1e-9)
}

func TestUserTimeWeights(t *testing.T) {
	newest := time.Date(2005, time.June, 1, 0, 0, 0, 0, time.UTC)
	a := NewAnalyzer([]models.Rating{
		{UserID: 1, MovieID: 1, Rating: 5.0, Timestamp: newest.Unix()},
		{UserID: 1, MovieID: 2, Rating: 3.0, Timestamp: newest.AddDate(-1, 0, 0).Unix()},
		{UserID: 2, MovieID: 1, Rating: 1.0, Timestamp: newest.Unix()},
	})

	t.Run("newest rating carries full weight", func(t *testing.T) {
		w, err := a.UserTimeWeights(1, DefaultDecayFactor)
		require.NoError(t, err)
		require.Len(t, w.Weights, 2)
		assert.InDelta(t, 1.0, w.Weights[0].Weight, 1e-9)
		assert.Less(t, w.Weights[1].Weight, 1.0)
	})

	t.Run("year-old rating decays by exp(-decay)", func(t *testing.T) {
		w, err := a.UserTimeWeights(1, 0.1)
		require.NoError(t, err)
		// 365 days back: exp(-0.1 * 365/365)
		assert.InDelta(t, math.Exp(-0.1), w.Weights[1].Weight, 1e-9)
	})

	t.Run("weighted average leans toward recent ratings", func(t *testing.T) {
		w, err := a.UserTimeWeights(1, 0.1)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, w.TraditionalAvg, 1e-9)
		assert.Greater(t, w.TimeWeightedAvg, w.TraditionalAvg)
		assert.InDelta(t, w.TimeWeightedAvg-w.TraditionalAvg, w.Adjustment, 1e-9)
	})

	t.Run("stronger decay pulls harder", func(t *testing.T) {
		weak, err := a.UserTimeWeights(1, 0.1)
		require.NoError(t, err)
		strong, err := a.UserTimeWeights(1, 2.0)
		require.NoError(t, err)
		assert.Greater(t, strong.TimeWeightedAvg, weak.TimeWeightedAvg)
	})

	t.Run("unknown user is ErrNotFound", func(t *testing.T) {
		_, err := a.UserTimeWeights(99, 0.1)
		assert.ErrorIs(t, err, recommender.ErrNotFound)
	})
}

func TestReport(t *testing.T) {
	a := NewAnalyzer([]models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: ts(1999, time.March, 1, 10)},
		{UserID: 2, MovieID: 1, Rating: 5.0, Timestamp: ts(2001, time.July, 5, 22)},
	})
	rep := a.Report(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, rep, "TEMPORAL ANALYSIS REPORT")
	assert.Contains(t, rep, "Total Ratings: 2")
	assert.Contains(t, rep, "1999")
	assert.Contains(t, rep, "Peak Activity Hour")
}