package evalharness

import (
	"math"
	"testing"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRMSEAndMAE(t *testing.T) {
	actuals := []models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0},
		{UserID: 1, MovieID: 2, Rating: 2.0},
	}

	t.Run("hand-checked values", func(t *testing.T) {
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 3.0},
			{UserID: 1, MovieID: 2, Predicted: 4.0},
		}, actuals, 10)

		rmse, ok := e.RMSE()
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt((1.0+4.0)/2), rmse, 1e-9)

		mae, ok := e.MAE()
		require.True(t, ok)
		assert.InDelta(t, 1.5, mae, 1e-9)
	})

	t.Run("perfect predictions", func(t *testing.T) {
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.0},
			{UserID: 1, MovieID: 2, Predicted: 2.0},
		}, actuals, 10)

		rmse, _ := e.RMSE()
		mae, _ := e.MAE()
		assert.Zero(t, rmse)
		assert.Zero(t, mae)
	})

	t.Run("unmatched pairs are dropped by the join", func(t *testing.T) {
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.0},
			{UserID: 9, MovieID: 9, Predicted: 1.0}, // no actual
		}, actuals, 10)
		assert.Equal(t, 1, e.JoinedLen())

		rmse, ok := e.RMSE()
		require.True(t, ok)
		assert.Zero(t, rmse)
	})

	t.Run("empty join is undefined, not zero", func(t *testing.T) {
		e := New([]Prediction{{UserID: 9, MovieID: 9, Predicted: 1.0}}, actuals, 10)
		assert.Equal(t, 0, e.JoinedLen())

		_, ok := e.RMSE()
		assert.False(t, ok)
		_, ok = e.MAE()
		assert.False(t, ok)

		m := e.All(100, nil)
		assert.Nil(t, m.RMSE)
		assert.Nil(t, m.MAE)
	})
}

func TestPrecisionAtK(t *testing.T) {
	t.Run("denominator is the fixed K", func(t *testing.T) {
		// one user, two joined rows, both relevant, k=5 -> 2/5
		actuals := []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 4.0},
			{UserID: 1, MovieID: 2, Rating: 5.0},
		}
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.5},
			{UserID: 1, MovieID: 2, Predicted: 4.0},
		}, actuals, 5)

		assert.InDelta(t, 2.0/5, e.PrecisionAtK(DefaultRelevanceThreshold), 1e-9)
	})

	t.Run("only the top K count", func(t *testing.T) {
		// k=1: the highest-predicted row is irrelevant, the relevant
		// row is ranked second and doesn't count
		actuals := []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 2.0},
			{UserID: 1, MovieID: 2, Rating: 5.0},
		}
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.9},
			{UserID: 1, MovieID: 2, Predicted: 4.0},
		}, actuals, 1)

		assert.Zero(t, e.PrecisionAtK(DefaultRelevanceThreshold))
	})
}

func TestRecallAtK(t *testing.T) {
	t.Run("users with no relevant items are skipped", func(t *testing.T) {
		actuals := []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5.0}, // relevant, in top-k
			{UserID: 2, MovieID: 1, Rating: 1.0}, // user 2 has nothing relevant
		}
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.0},
			{UserID: 2, MovieID: 1, Predicted: 4.0},
		}, actuals, 5)

		// recall averaged over user 1 only
		assert.InDelta(t, 1.0, e.RecallAtK(DefaultRelevanceThreshold), 1e-9)
	})

	t.Run("relevant item outside top K lowers recall", func(t *testing.T) {
		actuals := []models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5.0},
			{UserID: 1, MovieID: 2, Rating: 5.0},
		}
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.9},
			{UserID: 1, MovieID: 2, Predicted: 4.0},
		}, actuals, 1)

		assert.InDelta(t, 0.5, e.RecallAtK(DefaultRelevanceThreshold), 1e-9)
	})
}

func TestF1(t *testing.T) {
	actuals := []models.Rating{
		{UserID: 1, MovieID: 1, Rating: 5.0},
		{UserID: 1, MovieID: 2, Rating: 5.0},
	}
	e := New([]Prediction{
		{UserID: 1, MovieID: 1, Predicted: 4.9},
		{UserID: 1, MovieID: 2, Predicted: 4.0},
	}, actuals, 1)

	p := e.PrecisionAtK(DefaultRelevanceThreshold) // 1.0
	r := e.RecallAtK(DefaultRelevanceThreshold)    // 0.5
	assert.InDelta(t, 2*p*r/(p+r), e.F1(DefaultRelevanceThreshold), 1e-9)

	t.Run("zero precision and recall give zero, not NaN", func(t *testing.T) {
		empty := New(nil, actuals, 1)
		assert.Zero(t, empty.F1(DefaultRelevanceThreshold))
	})
}

func TestCoverage(t *testing.T) {
	e := New([]Prediction{
		{UserID: 1, MovieID: 1, Predicted: 4.0},
		{UserID: 1, MovieID: 2, Predicted: 3.0},
		{UserID: 2, MovieID: 1, Predicted: 2.0}, // duplicate movie
	}, nil, 10)

	// 2 distinct movies out of a 4-movie catalog, as a percentage,
	// counted over the whole prediction set even though the join is empty
	assert.InDelta(t, 50.0, e.Coverage(4), 1e-9)
	assert.Zero(t, e.Coverage(0))
}

func TestDiversity(t *testing.T) {
	t.Run("distinct ratio per user", func(t *testing.T) {
		e := New([]Prediction{
			{UserID: 1, MovieID: 1, Predicted: 4.0},
			{UserID: 1, MovieID: 1, Predicted: 4.0}, // duplicate -> ratio 0.5
			{UserID: 2, MovieID: 1, Predicted: 4.0},
			{UserID: 2, MovieID: 2, Predicted: 4.0}, // all distinct -> ratio 1
		}, nil, 10)

		assert.InDelta(t, 0.75, e.Diversity(), 1e-9)
	})

	t.Run("single-prediction users are skipped", func(t *testing.T) {
		e := New([]Prediction{{UserID: 1, MovieID: 1, Predicted: 4.0}}, nil, 10)
		assert.Zero(t, e.Diversity())
	})
}

func TestNovelty(t *testing.T) {
	preds := []Prediction{
		{UserID: 1, MovieID: 1, Predicted: 4.0},
		{UserID: 1, MovieID: 2, Predicted: 3.0},
		{UserID: 1, MovieID: 9, Predicted: 3.0}, // no popularity entry
	}
	e := New(preds, nil, 10)

	nov, ok := e.Novelty(map[int]float64{1: 1.0, 2: 0.2})
	require.True(t, ok)
	assert.InDelta(t, (0.0+0.8)/2, nov, 1e-9)

	_, ok = e.Novelty(map[int]float64{})
	assert.False(t, ok)
}

func TestAllAndReport(t *testing.T) {
	actuals := []models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0},
		{UserID: 1, MovieID: 2, Rating: 2.0},
	}
	e := New([]Prediction{
		{UserID: 1, MovieID: 1, Predicted: 4.0},
		{UserID: 1, MovieID: 2, Predicted: 2.5},
	}, actuals, 10)

	m := e.All(4, map[int]float64{1: 0.5, 2: 0.5})
	require.NotNil(t, m.RMSE)
	require.NotNil(t, m.MAE)
	require.NotNil(t, m.Novelty)
	assert.Equal(t, 2, m.SampleSize)
	assert.Equal(t, 10, m.K)

	rep := Report("Hybrid", m)
	assert.Contains(t, rep, "Hybrid")
	assert.Contains(t, rep, "RMSE")
	assert.Contains(t, rep, "Precision@10")
}
