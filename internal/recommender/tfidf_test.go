package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"pipe-free genre tags", "Action Crime", []string{"action", "crime"}},
		{"hyphen splits sci-fi", "Sci-Fi", []string{"sci", "fi"}},
		{"stop words removed", "(no genres listed)", []string{"genres", "listed"}},
		{"single letters dropped", "a b IMAX", []string{"imax"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTFIDFEncodeRowsAreUnitVectors(t *testing.T) {
	rows := tfidfEncode([]string{"action crime", "action", "comedy", ""})
	require.Len(t, rows, 4)

	for i, row := range rows[:3] {
		var norm float64
		for _, v := range row {
			norm += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "row %d should be L2-normalized", i)
	}

	// empty document encodes to the zero vector
	for _, v := range rows[3] {
		assert.Zero(t, v)
	}
}

func TestTFIDFEncodeIDFWeighting(t *testing.T) {
	// "action" appears in both docs, "crime" only in the first; the
	// rarer term must carry more weight within the first row, and the
	// weight ratio is exactly the smoothed IDF ratio.
	rows := tfidfEncode([]string{"action crime", "action"})

	var positives []float64
	for _, v := range rows[0] {
		if v > 0 {
			positives = append(positives, v)
		}
	}
	require.Len(t, positives, 2)

	lo, hi := positives[0], positives[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	// idf(crime) = ln(3/2) + 1, idf(action) = ln(3/3) + 1 = 1
	assert.InDelta(t, math.Log(1.5)+1, hi/lo, 1e-9)
}
