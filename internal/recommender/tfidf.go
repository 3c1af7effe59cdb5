package recommender

import (
	"math"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// englishStopWords is the usual English stop-word list. Genre tags
// rarely contain any of these, but the filter changes a few encodings
// (e.g. "(no genres listed)" loses its "no"), so it stays on.
var englishStopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a about above after again against all am an and any are as at
		be because been before being below between both but by can
		cannot could did do does doing down during each few for from
		further had has have having he her here hers herself him
		himself his how i if in into is it its itself just me more
		most my myself no nor not now of off on once only or other
		our ours ourselves out over own same she should so some such
		than that the their theirs them themselves then there these
		they this those through to too under until up very was we
		were what when where which while who whom why will with you
		your yours yourself yourselves`) {
		englishStopWords[w] = struct{}{}
	}
}

// tokenize lowercases and splits on non-alphanumeric runs, keeping
// tokens of at least two characters (single letters are noise for
// genre tags like "Sci-Fi" -> "sci", "fi").
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := englishStopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// tfidfEncode builds L2-normalized TF-IDF rows for the given
// documents. Smoothed IDF: ln((1+n)/(1+df)) + 1, so terms appearing
// in every document still carry weight 1 before normalization.
func tfidfEncode(docs []string) [][]float64 {
	n := len(docs)
	termIndex := make(map[string]int)
	counts := make([]map[string]int, n)
	df := make(map[string]int)

	for i, doc := range docs {
		c := make(map[string]int)
		for _, tok := range tokenize(doc) {
			c[tok]++
		}
		counts[i] = c
		for tok := range c {
			df[tok]++
			if _, ok := termIndex[tok]; !ok {
				termIndex[tok] = len(termIndex)
			}
		}
	}

	idf := make([]float64, len(termIndex))
	for tok, j := range termIndex {
		idf[j] = math.Log(float64(1+n)/float64(1+df[tok])) + 1
	}

	rows := make([][]float64, n)
	for i, c := range counts {
		row := make([]float64, len(termIndex))
		for tok, tf := range c {
			j := termIndex[tok]
			row[j] = float64(tf) * idf[j]
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}
	return rows
}
