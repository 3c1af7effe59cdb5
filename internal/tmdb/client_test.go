package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitleYear(t *testing.T) {
	tests := []struct {
		in    string
		title string
		year  int
	}{
		{"Heat (1995)", "Heat", 1995},
		{"Heat", "Heat", 0},
		{"Seven (a.k.a. Se7en) (1995)", "Seven (a.k.a. Se7en)", 1995},
		{"Movie (19xx)", "Movie (19xx)", 0},
		{"  Spaced Out (2000)  ", "Spaced Out", 2000},
		{"", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			title, year := ParseTitleYear(tt.in)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestSearchMovie(t *testing.T) {
	t.Run("first result wins, params forwarded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/movie", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "Heat", r.URL.Query().Get("query"))
			assert.Equal(t, "1995", r.URL.Query().Get("year"))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{
					{"id": 949, "title": "Heat", "vote_average": 7.9, "release_date": "1995-12-15"},
					{"id": 999, "title": "Heat 2"},
				},
			})
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("test-key", srv.URL)
		res, err := c.SearchMovie(context.Background(), "Heat", 1995)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 949, res.ID)
		assert.InDelta(t, 7.9, res.VoteAverage, 1e-9)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.Query().Get("year"), "year 0 must not be sent")
			_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("test-key", srv.URL)
		res, err := c.SearchMovie(context.Background(), "No Such Movie", 0)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClientWithBaseURL("bad-key", srv.URL)
		_, err := c.SearchMovie(context.Background(), "Heat", 1995)
		assert.Error(t, err)
	})
}
