// Package tmdb is a minimal client for The Movie Database search API,
// used by the metadata enrichment batch.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests against a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchResult is one movie from the TMDB search response.
type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchMovie finds the best match for a title; year 0 means no year
// filter. Returns (nil, nil) when TMDB has no match.
func (c *Client) SearchMovie(ctx context.Context, title string, year int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/movie?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb search: status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, nil
	}
	return &body.Results[0], nil
}

// ParseTitleYear splits a MovieLens "Title (1999)" string into the
// bare title and the year (0 when absent or unparseable).
func ParseTitleYear(s string) (title string, year int) {
	title = strings.TrimSpace(s)
	open := strings.LastIndex(title, "(")
	if open < 0 || !strings.HasSuffix(title, ")") {
		return title, 0
	}
	y, err := strconv.Atoi(title[open+1 : len(title)-1])
	if err != nil {
		return title, 0
	}
	return strings.TrimSpace(title[:open]), y
}
