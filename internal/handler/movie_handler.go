package handler

import (
	"net/http"
	"strconv"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Movie details
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.MovieDoc
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	m, err := h.svc.GetByID(r.Context(), movieID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Search the catalog
// @Tags movies
// @Produce json
// @Param q query string false "title substring (case-insensitive)"
// @Param genre query string false "exact genre tag"
// @Param yearFrom query int false "release year lower bound"
// @Param yearTo query int false "release year upper bound"
// @Param limit query int false "page size (max 100)"
// @Param offset query int false "page offset"
// @Success 200 {array} models.MovieDoc
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	yearFrom, _ := strconv.Atoi(q.Get("yearFrom"))
	yearTo, _ := strconv.Atoi(q.Get("yearTo"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	movies, err := h.svc.Search(r.Context(), service.SearchParams{
		Query:    q.Get("q"),
		Genre:    q.Get("genre"),
		YearFrom: yearFrom,
		YearTo:   yearTo,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Top movies by popularity or average rating
// @Tags movies
// @Produce json
// @Param by query string false "popular | rating (default popular)"
// @Param limit query int false "list size (max 100)"
// @Success 200 {array} models.MovieDoc
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	movies, err := h.svc.Top(r.Context(), r.URL.Query().Get("by"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// @Summary Ratings of one user
// @Tags users
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "page size (max 500)"
// @Param offset query int false "page offset"
// @Success 200 {array} models.Rating
// @Router /users/{id}/ratings [get]
func (h *MovieHandler) UserRatings(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	ratings, err := h.svc.UserRatings(r.Context(), userID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}
