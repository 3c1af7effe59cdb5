package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Movies most similar to one movie (genre TF-IDF cosine)
// @Tags recommend
// @Produce json
// @Param id path int true "movieId"
// @Param n query int false "list size (max 50)"
// @Success 200 {array} models.SimilarMovie
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/similar [get]
func (h *RecommendHandler) GetSimilarMovies(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))

	items, err := h.svc.SimilarMovies(movieID, n)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Users with the most similar rating behaviour
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "list size (max 50)"
// @Success 200 {array} models.SimilarUser
// @Failure 404 {object} map[string]string
// @Router /users/{id}/similar [get]
func (h *RecommendHandler) GetSimilarUsers(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	items, err := h.svc.SimilarUsers(userID, k)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Predict one user's rating for one movie
// @Tags recommend
// @Produce json
// @Param userId query int true "userId"
// @Param movieId query int true "movieId"
// @Param method query string false "collaborative | content | hybrid (default hybrid)"
// @Param collabWeight query number false "hybrid collaborative weight (default 0.7)"
// @Param contentWeight query number false "hybrid content weight (default 0.3)"
// @Success 200 {object} recommender.Prediction
// @Failure 400 {object} map[string]string
// @Router /predict [get]
func (h *RecommendHandler) Predict(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := strconv.Atoi(q.Get("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}
	movieID, err := strconv.Atoi(q.Get("movieId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movieId")
		return
	}

	method := q.Get("method")
	if method == "" {
		method = "hybrid"
	}
	collabWeight := 0.7
	if v, err := strconv.ParseFloat(q.Get("collabWeight"), 64); err == nil {
		collabWeight = v
	}
	contentWeight := 0.3
	if v, err := strconv.ParseFloat(q.Get("contentWeight"), 64); err == nil {
		contentWeight = v
	}

	pred, err := h.svc.Predict(userID, movieID, method, collabWeight, contentWeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pred)
}

func recRequestFromQuery(r *http.Request, userID int) service.RecRequest {
	q := r.URL.Query()
	n, _ := strconv.Atoi(q.Get("n"))
	cbWeight := -1.0 // out of range, service falls back to the configured weight
	if v, err := strconv.ParseFloat(q.Get("cbWeight"), 64); err == nil {
		cbWeight = v
	}
	return service.RecRequest{
		UserID:   userID,
		N:        n,
		CBWeight: cbWeight,
		Refresh:  q.Get("refresh") == "true",
	}
}

// @Summary Hybrid recommendations for a user
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param n query int false "list size (max 50)"
// @Param cbWeight query number false "content weight in [0,1]"
// @Param refresh query bool false "skip the Redis cache"
// @Success 200 {array} models.RecItem
// @Failure 404 {object} map[string]string
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	items, err := h.svc.Recommend(r.Context(), recRequestFromQuery(r, userID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Hybrid recommendations for the authenticated user
// @Tags recommend
// @Produce json
// @Param n query int false "list size (max 50)"
// @Param cbWeight query number false "content weight in [0,1]"
// @Param refresh query bool false "skip the Redis cache"
// @Success 200 {array} models.RecItem
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	items, err := h.svc.Recommend(r.Context(), recRequestFromQuery(r, userID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Previously served recommendation lists
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "history size"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hist, err := h.svc.History(r.Context(), userID, int64(limit))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recommendations over WebSocket with progress messages
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param n query int false "list size (max 50)"
// @Param cbWeight query number false "content weight in [0,1]"
// @Param refresh query bool false "skip the Redis cache"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not open websocket")
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	req := recRequestFromQuery(r, userID)

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "connection open, computing recommendations",
	})

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}
