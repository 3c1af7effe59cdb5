package handler

import (
	"net/http"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
)

type HealthHandler struct {
	ds *recommender.Dataset
}

func NewHealthHandler(ds *recommender.Dataset) *HealthHandler {
	return &HealthHandler{ds: ds}
}

// @Summary Healthcheck with dataset counts
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	users := make(map[int]struct{})
	for _, rt := range h.ds.Ratings {
		users[rt.UserID] = struct{}{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"movies":  len(h.ds.Movies),
		"ratings": len(h.ds.Ratings),
		"users":   len(users),
	})
}
