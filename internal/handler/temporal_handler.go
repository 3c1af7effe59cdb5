package handler

import (
	"net/http"
	"strconv"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"

	"github.com/go-chi/chi/v5"
)

type TemporalHandler struct {
	svc *service.TemporalService
}

func NewTemporalHandler(s *service.TemporalService) *TemporalHandler {
	return &TemporalHandler{svc: s}
}

// @Summary Rating trends by year, month and day of week
// @Tags temporal
// @Produce json
// @Success 200 {object} temporal.Trends
// @Router /temporal/trends [get]
func (h *TemporalHandler) Trends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Trends(r.Context()))
}

// @Summary Seasonal rating patterns (quarter, hour, peak hour)
// @Tags temporal
// @Produce json
// @Success 200 {object} temporal.Seasonal
// @Router /temporal/seasonal [get]
func (h *TemporalHandler) Seasonal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Seasonal(r.Context()))
}

// @Summary Recently popular movies and rising stars
// @Tags temporal
// @Produce json
// @Param topN query int false "list size (max 50, default 10)"
// @Success 200 {object} temporal.PopularityTrends
// @Router /temporal/popular [get]
func (h *TemporalHandler) Popular(w http.ResponseWriter, r *http.Request) {
	topN, _ := strconv.Atoi(r.URL.Query().Get("topN"))
	writeJSON(w, http.StatusOK, h.svc.PopularityTrends(r.Context(), topN))
}

// @Summary Time-decay weights of one user's ratings
// @Tags temporal
// @Produce json
// @Param id path int true "userId"
// @Param decay query number false "decay factor (default from config)"
// @Success 200 {object} temporal.UserWeights
// @Failure 404 {object} map[string]string
// @Router /temporal/users/{id}/weights [get]
func (h *TemporalHandler) UserWeights(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	decay, _ := strconv.ParseFloat(r.URL.Query().Get("decay"), 64)

	weights, err := h.svc.UserTimeWeights(userID, decay)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, weights)
}

// @Summary Full temporal analysis report (plain text)
// @Tags temporal
// @Produce plain
// @Success 200 {string} string
// @Router /temporal/report [get]
func (h *TemporalHandler) Report(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.svc.Report()))
}
