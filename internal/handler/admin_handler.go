package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"
)

// AdminHandler exposes the TMDB enrichment maintenance endpoints.
type AdminHandler struct {
	enrich *service.EnrichService
}

func NewAdminHandler(enrich *service.EnrichService) *AdminHandler {
	return &AdminHandler{enrich: enrich}
}

// @Summary TMDB enrichment coverage
// @Tags admin
// @Produce json
// @Success 200 {object} service.EnrichmentStatus
// @Security BearerAuth
// @Router /admin/enrichment/status [get]
func (h *AdminHandler) EnrichmentStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.enrich.Status(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type enrichRequest struct {
	Limit int `json:"limit"`
}

// @Summary Run one TMDB enrichment batch
// @Tags admin
// @Accept json
// @Produce json
// @Param body body enrichRequest false "batch size"
// @Success 200 {object} service.EnrichmentSummary
// @Security BearerAuth
// @Router /admin/enrichment/run [post]
func (h *AdminHandler) RunEnrichment(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	summary, err := h.enrich.RunBatch(r.Context(), req.Limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
