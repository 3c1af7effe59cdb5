package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ferhan0/Movie-Recommendation-System/internal/recommender"
)

// Every endpoint answers the same envelope: {"success": true, "data": ...}
// or {"success": false, "error": "..."}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// writeServiceError maps service errors onto status codes: unknown
// entities are 404, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, recommender.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
