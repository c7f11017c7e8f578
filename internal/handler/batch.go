package handler

import (
	"net/http"
	"strconv"
)

// GET /api/recommendations/batch?location=Pune&page=1&limit=20
func (h *Handler) BatchRecommendations(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Location is required")
		return
	}

	// Parse and validate page
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 || parsed > 10000 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid page parameter")
			return
		}
		page = parsed
	}

	// Parse and validate limit
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.service.BatchCollaborative(r.Context(), location, page, limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "no_data_for_location", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
