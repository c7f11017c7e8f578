package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tripglide/car-recommendation-service/internal/domain"
	"github.com/tripglide/car-recommendation-service/internal/recommender"
)

type contentRequest struct {
	Location         string `json:"location"`
	CarType          string `json:"car_type"`
	MaxPrice         string `json:"max_price"`
	ACRequired       string `json:"ac_required"`
	UnlimitedMileage string `json:"unlimited_mileage"`
}

type collaborativeRequest struct {
	UserID   int64  `json:"user_id"`
	Location string `json:"location"`
}

type checkUserRequest struct {
	UserID   int64  `json:"user_id"`
	Location string `json:"location"`
}

// GET /api/locations
func (h *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LocationsResponse{Locations: h.service.Locations()})
}

// GET /api/car_types
func (h *Handler) GetCarTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CarTypesResponse{CarTypes: h.service.CarTypes()})
}

// POST /api/check_user
func (h *Handler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var req checkUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON")
		return
	}
	if req.UserID <= 0 || req.Location == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "User ID and location are required")
		return
	}

	writeJSON(w, http.StatusOK, CheckUserResponse{
		UserExists: h.service.CheckUser(req.UserID, req.Location),
		Location:   req.Location,
		UserID:     req.UserID,
	})
}

// POST /api/content_recommendations
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON")
		return
	}
	if req.Location == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Location is required")
		return
	}

	result, err := h.service.ContentRecommendations(r.Context(), recommender.ContentRequest{
		Location:         req.Location,
		CarType:          req.CarType,
		MaxPrice:         req.MaxPrice,
		ACRequired:       req.ACRequired,
		UnlimitedMileage: req.UnlimitedMileage,
	})
	if err != nil {
		writeRecommendationError(w, err)
		return
	}

	writeResult(w, result)
}

// POST /api/collaborative_recommendations
func (h *Handler) CollaborativeRecommendations(w http.ResponseWriter, r *http.Request) {
	var req collaborativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be valid JSON")
		return
	}
	if req.UserID <= 0 || req.Location == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "User ID and location are required")
		return
	}

	result, err := h.service.CollaborativeRecommendations(r.Context(), req.UserID, req.Location)
	if err != nil {
		writeRecommendationError(w, err)
		return
	}

	writeResult(w, result)
}

func writeResult(w http.ResponseWriter, result *domain.RecommendationResult) {
	writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations: result.Recommendations,
		Count:           len(result.Recommendations),
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	})
}

// writeRecommendationError maps pipeline failures onto HTTP statuses. Every
// failure code is a client-addressable condition except an unknown error.
func writeRecommendationError(w http.ResponseWriter, err error) {
	if re, ok := domain.AsRecommendationError(err); ok {
		status := http.StatusBadRequest
		if re.Code == domain.CodeUserNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, re.Code, re.Message)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout",
			"Request timed out, please try again")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
