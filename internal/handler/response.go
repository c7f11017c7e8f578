package handler

import "github.com/tripglide/car-recommendation-service/internal/domain"

type RecommendationResponse struct {
	Recommendations []domain.CarDetail        `json:"recommendations"`
	Count           int                       `json:"count"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type CarTypesResponse struct {
	CarTypes []string `json:"car_types"`
}

type CheckUserResponse struct {
	UserExists bool   `json:"user_exists"`
	Location   string `json:"location"`
	UserID     int64  `json:"user_id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
