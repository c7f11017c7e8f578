package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tripglide/car-recommendation-service/internal/handler"
)

func Setup(h *handler.Handler, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	// Routes
	r.Get("/api/locations", h.GetLocations)
	r.Get("/api/car_types", h.GetCarTypes)
	r.Post("/api/check_user", h.CheckUser)
	r.Post("/api/content_recommendations", h.ContentRecommendations)
	r.Post("/api/collaborative_recommendations", h.CollaborativeRecommendations)
	r.Get("/api/recommendations/batch", h.BatchRecommendations)
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
