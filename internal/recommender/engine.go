package recommender

import (
	"strings"

	"github.com/tripglide/car-recommendation-service/internal/catalog"
	"github.com/tripglide/car-recommendation-service/internal/domain"
)

const (
	// Neighbours considered around the reference item before the diversity
	// pass. Wide enough that five diverse picks are almost always available.
	similarPoolSize = 39

	// Results returned by either pipeline.
	topK = 5
)

// Engine runs both recommendation pipelines against one immutable snapshot.
// It holds no per-request state: every intermediate (candidate set,
// similarity matrices, interaction matrix) lives on the stack of the request
// that built it, so a single Engine is safe for concurrent use.
type Engine struct {
	snap *catalog.Snapshot
}

func NewEngine(snap *catalog.Snapshot) *Engine {
	return &Engine{snap: snap}
}

// ContentRequest carries the raw inputs of a content-based recommendation.
// Empty optional fields take the documented defaults.
type ContentRequest struct {
	Location         string
	CarType          string
	MaxPrice         string
	ACRequired       string
	UnlimitedMileage string
}

// ContentRecommendations runs the content-based pipeline:
// location filter, preference refinement, TF-IDF similarity, diverse top-5.
func (e *Engine) ContentRecommendations(req ContentRequest) ([]domain.CarDetail, error) {
	cs, err := e.filterByLocation(req.Location)
	if err != nil {
		return nil, err
	}

	prefs, err := e.parsePreferences(req)
	if err != nil {
		return nil, err
	}
	if err := cs.applyPreferences(prefs); err != nil {
		return nil, err
	}

	sim, err := computeSimilarity(cs)
	if err != nil {
		return nil, err
	}

	return e.recommendSimilarCars(cs, sim), nil
}

// UserExists reports whether userID has any rental at location,
// matching the location case-insensitively.
func (e *Engine) UserExists(userID int64, location string) bool {
	for _, r := range e.snap.Rentals() {
		if r.UserID == userID && strings.EqualFold(r.PickupLocation, location) {
			return true
		}
	}
	return false
}
