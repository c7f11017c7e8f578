package recommender

import (
	"sort"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// recommendSimilarCars picks a diverse top-5 around the highest-rated car in
// the candidate set. Missing preconditions yield an empty list, not an
// error.
func (e *Engine) recommendSimilarCars(cs *candidateSet, sim [][]float64) []domain.CarDetail {
	if cs == nil || len(cs.cars) == 0 || sim == nil {
		return []domain.CarDetail{}
	}

	// Reference car: maximum rating, first occurrence on ties.
	refIdx := 0
	for i, c := range cs.cars {
		if c.Rating > cs.cars[refIdx].Rating {
			refIdx = i
		}
	}
	if refIdx >= len(sim) {
		return []domain.CarDetail{}
	}

	// All other rows by descending similarity to the reference, ties broken
	// by row order, capped at the neighbour pool size.
	scores := sim[refIdx]
	order := make([]int, 0, len(cs.cars)-1)
	for i := range cs.cars {
		if i != refIdx {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	if len(order) > similarPoolSize {
		order = order[:similarPoolSize]
	}

	neighbors := make([]domain.Car, len(order))
	for i, idx := range order {
		neighbors[i] = cs.cars[idx]
	}

	groups := groupCars(neighbors, func(c domain.Car) string { return c.Make })
	picked := boundedDiverseTopK(groups, topK, false)

	ids := make([]int64, len(picked))
	for i, c := range picked {
		ids[i] = c.ID
	}
	return e.carDetails(ids)
}
