package recommender

import (
	"math"
	"sort"
	"strings"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// interactionMatrix is the user × car rental-count pivot for one location.
// Rows and columns are sorted by identifier, matching the pivot it models.
type interactionMatrix struct {
	users   []int64
	cars    []int64
	counts  [][]float64 // counts[u][c] = rentals of cars[c] by users[u]
	userIdx map[int64]int
	carIdx  map[int64]int
}

// buildInteractionMatrix pivots the rental history restricted to one pickup
// location. The location is matched case-insensitively against the history's
// own vocabulary, then resolved to its first stored spelling and restricted
// by exact match. Returns nil when there is no usable data.
func (e *Engine) buildInteractionMatrix(location string) *interactionMatrix {
	rentals := e.snap.Rentals()
	if len(rentals) == 0 {
		return nil
	}

	canonical, ok := canonicalLocation(rentals, location)
	if !ok {
		return nil
	}

	var rows []domain.Rental
	for _, r := range rentals {
		if r.PickupLocation == canonical {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	userSet := make(map[int64]struct{})
	carSet := make(map[int64]struct{})
	for _, r := range rows {
		userSet[r.UserID] = struct{}{}
		carSet[r.CarID] = struct{}{}
	}

	m := &interactionMatrix{
		users:   sortedIDs(userSet),
		cars:    sortedIDs(carSet),
		userIdx: make(map[int64]int, len(userSet)),
		carIdx:  make(map[int64]int, len(carSet)),
	}
	for i, u := range m.users {
		m.userIdx[u] = i
	}
	for i, c := range m.cars {
		m.carIdx[c] = i
	}

	m.counts = make([][]float64, len(m.users))
	for i := range m.counts {
		m.counts[i] = make([]float64, len(m.cars))
	}
	for _, r := range rows {
		m.counts[m.userIdx[r.UserID]][m.carIdx[r.CarID]]++
	}
	return m
}

// canonicalLocation finds the first distinct stored spelling of location in
// the rental history, ignoring case.
func canonicalLocation(rentals []domain.Rental, location string) (string, bool) {
	seen := make(map[string]struct{})
	for _, r := range rentals {
		if _, dup := seen[r.PickupLocation]; dup {
			continue
		}
		seen[r.PickupLocation] = struct{}{}
		if strings.EqualFold(r.PickupLocation, location) {
			return r.PickupLocation, true
		}
	}
	return "", false
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// itemSimilarity computes item-item cosine similarity between the matrix's
// car columns. Entry (i, j) compares cars[i] and cars[j] across all users.
func itemSimilarity(m *interactionMatrix) [][]float64 {
	if m == nil || len(m.cars) == 0 {
		return nil
	}

	// Column norms first so each pair costs one pass over the users.
	norms := make([]float64, len(m.cars))
	for j := range m.cars {
		var sum float64
		for i := range m.users {
			v := m.counts[i][j]
			sum += v * v
		}
		norms[j] = math.Sqrt(sum)
	}

	sim := make([][]float64, len(m.cars))
	for i := range sim {
		sim[i] = make([]float64, len(m.cars))
	}
	for a := range m.cars {
		for b := a; b < len(m.cars); b++ {
			var dot float64
			for u := range m.users {
				dot += m.counts[u][a] * m.counts[u][b]
			}
			var s float64
			if norms[a] > 0 && norms[b] > 0 {
				s = dot / (norms[a] * norms[b])
			}
			sim[a][b] = s
			sim[b][a] = s
		}
	}
	return sim
}

// CollaborativeRecommendations recommends a diverse top-5 for a user from
// the rental patterns of everyone at the same location.
func (e *Engine) CollaborativeRecommendations(userID int64, location string) ([]domain.CarDetail, error) {
	m := e.buildInteractionMatrix(location)
	if m == nil {
		return nil, domain.Errf(domain.CodeNoDataForLocation,
			"No rental data available for the selected location.")
	}

	sim := itemSimilarity(m)
	if sim == nil {
		return nil, domain.Errf(domain.CodeSimilarityUnavailable,
			"Could not compute similarity matrix.")
	}

	uIdx, ok := m.userIdx[userID]
	if !ok {
		return nil, domain.Errf(domain.CodeUserNotFound,
			"User not found in the selected location.")
	}

	// Cars this user has rented here, in column order.
	rented := make(map[int64]struct{})
	var rentedCols []int
	for j, carID := range m.cars {
		if m.counts[uIdx][j] > 0 {
			rented[carID] = struct{}{}
			rentedCols = append(rentedCols, j)
		}
	}

	// Pool the near neighbours of every rented car.
	pool := make(map[int64]struct{})
	for _, col := range rentedCols {
		scores := sim[col]
		order := make([]int, 0, len(m.cars)-1)
		for j := range m.cars {
			if j != col {
				order = append(order, j)
			}
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})
		if len(order) > similarPoolSize {
			order = order[:similarPoolSize]
		}
		for _, j := range order {
			pool[m.cars[j]] = struct{}{}
		}
	}
	for id := range rented {
		delete(pool, id)
	}
	if len(pool) == 0 {
		return nil, domain.Errf(domain.CodeNoRecommendations,
			"No recommendations available based on user history.")
	}

	// Resolve the pool against the catalog in catalog order, keeping the
	// grouping and the final output deterministic.
	var candidates []domain.Car
	for _, c := range e.snap.Cars() {
		if _, ok := pool[c.ID]; ok {
			candidates = append(candidates, c)
		}
	}

	groups := groupCars(candidates, func(c domain.Car) string { return c.AgencyName })
	picked := boundedDiverseTopK(groups, topK, true)

	ids := make([]int64, len(picked))
	for i, c := range picked {
		ids[i] = c.ID
	}
	return e.carDetails(ids), nil
}
