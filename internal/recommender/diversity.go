package recommender

import (
	"sort"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// carGroup is one bucket of candidates sharing a grouping key (manufacturer
// or agency). Group order is first-seen order of the key.
type carGroup struct {
	key  string
	cars []domain.Car
}

// groupCars buckets cars by key, preserving both the first-seen order of the
// keys and the order of members inside each bucket.
func groupCars(cars []domain.Car, key func(domain.Car) string) []carGroup {
	var groups []carGroup
	index := make(map[string]int)
	for _, c := range cars {
		k := key(c)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, carGroup{key: k})
		}
		groups[i].cars = append(groups[i].cars, c)
	}
	return groups
}

// boundedDiverseTopK picks at most k cars from the groups, preferring
// coverage across groups over strict candidate order:
//
//  1. one car (the first) from each group, in group order, until k;
//  2. if short, remaining cars from groups not used in phase 1;
//  3. if still short, any unselected car. By default phase 3 walks the
//     groups in order; with backfillByRating it ranks the leftovers by
//     descending rating first.
//
// The three phases run in exactly this order; phase 1 alone yields one car
// per group whenever there are at least k groups.
func boundedDiverseTopK(groups []carGroup, k int, backfillByRating bool) []domain.Car {
	selected := make([]domain.Car, 0, k)
	used := make(map[string]struct{})

	for _, g := range groups {
		if len(selected) >= k {
			break
		}
		selected = append(selected, g.cars[0])
		used[g.key] = struct{}{}
	}

	if len(selected) < k {
		for _, g := range groups {
			if _, ok := used[g.key]; ok {
				continue
			}
			for _, c := range g.cars {
				if len(selected) >= k {
					break
				}
				if !containsCar(selected, c) {
					selected = append(selected, c)
				}
			}
		}
	}

	if len(selected) < k {
		var leftovers []domain.Car
		for _, g := range groups {
			for _, c := range g.cars {
				if !containsCar(selected, c) && !containsCar(leftovers, c) {
					leftovers = append(leftovers, c)
				}
			}
		}
		if backfillByRating {
			sort.SliceStable(leftovers, func(i, j int) bool {
				return leftovers[i].Rating > leftovers[j].Rating
			})
		}
		for _, c := range leftovers {
			if len(selected) >= k {
				break
			}
			selected = append(selected, c)
		}
	}

	return selected
}

// containsCar compares whole rows, not just identifiers, mirroring the
// duplicate check in the selection phases.
func containsCar(cars []domain.Car, c domain.Car) bool {
	for _, have := range cars {
		if have == c {
			return true
		}
	}
	return false
}
