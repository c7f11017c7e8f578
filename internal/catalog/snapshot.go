package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// Vocabulary served when the catalog carries no cars at all.
var fallbackCarTypes = []string{"Hatchback", "Luxury", "SUV", "Sedan"}

// Snapshot is the immutable view of the catalog and rental history, loaded
// once at process start. Every recommendation request reads from the same
// snapshot; nothing here is ever mutated after construction, so concurrent
// access needs no locking.
type Snapshot struct {
	cars     []domain.Car
	rentals  []domain.Rental
	byID     map[int64]domain.Car
	cities   []string
	carTypes []string
	minPrice float64
	loadedAt time.Time
}

func NewSnapshot(cars []domain.Car, rentals []domain.Rental) *Snapshot {
	s := &Snapshot{
		cars:     cars,
		rentals:  rentals,
		byID:     make(map[int64]domain.Car, len(cars)),
		loadedAt: time.Now(),
	}

	citySet := make(map[string]struct{})
	typeSet := make(map[string]struct{})
	for i, c := range cars {
		if _, ok := s.byID[c.ID]; !ok {
			s.byID[c.ID] = c
		}
		citySet[c.City] = struct{}{}
		typeSet[c.CarType] = struct{}{}
		if i == 0 || c.PricePerHour < s.minPrice {
			s.minPrice = c.PricePerHour
		}
	}

	s.cities = sortedKeys(citySet)
	s.carTypes = sortedKeys(typeSet)
	return s
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Cars returns the catalog rows in load order. Callers must treat the slice
// as read-only.
func (s *Snapshot) Cars() []domain.Car {
	return s.cars
}

// Rentals returns the historical rental log in load order, read-only.
func (s *Snapshot) Rentals() []domain.Rental {
	return s.rentals
}

func (s *Snapshot) CarByID(id int64) (domain.Car, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Locations returns the sorted distinct pickup cities present in the catalog.
func (s *Snapshot) Locations() []string {
	return s.cities
}

// CarTypes returns the sorted distinct car types present in the catalog, or
// the fallback vocabulary when the catalog is empty.
func (s *Snapshot) CarTypes() []string {
	if len(s.cars) == 0 {
		return fallbackCarTypes
	}
	return s.carTypes
}

// HasCarType reports whether t matches a catalog car type, ignoring case.
func (s *Snapshot) HasCarType(t string) bool {
	for _, ct := range s.carTypes {
		if strings.EqualFold(ct, t) {
			return true
		}
	}
	return false
}

// MinPricePerHour is the cheapest hourly price across the whole catalog.
func (s *Snapshot) MinPricePerHour() float64 {
	return s.minPrice
}

func (s *Snapshot) Empty() bool {
	return len(s.cars) == 0
}

func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
