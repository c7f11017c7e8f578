package catalog

import (
	"sort"
	"testing"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

func snapshotFixture() *Snapshot {
	cars := []domain.Car{
		{ID: 1, Make: "Tata", CarType: "SUV", City: "Pune", PricePerHour: 300},
		{ID: 2, Make: "Hyundai", CarType: "Sedan", City: "Mumbai", PricePerHour: 250},
		{ID: 3, Make: "Honda", CarType: "SUV", City: "Pune", PricePerHour: 400},
		{ID: 4, Make: "Kia", CarType: "Hatchback", City: "Delhi", PricePerHour: 200},
	}
	return NewSnapshot(cars, nil)
}

func TestLocationsSortedDistinct(t *testing.T) {
	s := snapshotFixture()

	got := s.Locations()
	want := []string{"Delhi", "Mumbai", "Pune"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("location %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCarTypesSortedDistinct(t *testing.T) {
	s := snapshotFixture()

	got := s.CarTypes()
	if !sort.StringsAreSorted(got) {
		t.Errorf("car types not sorted: %v", got)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 distinct types, got %v", got)
	}
}

func TestCarTypesFallbackOnEmptyCatalog(t *testing.T) {
	s := NewSnapshot(nil, nil)

	got := s.CarTypes()
	want := []string{"Hatchback", "Luxury", "SUV", "Sedan"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("type %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("fallback vocabulary not sorted: %v", got)
	}
}

func TestHasCarTypeIgnoresCase(t *testing.T) {
	s := snapshotFixture()

	if !s.HasCarType("suv") || !s.HasCarType("HATCHBACK") {
		t.Errorf("case-insensitive type lookup failed")
	}
	if s.HasCarType("Convertible") {
		t.Errorf("unknown type reported as present")
	}
}

func TestMinPricePerHour(t *testing.T) {
	s := snapshotFixture()

	if got := s.MinPricePerHour(); got != 200 {
		t.Errorf("expected minimum 200, got %g", got)
	}
}

func TestCarByID(t *testing.T) {
	s := snapshotFixture()

	c, ok := s.CarByID(3)
	if !ok || c.Make != "Honda" {
		t.Errorf("expected Honda for id 3, got %v %v", c, ok)
	}
	if _, ok := s.CarByID(99); ok {
		t.Errorf("unexpected hit for id 99")
	}
}
