package recommender

import (
	"testing"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

func TestCarDetailsFollowsInputOrderAndSkipsMisses(t *testing.T) {
	cars := []domain.Car{
		testCar(1, "Tata", "Nexon", "Pune", "SUV", 300, 8),
		testCar(2, "Hyundai", "Creta", "Pune", "SUV", 350, 7),
		testCar(3, "Honda", "City", "Pune", "Sedan", 400, 9),
	}
	e := newTestEngine(cars, nil)

	details := e.carDetails([]int64{3, 99, 1})

	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].CarID != 3 || details[1].CarID != 1 {
		t.Errorf("expected ids [3 1], got [%d %d]", details[0].CarID, details[1].CarID)
	}
}

func TestCarDetailsProjection(t *testing.T) {
	c := testCar(7, "Kia", "Seltos", "Delhi", "SUV", 450, 8.5)
	c.MileageKmpl = 0 // absent in the catalog, reported as 0
	c.BaseFare = 0
	e := newTestEngine([]domain.Car{c}, nil)

	details := e.carDetails([]int64{7})
	if len(details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(details))
	}

	d := details[0]
	if d.Make != "Kia" || d.Model != "Seltos" || d.CarType != "SUV" {
		t.Errorf("descriptive fields wrong: %+v", d)
	}
	if d.PricePerHour != 450 || d.Rating != 8.5 {
		t.Errorf("numeric fields wrong: %+v", d)
	}
	if d.MileageKmpl != 0 || d.BaseFare != 0 {
		t.Errorf("absent numerics must project as 0: %+v", d)
	}
	if d.AgencyName != "Zoomcar" || d.AC != "Yes" {
		t.Errorf("agency/flag fields wrong: %+v", d)
	}
}
