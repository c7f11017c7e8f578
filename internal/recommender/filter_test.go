package recommender

import (
	"strings"
	"testing"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

func pricedCatalog() []domain.Car {
	return []domain.Car{
		testCar(1, "Tata", "Nexon", "Pune", "SUV", 300, 8.0),
		testCar(2, "Hyundai", "Creta", "Pune", "SUV", 500, 7.5),
		testCar(3, "Honda", "City", "Pune", "Sedan", 400, 9.0),
		testCar(4, "Tata", "Altroz", "Mumbai", "Hatchback", 200, 6.5),
	}
}

func TestFilterByLocationCaseInsensitive(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	upper, err := e.filterByLocation("Pune")
	if err != nil {
		t.Fatalf("filterByLocation(Pune) failed: %v", err)
	}
	lower, err := e.filterByLocation("pune")
	if err != nil {
		t.Fatalf("filterByLocation(pune) failed: %v", err)
	}

	if len(upper.cars) != 3 || len(lower.cars) != 3 {
		t.Fatalf("expected 3 candidates for both spellings, got %d and %d", len(upper.cars), len(lower.cars))
	}
	for i := range upper.cars {
		if upper.cars[i] != lower.cars[i] {
			t.Errorf("candidate %d differs between spellings", i)
		}
	}
}

func TestFilterByLocationUnknownCity(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	_, err := e.filterByLocation("Goa")
	if !domain.HasCode(err, domain.CodeInvalidLocation) {
		t.Errorf("expected invalid_location, got %v", err)
	}
}

func TestParsePreferencesDefaults(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	p, err := e.parsePreferences(ContentRequest{Location: "Pune"})
	if err != nil {
		t.Fatalf("parsePreferences with blanks failed: %v", err)
	}
	if p.carType != "SUV" {
		t.Errorf("expected default type SUV, got %q", p.carType)
	}
	if p.maxPrice != 1000 {
		t.Errorf("expected default max price 1000, got %g", p.maxPrice)
	}
	if p.ac != flagYes || p.mileage != flagYes {
		t.Errorf("expected yes/yes flags, got %q/%q", p.ac, p.mileage)
	}
}

func TestParsePreferencesValidation(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	cases := []struct {
		name string
		req  ContentRequest
		code string
	}{
		{"unknown type", ContentRequest{CarType: "Convertible"}, domain.CodeInvalidCarType},
		{"bad price", ContentRequest{MaxPrice: "cheap"}, domain.CodeInvalidPrice},
		{"below minimum", ContentRequest{MaxPrice: "100"}, domain.CodePriceBelowMinimum},
		{"bad ac flag", ContentRequest{ACRequired: "maybe"}, domain.CodeInvalidFlag},
		{"bad mileage flag", ContentRequest{UnlimitedMileage: "sometimes"}, domain.CodeInvalidFlag},
	}

	for _, tc := range cases {
		_, err := e.parsePreferences(tc.req)
		if !domain.HasCode(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestParsePreferencesTypeListedInError(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	_, err := e.parsePreferences(ContentRequest{CarType: "Convertible"})
	re, ok := domain.AsRecommendationError(err)
	if !ok {
		t.Fatalf("expected RecommendationError, got %v", err)
	}
	// Choices are the catalog vocabulary, sorted, case as stored.
	if !strings.Contains(re.Message, "Hatchback, SUV, Sedan") {
		t.Errorf("expected sorted type vocabulary in message, got %q", re.Message)
	}
}

func TestPriceBelowMinimumReportsBothPrices(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	_, err := e.parsePreferences(ContentRequest{MaxPrice: "150"})
	re, ok := domain.AsRecommendationError(err)
	if !ok || re.Code != domain.CodePriceBelowMinimum {
		t.Fatalf("expected price_below_minimum, got %v", err)
	}
	if !strings.Contains(re.Message, "150") || !strings.Contains(re.Message, "200") {
		t.Errorf("expected both ceiling and minimum in message, got %q", re.Message)
	}
}

func TestApplyPreferencesNarrowsAndFlagsAreCaseInsensitive(t *testing.T) {
	cars := pricedCatalog()
	cars[0].AC = "YES" // stored spelling should not matter
	e := newTestEngine(cars, nil)

	cs, err := e.filterByLocation("Pune")
	if err != nil {
		t.Fatalf("filterByLocation failed: %v", err)
	}
	prefs, err := e.parsePreferences(ContentRequest{CarType: "suv", MaxPrice: "400"})
	if err != nil {
		t.Fatalf("parsePreferences failed: %v", err)
	}
	if err := cs.applyPreferences(prefs); err != nil {
		t.Fatalf("applyPreferences failed: %v", err)
	}

	if len(cs.cars) != 1 || cs.cars[0].ID != 1 {
		t.Errorf("expected only car 1 to survive, got %v", cs.cars)
	}
}

func TestApplyPreferencesNoMatches(t *testing.T) {
	e := newTestEngine(pricedCatalog(), nil)

	cs, err := e.filterByLocation("Mumbai")
	if err != nil {
		t.Fatalf("filterByLocation failed: %v", err)
	}
	prefs, err := e.parsePreferences(ContentRequest{CarType: "SUV", MaxPrice: "250"})
	if err != nil {
		t.Fatalf("parsePreferences failed: %v", err)
	}

	// Mumbai only has a Hatchback.
	if err := cs.applyPreferences(prefs); !domain.HasCode(err, domain.CodeNoMatches) {
		t.Errorf("expected no_matches, got %v", err)
	}
}
