package recommender

import (
	"strconv"
	"strings"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// Defaults applied when a preference field is left blank.
const (
	defaultCarType  = "SUV"
	defaultMaxPrice = "1000"
	defaultFlag     = flagYes
)

// candidateSet is the working subset of the catalog for one request. It is
// created by filterByLocation, narrowed in place by applyPreferences and
// then consumed by the similarity engine. It is never shared between
// requests.
type candidateSet struct {
	cars []domain.Car
}

// flag is a parsed yes/no preference. It keeps the canonical lowercase
// spelling so matching against catalog flag columns stays a case-insensitive
// string comparison, exactly like the stored data expects.
type flag string

const (
	flagYes flag = "yes"
	flagNo  flag = "no"
)

func parseFlag(raw string, name string) (flag, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultFlag, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return flagYes, nil
	case "no":
		return flagNo, nil
	default:
		return "", domain.Errf(domain.CodeInvalidFlag, "%s must be either 'Yes' or 'No'.", name)
	}
}

func (f flag) matches(stored string) bool {
	return strings.EqualFold(stored, string(f))
}

// filterByLocation narrows the catalog to the cars available in city. The
// match is case-insensitive; an unknown city is InvalidLocation.
func (e *Engine) filterByLocation(city string) (*candidateSet, error) {
	var cars []domain.Car
	for _, c := range e.snap.Cars() {
		if strings.EqualFold(c.City, city) {
			cars = append(cars, c)
		}
	}
	if len(cars) == 0 {
		return nil, domain.Errf(domain.CodeInvalidLocation,
			"Invalid pickup location %q. Please enter a valid city.", city)
	}
	return &candidateSet{cars: cars}, nil
}

// preferences is the validated form of a ContentRequest, parsed once at the
// boundary so the filter below is plain comparisons.
type preferences struct {
	carType  string
	maxPrice float64
	ac       flag
	mileage  flag
}

// parsePreferences applies defaults and validates each field against the
// catalog. Validation order is fixed: car type, price syntax, price floor,
// then the two flags.
func (e *Engine) parsePreferences(req ContentRequest) (preferences, error) {
	var p preferences

	p.carType = strings.TrimSpace(req.CarType)
	if p.carType == "" {
		p.carType = defaultCarType
	}
	if !e.snap.HasCarType(p.carType) {
		return p, domain.Errf(domain.CodeInvalidCarType,
			"Invalid car type. Choose from %s.", strings.Join(e.snap.CarTypes(), ", "))
	}

	rawPrice := strings.TrimSpace(req.MaxPrice)
	if rawPrice == "" {
		rawPrice = defaultMaxPrice
	}
	maxPrice, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return p, domain.Errf(domain.CodeInvalidPrice,
			"Invalid price input. Please enter a numeric value.")
	}
	p.maxPrice = maxPrice

	if minPrice := e.snap.MinPricePerHour(); maxPrice < minPrice {
		return p, domain.Errf(domain.CodePriceBelowMinimum,
			"No cars available under ₹%g/hour. The lowest price available is ₹%g/hour.",
			maxPrice, minPrice)
	}

	if p.ac, err = parseFlag(req.ACRequired, "AC"); err != nil {
		return p, err
	}
	if p.mileage, err = parseFlag(req.UnlimitedMileage, "Unlimited mileage"); err != nil {
		return p, err
	}

	return p, nil
}

// applyPreferences narrows the candidate set in place to the cars matching
// every preference. An empty result is NoMatches.
func (cs *candidateSet) applyPreferences(p preferences) error {
	if len(cs.cars) == 0 {
		return domain.Errf(domain.CodeNoCandidates, "No cars available for filtering.")
	}

	kept := cs.cars[:0]
	for _, c := range cs.cars {
		if !strings.EqualFold(c.CarType, p.carType) {
			continue
		}
		if c.PricePerHour > p.maxPrice {
			continue
		}
		if !p.ac.matches(c.AC) || !p.mileage.matches(c.UnlimitedMileage) {
			continue
		}
		kept = append(kept, c)
	}
	cs.cars = kept

	if len(cs.cars) == 0 {
		return domain.Errf(domain.CodeNoMatches,
			"No cars match your preferences under ₹%g/hour. Try increasing your budget.", p.maxPrice)
	}
	return nil
}
