package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE rentals, cars RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting cars")
	carCount, err := seedCars(ctx, pool, rng)
	if err != nil {
		return fmt.Errorf("seed cars: %w", err)
	}

	log.Println("[seed] inserting rentals")
	if err := seedRentals(ctx, pool, rng, carCount, 400); err != nil {
		return fmt.Errorf("seed rentals: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var cities = []string{"Mumbai", "Delhi", "Pune", "Bangalore", "Chennai", "Hyderabad"}

var agencies = []string{
	"Zoomcar", "Revv", "Myles", "Avis India", "Savaari", "Drivezy",
}

var makeModels = map[string][]string{
	"Maruti Suzuki": {"Swift", "Baleno", "Brezza", "Ertiga"},
	"Hyundai":       {"i20", "Creta", "Venue", "Verna"},
	"Tata":          {"Nexon", "Harrier", "Altroz", "Safari"},
	"Mahindra":      {"XUV700", "Thar", "Scorpio", "Bolero"},
	"Toyota":        {"Innova", "Fortuner", "Glanza", "Camry"},
	"Honda":         {"City", "Amaze", "Elevate", "Jazz"},
	"Kia":           {"Seltos", "Sonet", "Carens", "Carnival"},
	"BMW":           {"3 Series", "X1", "5 Series", "X3"},
}

var carTypes = []string{"SUV", "Sedan", "Hatchback", "Luxury"}
var transmissions = []string{"Manual", "Automatic"}
var fuelPolicies = []string{"Full to Full", "Same to Same", "Prepaid Fuel"}

func seedCars(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) (int, error) {
	// Deterministic make ordering; map iteration is not.
	makes := make([]string, 0, len(makeModels))
	for m := range makeModels {
		makes = append(makes, m)
	}
	sort.Strings(makes)

	rows := []string{}
	args := []any{}
	n := 0

	for _, city := range cities {
		for _, mk := range makes {
			models := makeModels[mk]
			for i := 0; i < 2; i++ {
				model := models[rng.Intn(len(models))]
				carType := carTypes[rng.Intn(len(carTypes))]
				if mk == "BMW" {
					carType = "Luxury"
				}
				price := math.Round((150+rng.Float64()*850)*100) / 100
				rating := math.Round((5+rng.Float64()*5)*10) / 10
				mileage := any(math.Round((8+rng.Float64()*16)*10) / 10)
				if rng.Float64() < 0.1 {
					mileage = nil
				}
				baseFare := any(math.Round(price * (2 + rng.Float64()*3)))
				if rng.Float64() < 0.1 {
					baseFare = nil
				}

				base := n * 15
				n++
				placeholders := make([]string, 15)
				for p := range placeholders {
					placeholders[p] = fmt.Sprintf("$%d", base+p+1)
				}
				rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
				args = append(args,
					mk, model, carType,
					transmissions[rng.Intn(len(transmissions))],
					fuelPolicies[rng.Intn(len(fuelPolicies))],
					city, price,
					yesNo(rng, 0.8), yesNo(rng, 0.6),
					4+rng.Intn(4), 1+rng.Intn(4),
					mileage, rating,
					agencies[rng.Intn(len(agencies))],
					baseFare,
				)
			}
		}
	}

	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO cars (make, model, car_type, transmission, fuel_policy,
		city, price_per_hour, ac, unlimited_mileage, occupancy, luggage_capacity,
		mileage_kmpl, rating, agency_name, base_fare) VALUES ` + strings.Join(rows, ", ")

	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func seedRentals(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, carCount, n int) error {
	if carCount == 0 {
		return nil
	}

	carsPerCity := carCount / len(cities)

	rows := []string{}
	args := []any{}

	for i := range n {
		userID := int64(1 + rng.Intn(40))
		cityIdx := rng.Intn(len(cities))
		// Users rent cars in the city the rental is recorded for.
		carID := int64(cityIdx*carsPerCity + 1 + rng.Intn(carsPerCity))

		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, userID, cities[cityIdx], carID, uuid.NewString())
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO rentals (user_id, pickup_location, car_id, travel_code) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func yesNo(rng *rand.Rand, pYes float64) string {
	if rng.Float64() < pYes {
		return "Yes"
	}
	return "No"
}
