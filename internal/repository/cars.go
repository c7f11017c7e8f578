package repository

import (
	"context"
	"fmt"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// LoadCars reads the full car catalog in insertion order. Nullable numeric
// columns come back as 0, matching what the detail projection reports for
// absent values.
func (r *Repository) LoadCars(ctx context.Context) ([]domain.Car, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, make, model, car_type, transmission, fuel_policy, city,
		        price_per_hour, ac, unlimited_mileage, occupancy, luggage_capacity,
		        COALESCE(mileage_kmpl, 0), rating, agency_name, COALESCE(base_fare, 0)
		 FROM cars
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.CarType, &c.Transmission,
			&c.FuelPolicy, &c.City, &c.PricePerHour, &c.AC, &c.UnlimitedMileage,
			&c.Occupancy, &c.LuggageCapacity, &c.MileageKmpl, &c.Rating,
			&c.AgencyName, &c.BaseFare)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over cars: %w", err)
	}
	return cars, nil
}
