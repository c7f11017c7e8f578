package repository

import (
	"context"
	"fmt"

	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// LoadRentals reads the full rental history in insertion order.
func (r *Repository) LoadRentals(ctx context.Context) ([]domain.Rental, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, pickup_location, car_id, travel_code
		 FROM rentals
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query rentals: %w", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rec domain.Rental
		if err := rows.Scan(&rec.UserID, &rec.PickupLocation, &rec.CarID, &rec.TravelCode); err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		rentals = append(rentals, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over rentals: %w", err)
	}
	return rentals, nil
}
