package recommender

import (
	"github.com/tripglide/car-recommendation-service/internal/catalog"
	"github.com/tripglide/car-recommendation-service/internal/domain"
)

// testCar builds a catalog row with sensible defaults for the fields a test
// does not care about.
func testCar(id int64, mk, model, city, carType string, price, rating float64) domain.Car {
	return domain.Car{
		ID:               id,
		Make:             mk,
		Model:            model,
		CarType:          carType,
		Transmission:     "Manual",
		FuelPolicy:       "Full to Full",
		City:             city,
		PricePerHour:     price,
		AC:               "Yes",
		UnlimitedMileage: "Yes",
		Occupancy:        5,
		LuggageCapacity:  2,
		MileageKmpl:      15,
		Rating:           rating,
		AgencyName:       "Zoomcar",
		BaseFare:         1000,
	}
}

func testRental(userID int64, location string, carID int64, code string) domain.Rental {
	return domain.Rental{UserID: userID, PickupLocation: location, CarID: carID, TravelCode: code}
}

func newTestEngine(cars []domain.Car, rentals []domain.Rental) *Engine {
	return NewEngine(catalog.NewSnapshot(cars, rentals))
}
