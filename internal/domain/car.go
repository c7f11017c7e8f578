package domain

// Car is one row of the rental catalog. String flag columns (AC,
// UnlimitedMileage) keep their stored spelling; matching against them is
// case-insensitive. Absent numeric columns are loaded as 0.
type Car struct {
	ID               int64   `json:"car_id"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	CarType          string  `json:"car_type"`
	Transmission     string  `json:"transmission"`
	FuelPolicy       string  `json:"fuel_policy"`
	City             string  `json:"city"`
	PricePerHour     float64 `json:"price_per_hour"`
	AC               string  `json:"ac"`
	UnlimitedMileage string  `json:"unlimited_mileage"`
	Occupancy        int     `json:"occupancy"`
	LuggageCapacity  int     `json:"luggage_capacity"`
	MileageKmpl      float64 `json:"mileage_kmpl"`
	Rating           float64 `json:"rating"`
	AgencyName       string  `json:"agency_name"`
	BaseFare         float64 `json:"base_fare"`
}
