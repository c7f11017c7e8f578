package domain

// Rental is one historical rental transaction. TravelCode identifies the
// trip; it is only ever counted, never interpreted.
type Rental struct {
	UserID         int64  `json:"user_id"`
	PickupLocation string `json:"pickup_location"`
	CarID          int64  `json:"car_id"`
	TravelCode     string `json:"travel_code"`
}
