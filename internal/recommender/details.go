package recommender

import "github.com/tripglide/car-recommendation-service/internal/domain"

// carDetails projects catalog rows for the requested identifiers, in input
// order. Identifiers with no catalog row are skipped silently; a partial
// result is valid.
func (e *Engine) carDetails(ids []int64) []domain.CarDetail {
	details := make([]domain.CarDetail, 0, len(ids))
	for _, id := range ids {
		c, ok := e.snap.CarByID(id)
		if !ok {
			continue
		}
		details = append(details, domain.CarDetail{
			CarID:           c.ID,
			Make:            c.Make,
			Model:           c.Model,
			CarType:         c.CarType,
			FuelPolicy:      c.FuelPolicy,
			Transmission:    c.Transmission,
			PricePerHour:    c.PricePerHour,
			Rating:          c.Rating,
			MileageKmpl:     c.MileageKmpl,
			Occupancy:       c.Occupancy,
			AC:              c.AC,
			LuggageCapacity: c.LuggageCapacity,
			AgencyName:      c.AgencyName,
			BaseFare:        c.BaseFare,
		})
	}
	return details
}
