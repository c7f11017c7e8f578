package domain

// CarDetail is the externally-presentable projection of a catalog row,
// returned by both recommendation pipelines.
type CarDetail struct {
	CarID           int64   `json:"car_id"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	CarType         string  `json:"car_type"`
	FuelPolicy      string  `json:"fuel_policy"`
	Transmission    string  `json:"transmission"`
	PricePerHour    float64 `json:"price_per_hour"`
	Rating          float64 `json:"rating"`
	MileageKmpl     float64 `json:"mileage_kmpl"`
	Occupancy       int     `json:"occupancy"`
	AC              string  `json:"ac"`
	LuggageCapacity int     `json:"luggage_capacity"`
	AgencyName      string  `json:"agency_name"`
	BaseFare        float64 `json:"base_fare"`
}

type RecommendationResult struct {
	Recommendations []CarDetail
	CacheHit        bool
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchUserResult struct {
	UserID          int64       `json:"user_id"`
	Recommendations []CarDetail `json:"recommendations,omitempty"`
	Status          string      `json:"status"`
	Error           string      `json:"error,omitempty"`
	Message         string      `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Location   string            `json:"location"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
