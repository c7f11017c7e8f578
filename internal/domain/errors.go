package domain

import (
	"errors"
	"fmt"
)

// Failure codes for the recommendation pipelines. Every failure is a
// recoverable condition reported back to the caller; the handler layer maps
// codes to HTTP statuses.
const (
	CodeInvalidLocation       = "invalid_location"
	CodeInvalidCarType        = "invalid_car_type"
	CodeInvalidPrice          = "invalid_price"
	CodePriceBelowMinimum     = "price_below_minimum"
	CodeInvalidFlag           = "invalid_flag"
	CodeNoMatches             = "no_matches"
	CodeNoCandidates          = "no_candidates"
	CodeNoDataForLocation     = "no_data_for_location"
	CodeSimilarityUnavailable = "similarity_unavailable"
	CodeUserNotFound          = "user_not_found"
	CodeNoRecommendations     = "no_recommendations"
)

// RecommendationError carries a stable code plus a message suitable for
// rendering directly to an end user.
type RecommendationError struct {
	Code    string
	Message string
}

func (e *RecommendationError) Error() string {
	return e.Message
}

// Errf builds a RecommendationError with a formatted user-facing message.
func Errf(code, format string, args ...any) *RecommendationError {
	return &RecommendationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRecommendationError unwraps err into a RecommendationError if it is one.
func AsRecommendationError(err error) (*RecommendationError, bool) {
	var target *RecommendationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode reports whether err is a RecommendationError with the given code.
func HasCode(err error, code string) bool {
	re, ok := AsRecommendationError(err)
	return ok && re.Code == code
}
