package errors

import "net/http"

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - validation failures and core query errors, which the
	// response envelope reports as a structured failure
	case ValidationGeneral, ValidationInvalidMonth, ValidationOutOfRange,
		StoreUnavailable, StoreEmpty, IngestMalformedRecord:
		return http.StatusBadRequest

	// 429 Too Many Requests
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable
	case SystemServiceUnavailable, IngestSourceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
