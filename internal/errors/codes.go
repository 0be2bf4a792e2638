package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral      ErrorCode = "VALIDATION_001"
	ValidationInvalidMonth ErrorCode = "VALIDATION_002"
	ValidationOutOfRange   ErrorCode = "VALIDATION_003"
)

// Store error codes (STORE_*)
const (
	StoreUnavailable ErrorCode = "STORE_001"
	StoreEmpty       ErrorCode = "STORE_002"
)

// Ingestion error codes (INGEST_*)
const (
	IngestSourceUnavailable ErrorCode = "INGEST_001"
	IngestMalformedRecord   ErrorCode = "INGEST_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:      "Validation failed",
	ValidationInvalidMonth: "month must be in the range 1-12",
	ValidationOutOfRange:   "Field value is out of allowed range",

	StoreUnavailable: "Transaction store is unavailable",
	StoreEmpty:       "Transaction store holds no data",

	IngestSourceUnavailable: "Bootstrap source could not be reached",
	IngestMalformedRecord:   "Bootstrap record is malformed",

	SystemInternalError:      "An internal error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return errorMessages[SystemInternalError]
}
