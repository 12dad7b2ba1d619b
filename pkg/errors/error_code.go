package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidThreshold     ErrorCode = 103
	ErrCodeInvalidSeries        ErrorCode = 104
	ErrCodeInsufficientData     ErrorCode = 105
	ErrCodeInvalidPolicy        ErrorCode = 106
	ErrCodeInvalidLabel         ErrorCode = 107

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeReferenceLoadFailed   ErrorCode = 203

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 300
	ErrCodeSeriesLengthMismatch ErrorCode = 301

	// Regime errors (400-499)
	ErrCodeDetectionFailed   ErrorCode = 400
	ErrCodeFilterUnavailable ErrorCode = 401

	// Cache errors (500-599)
	ErrCodeCacheDisabled   ErrorCode = 500
	ErrCodeCacheInitFailed ErrorCode = 501
)
