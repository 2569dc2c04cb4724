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
	ErrCodeInvalidWindow        ErrorCode = 103
	ErrCodeInvalidSymbol        ErrorCode = 104
	ErrCodeInsufficientData     ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106

	// Data/Resource errors (200-299)
	ErrCodeDataUnavailable ErrorCode = 200
	ErrCodeQueryFailed     ErrorCode = 201
	ErrCodeCacheFailed     ErrorCode = 202

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation ErrorCode = 300

	// Analysis errors (400-499)
	ErrCodeAnalysisFailed      ErrorCode = 400
	ErrCodeAnalyzerConfigError ErrorCode = 401

	// Market data errors (700-799)
	ErrCodeMarketDataFetchFailed ErrorCode = 700
	ErrCodeMarketDataParseFailed ErrorCode = 701
	ErrCodeInvalidProvider       ErrorCode = 702
	ErrCodeSentimentUnavailable  ErrorCode = 703
)
