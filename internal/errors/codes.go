package apierrors

// HTTP 401 Unauthorized.
const (
	ErrNoTokenProvided    = "NO_TOKEN_PROVIDED"
	ErrInvalidTokenFormat = "INVALID_TOKEN_FORMAT"
	ErrUnauthorized       = "UNAUTHORIZED"
)

// HTTP 403 Forbidden.
const (
	ErrForbidden = "FORBIDDEN"
)

// HTTP 429 Too Many Requests.
const (
	ErrTooManyRequests = "TOO_MANY_REQUESTS"
)

// HTTP 500 Internal Server Error.
const (
	ErrInternalServer = "INTERNAL_SERVER_ERROR"
)

// Query validation messages, returned verbatim in 400 responses.
const (
	ErrInvalidInterval   = "Invalid interval. Must be daily, weekly, or monthly"
	ErrInvalidStartDate  = "Invalid startDate format. Use YYYY-MM-DD"
	ErrInvalidEndDate    = "Invalid endDate format. Use YYYY-MM-DD"
	ErrInvalidDateRange  = "startDate must be before or equal to endDate"
	ErrDailyRangeTooLong = "Daily interval supports at most 3660 days between startDate and endDate"
)
