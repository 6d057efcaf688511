package cache

type ICache interface {
	// GetRateLimit counts a request for userIdentifier in the current one
	// minute window. It returns the seconds to wait when the limit is
	// exceeded and 0 otherwise.
	GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error)

	Close() error
}
