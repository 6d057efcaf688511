package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	c "analytics-api/internal/cache"
	apierrors "analytics-api/internal/errors"
	"analytics-api/internal/helpers"

	"go.uber.org/zap"
)

// RateLimit limits each client to requestsPerMinute requests. A nil cache
// disables the limit.
func RateLimit(cache c.ICache, trustedProxies []string, requestsPerMinute int) func(next http.Handler) http.Handler {
	trusted := make(map[string]struct{}, len(trustedProxies))
	for _, proxy := range trustedProxies {
		trusted[proxy] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if cache == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r, trusted)

			retryAfter, err := cache.GetRateLimit(clientIP, requestsPerMinute)
			if err != nil {
				helpers.GetLogger(r.Context()).Error("Failed to check rate limit", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				helpers.RespondWithError(w, http.StatusTooManyRequests, []string{apierrors.ErrTooManyRequests})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the left-most X-Forwarded-For entry when the direct
// peer is a trusted proxy, and the peer address otherwise.
func getClientIP(r *http.Request, trusted map[string]struct{}) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if _, ok := trusted[remoteIP]; !ok {
		return remoteIP
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return remoteIP
	}

	clientIP := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if clientIP == "" {
		return remoteIP
	}
	return clientIP
}
