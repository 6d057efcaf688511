package cache

import (
	"context"
	"crypto/tls"
	"fmt"

	"analytics-api/internal/configuration"

	"github.com/redis/rueidis"
)

type RueidisCache struct {
	client rueidis.Client
}

func NewRedisCache(hosts []string, password string, tlsEnabled bool, tlsServerName string) (*RueidisCache, error) {
	return newRueidisCache(hosts, password, tlsEnabled, tlsServerName, "redis")
}

func NewValkeyCache(hosts []string, password string, tlsEnabled bool, tlsServerName string) (*RueidisCache, error) {
	return newRueidisCache(hosts, password, tlsEnabled, tlsServerName, "valkey")
}

func newRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName,
	errorContext string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", errorContext, err)
	}
	return &RueidisCache{client: client}, nil
}

func (r *RueidisCache) GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error) {
	ctx := context.Background()

	key := fmt.Sprintf(configuration.CacheAppRateLimitKey, userIdentifier)
	count, err := r.client.Do(ctx, r.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		expireErr := r.client.Do(ctx, r.client.B().Expire().Key(key).Seconds(configuration.RateLimitWindow).Build()).
			Error()
		if expireErr != nil {
			return 0, expireErr
		}
	}

	if int(count) > requestsPerMinute {
		retryAfter, ttlErr := r.client.Do(ctx, r.client.B().Ttl().Key(key).Build()).AsInt64()
		if ttlErr != nil {
			return 0, ttlErr
		}
		if retryAfter < 1 {
			retryAfter = 1
		}

		return int(retryAfter), nil
	}

	return 0, nil
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}

var _ ICache = (*RueidisCache)(nil)
