package core

import (
	c "analytics-api/internal/cache"
	"analytics-api/internal/configuration"
	"analytics-api/internal/models"

	"go.uber.org/zap"
)

// NewCache returns nil when no cache is configured, which disables rate
// limiting.
func NewCache(config models.CacheConfiguration) c.ICache {
	switch config.Type {
	case configuration.CacheTypeRedis:
		cache, err := c.NewRedisCache(
			config.Redis.Hosts,
			config.Redis.Password,
			config.Redis.TLSEnabled,
			config.Redis.TLSServerName,
		)
		if err != nil {
			zap.L().Fatal("Failed to initialize cache", zap.String("type", config.Type), zap.Error(err))
		}
		return cache
	case configuration.CacheTypeValkey:
		cache, err := c.NewValkeyCache(
			config.Valkey.Hosts,
			config.Valkey.Password,
			config.Valkey.TLSEnabled,
			config.Valkey.TLSServerName,
		)
		if err != nil {
			zap.L().Fatal("Failed to initialize cache", zap.String("type", config.Type), zap.Error(err))
		}
		return cache
	default:
		zap.L().Info("No cache configured, rate limiting disabled")
		return nil
	}
}
