package helpers

import (
	"context"

	"analytics-api/internal/models"

	"go.uber.org/zap"
)

// GetLogger returns the request-scoped logger set by the Logger middleware,
// falling back to the global logger.
func GetLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(models.LoggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.L()
}
