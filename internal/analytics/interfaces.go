package analytics

import (
	"context"

	"analytics-api/internal/models"
)

// IUserAnalyticsRepository is the data source behind the growth endpoint.
//
// GetUserGrowthData returns raw, non-cumulative signup counts per bucket of
// the requested interval, ordered by the earliest signup in each bucket.
// Buckets without signups may be missing from the result.
type IUserAnalyticsRepository interface {
	GetTotalUsers(ctx context.Context) (int64, error)
	GetTotalActiveUsers(ctx context.Context) (int64, error)
	GetUserGrowthData(ctx context.Context, query models.GrowthQuery) ([]models.GrowthDataPoint, error)
}
