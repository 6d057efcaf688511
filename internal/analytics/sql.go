package analytics

import (
	"context"
	"fmt"

	"analytics-api/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

const tracerName = "analytics-api/internal/analytics"

type SQLRepository struct {
	DB *gorm.DB
}

func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

var _ IUserAnalyticsRepository = (*SQLRepository)(nil)

func (r *SQLRepository) GetTotalUsers(ctx context.Context) (int64, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "analytics.GetTotalUsers")
	defer span.End()

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count users")
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *SQLRepository) GetTotalActiveUsers(ctx context.Context) (int64, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "analytics.GetTotalActiveUsers")
	defer span.End()

	var active int64
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("is_active = ?", true).
		Count(&active).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count active users")
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return active, nil
}

func (r *SQLRepository) GetUserGrowthData(
	ctx context.Context,
	query models.GrowthQuery,
) ([]models.GrowthDataPoint, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "analytics.GetUserGrowthData")
	defer span.End()
	span.SetAttributes(
		attribute.String("growth.interval", string(query.Interval)),
		attribute.String("growth.start_date", query.StartDate.Format(models.DateLayout)),
		attribute.String("growth.end_date", query.EndDate.Format(models.DateLayout)),
	)

	bucket := bucketExpression(r.DB.Dialector.Name(), query.Interval)

	// The end date is inclusive: everything before the following midnight.
	rangeEnd := query.EndDate.AddDate(0, 0, 1)

	points := make([]models.GrowthDataPoint, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Select(bucket+" AS date, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", query.StartDate, rangeEnd).
		Group(bucket).
		Order("MIN(created_at)").
		Scan(&points).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query growth data")
		return nil, fmt.Errorf("failed to query user growth data: %w", err)
	}

	span.SetAttributes(attribute.Int("growth.buckets", len(points)))
	return points, nil
}
