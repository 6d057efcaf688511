package services

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"analytics-api/internal/analytics"
	apierrors "analytics-api/internal/errors"
	"analytics-api/internal/handlers"
	"analytics-api/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const UserGrowthStatsMessage = "User growth statistics retrieved successfully"

type AnalyticsService struct {
	Repository analytics.IUserAnalyticsRepository
	Now        func() time.Time
}

func (s AnalyticsService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/users-stats/growth", handlers.GetOneWithQueryHandler(UserGrowthStatsMessage, s.GetUserGrowthStats))

	return r
}

func (s AnalyticsService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// GetUserGrowthStats reports user totals and the cumulative signup series.
// The admin check runs before the query is validated, so non-admin callers
// get a 403 even for malformed queries.
func (s AnalyticsService) GetUserGrowthStats(
	ctx context.Context,
	logger *zap.Logger,
	claims models.UserClaims,
	query url.Values,
) (models.UserGrowthResponse, error) {
	if !claims.IsAdmin() {
		return models.UserGrowthResponse{}, apierrors.NewAPIError(http.StatusForbidden, apierrors.ErrForbidden)
	}

	growthQuery, err := NormalizeGrowthQuery(query, s.now())
	if err != nil {
		return models.UserGrowthResponse{}, err
	}

	var (
		totalUsers       int64
		totalActiveUsers int64
		growthData       []models.GrowthDataPoint
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalUsers, err = s.Repository.GetTotalUsers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		totalActiveUsers, err = s.Repository.GetTotalActiveUsers(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		growthData, err = s.Repository.GetUserGrowthData(gCtx, growthQuery)
		return err
	})

	if err = g.Wait(); err != nil {
		logger.Error("Failed to retrieve user growth statistics",
			zap.String("interval", string(growthQuery.Interval)),
			zap.Error(err))
		return models.UserGrowthResponse{}, apierrors.NewAPIError(http.StatusInternalServerError, apierrors.ErrInternalServer)
	}

	return models.UserGrowthResponse{
		Series:               BuildGrowthSeries(growthQuery, growthData),
		TotalUsers:           totalUsers,
		TotalActiveUsers:     totalActiveUsers,
		AggregatedByInterval: growthQuery.Interval,
	}, nil
}
