package tests

import (
	"context"
	"sync"

	"analytics-api/internal/analytics"
	"analytics-api/internal/models"
)

// MockAnalyticsRepository is an in-memory IUserAnalyticsRepository that
// records how often it was called.
type MockAnalyticsRepository struct {
	TotalUsers       int64
	TotalActiveUsers int64
	GrowthData       []models.GrowthDataPoint
	Err              error

	mu        sync.Mutex
	Calls     int
	LastQuery models.GrowthQuery
}

var _ analytics.IUserAnalyticsRepository = (*MockAnalyticsRepository)(nil)

func (m *MockAnalyticsRepository) record() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
}

func (m *MockAnalyticsRepository) GetTotalUsers(_ context.Context) (int64, error) {
	m.record()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.TotalUsers, nil
}

func (m *MockAnalyticsRepository) GetTotalActiveUsers(_ context.Context) (int64, error) {
	m.record()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.TotalActiveUsers, nil
}

func (m *MockAnalyticsRepository) GetUserGrowthData(
	_ context.Context,
	query models.GrowthQuery,
) ([]models.GrowthDataPoint, error) {
	m.record()
	m.mu.Lock()
	m.LastQuery = query
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.GrowthData, nil
}
