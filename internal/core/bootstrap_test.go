package core

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"analytics-api/internal/helpers"
	"analytics-api/internal/models"
	"analytics-api/internal/services"
	"analytics-api/internal/tests"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerTestJWTSecret = "test-secret-key-for-router-testing"

func newTestRouter(repository *tests.MockAnalyticsRepository) http.Handler {
	config := models.Configuration{
		App: models.AppConfiguration{
			JWTSecret:             routerTestJWTSecret,
			AllowedOrigins:        []string{"http://localhost:3000"},
			RateLimitPerMinute:    60,
			RequestTimeoutSeconds: 5,
		},
	}
	return NewRouter(config, repository, nil)
}

func bearer(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := helpers.NewAccessToken(
		routerTestJWTSecret,
		&models.User{ID: uuid.New(), Email: string(role) + "@example.com", Role: role},
		time.Hour,
	)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestNewRouter(t *testing.T) {
	const growthPath = "/api/analytics/users-stats/growth"

	t.Run("should report health without authentication", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestRouter(&tests.MockAnalyticsRepository{}).
			ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusOK, map[string]string{"status": "ok"})
	})

	t.Run("should require a token for analytics", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestRouter(&tests.MockAnalyticsRepository{}).
			ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, growthPath, nil))

		expected := models.Error{Status: http.StatusUnauthorized, Error: []string{"NO_TOKEN_PROVIDED"}}
		tests.AssertJSONResponse(t, recorder, http.StatusUnauthorized, expected)
	})

	t.Run("should forbid regular users", func(t *testing.T) {
		repository := &tests.MockAnalyticsRepository{}
		req := httptest.NewRequest(http.MethodGet, growthPath, nil)
		req.Header.Set("Authorization", bearer(t, models.RoleUser))

		recorder := httptest.NewRecorder()
		newTestRouter(repository).ServeHTTP(recorder, req)

		expected := models.Error{Status: http.StatusForbidden, Error: []string{"FORBIDDEN"}}
		tests.AssertJSONResponse(t, recorder, http.StatusForbidden, expected)
		assert.Zero(t, repository.Calls)
	})

	t.Run("should serve growth statistics to admins", func(t *testing.T) {
		repository := &tests.MockAnalyticsRepository{
			TotalUsers:       3,
			TotalActiveUsers: 2,
			GrowthData:       []models.GrowthDataPoint{{Date: "2024-01", Count: 3}},
		}
		req := httptest.NewRequest(http.MethodGet, growthPath+"?interval=monthly&startDate=2024-01-01&endDate=2024-01-31", nil)
		req.Header.Set("Authorization", bearer(t, models.RoleAdmin))

		recorder := httptest.NewRecorder()
		newTestRouter(repository).ServeHTTP(recorder, req)

		expected := models.Response[models.UserGrowthResponse]{
			Message: services.UserGrowthStatsMessage,
			Data: models.UserGrowthResponse{
				Series:               []models.GrowthDataPoint{{Date: "2024-01", Count: 3}},
				TotalUsers:           3,
				TotalActiveUsers:     2,
				AggregatedByInterval: models.IntervalMonthly,
			},
		}
		tests.AssertJSONResponse(t, recorder, http.StatusOK, expected)
	})

	t.Run("should answer CORS preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, growthPath, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		recorder := httptest.NewRecorder()
		newTestRouter(&tests.MockAnalyticsRepository{}).ServeHTTP(recorder, req)

		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEqual(t, http.StatusUnauthorized, recorder.Code)
	})
}
