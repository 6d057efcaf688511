package services

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"analytics-api/internal/configuration"
	apierrors "analytics-api/internal/errors"
	"analytics-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryTestNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(models.DateLayout, value)
	require.NoError(t, err)
	return date
}

func requireValidationMessages(t *testing.T, err error, expected ...string) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, expected, apiErr.Messages)
}

func TestNormalizeGrowthQuery(t *testing.T) {
	t.Run("should default to the last 30 days by day", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, models.IntervalDaily, query.Interval)
		assert.Equal(t, mustDate(t, "2024-02-14"), query.StartDate)
		assert.Equal(t, mustDate(t, "2024-03-15"), query.EndDate)
	})

	t.Run("should use the UTC date when now is in another zone", func(t *testing.T) {
		zone := time.FixedZone("UTC+9", 9*60*60)
		now := time.Date(2024, time.March, 16, 2, 0, 0, 0, zone)

		query, err := NormalizeGrowthQuery(url.Values{}, now)
		require.NoError(t, err)

		assert.Equal(t, mustDate(t, "2024-03-15"), query.EndDate)
	})

	t.Run("should keep explicit values", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{
			"interval":  {"monthly"},
			"startDate": {"2023-01-01"},
			"endDate":   {"2023-12-31"},
		}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, models.IntervalMonthly, query.Interval)
		assert.Equal(t, mustDate(t, "2023-01-01"), query.StartDate)
		assert.Equal(t, mustDate(t, "2023-12-31"), query.EndDate)
	})

	t.Run("should derive the start date from the end date", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{"endDate": {"2024-03-31"}}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, mustDate(t, "2024-03-01"), query.StartDate)
		assert.Equal(t, mustDate(t, "2024-03-31"), query.EndDate)
	})

	t.Run("should default the end date to today", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{"startDate": {"2024-03-01"}}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, mustDate(t, "2024-03-01"), query.StartDate)
		assert.Equal(t, mustDate(t, "2024-03-15"), query.EndDate)
	})

	t.Run("should accept a single day range", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{
			"startDate": {"2024-03-01"},
			"endDate":   {"2024-03-01"},
		}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, query.StartDate, query.EndDate)
	})

	t.Run("should treat empty values as absent", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{
			"interval":  {""},
			"startDate": {""},
			"endDate":   {""},
		}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, models.IntervalDaily, query.Interval)
		assert.Equal(t, mustDate(t, "2024-02-14"), query.StartDate)
	})

	t.Run("should reject an unknown interval", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{"interval": {"yearly"}}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidInterval)
	})

	t.Run("should reject a reversed range", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"startDate": {"2024-03-10"},
			"endDate":   {"2024-03-01"},
		}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidDateRange)
	})

	t.Run("should reject a start date after the default end date", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{"startDate": {"2024-04-01"}}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidDateRange)
	})

	t.Run("should reject dates that are not YYYY-MM-DD", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"startDate": {"03/01/2024"},
			"endDate":   {"2024-3-15"},
		}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidStartDate, apierrors.ErrInvalidEndDate)
	})

	t.Run("should reject impossible calendar dates", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{"startDate": {"2024-02-30"}}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidStartDate)
	})

	t.Run("should only report the end date when it is the only malformed value", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{"endDate": {"tomorrow"}}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidEndDate)
	})

	t.Run("should collect every violation in a fixed order", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"interval":  {"hourly"},
			"startDate": {"not-a-date"},
			"endDate":   {"2024-13-01"},
		}, queryTestNow)
		requireValidationMessages(t, err,
			apierrors.ErrInvalidInterval,
			apierrors.ErrInvalidStartDate,
			apierrors.ErrInvalidEndDate,
		)
	})

	t.Run("should reject values with surrounding whitespace", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"interval":  {" weekly "},
			"startDate": {" 2024-03-01"},
		}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidInterval, apierrors.ErrInvalidStartDate)
	})

	t.Run("should reject the year zero", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{"endDate": {"0000-01-15"}}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidEndDate)
	})

	t.Run("should clamp a derived start date to the first representable day", func(t *testing.T) {
		query, err := NormalizeGrowthQuery(url.Values{
			"interval": {"monthly"},
			"endDate":  {"0001-01-15"},
		}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, mustDate(t, "0001-01-01"), query.StartDate)
		assert.Equal(t, mustDate(t, "0001-01-15"), query.EndDate)
	})

	t.Run("should accept the longest daily range", func(t *testing.T) {
		start := mustDate(t, "2014-01-01")
		end := start.AddDate(0, 0, configuration.GrowthMaxDailyRangeDays)

		query, err := NormalizeGrowthQuery(url.Values{
			"startDate": {start.Format(models.DateLayout)},
			"endDate":   {end.Format(models.DateLayout)},
		}, queryTestNow)
		require.NoError(t, err)

		assert.Equal(t, end, query.EndDate)
	})

	t.Run("should reject daily ranges beyond the limit", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"startDate": {"0001-01-01"},
			"endDate":   {"9999-12-31"},
		}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrDailyRangeTooLong)
	})

	t.Run("should allow long ranges for coarser intervals", func(t *testing.T) {
		for _, interval := range []string{"weekly", "monthly"} {
			query, err := NormalizeGrowthQuery(url.Values{
				"interval":  {interval},
				"startDate": {"0001-01-01"},
				"endDate":   {"9999-12-31"},
			}, queryTestNow)
			require.NoError(t, err, interval)
			assert.Equal(t, models.Interval(interval), query.Interval)
		}
	})

	t.Run("should report the range together with the interval", func(t *testing.T) {
		_, err := NormalizeGrowthQuery(url.Values{
			"interval":  {"yearly"},
			"startDate": {"2024-03-10"},
			"endDate":   {"2024-03-01"},
		}, queryTestNow)
		requireValidationMessages(t, err, apierrors.ErrInvalidInterval, apierrors.ErrInvalidDateRange)
	})
}
