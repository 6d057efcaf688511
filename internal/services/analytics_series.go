package services

import (
	"analytics-api/internal/models"
)

// BuildGrowthSeries turns raw per-bucket signup counts into a cumulative
// series. Daily series contain every day of the query range; weekly and
// monthly series contain only the buckets present in raw, in the given order.
func BuildGrowthSeries(query models.GrowthQuery, raw []models.GrowthDataPoint) []models.GrowthDataPoint {
	if query.Interval == models.IntervalDaily {
		return buildDailySeries(query, raw)
	}
	return buildIntervalSeries(raw)
}

func buildDailySeries(query models.GrowthQuery, raw []models.GrowthDataPoint) []models.GrowthDataPoint {
	counts := make(map[string]int64, len(raw))
	for _, point := range raw {
		counts[point.Date] += point.Count
	}

	days := int(query.EndDate.Sub(query.StartDate).Hours()/24) + 1
	if days < 0 {
		days = 0
	}

	series := make([]models.GrowthDataPoint, 0, days)
	var cumulative int64
	for day := query.StartDate; !day.After(query.EndDate); day = day.AddDate(0, 0, 1) {
		date := day.Format(models.DateLayout)
		cumulative += counts[date]
		series = append(series, models.GrowthDataPoint{Date: date, Count: cumulative})
	}
	return series
}

func buildIntervalSeries(raw []models.GrowthDataPoint) []models.GrowthDataPoint {
	series := make([]models.GrowthDataPoint, 0, len(raw))
	var cumulative int64
	for _, point := range raw {
		cumulative += point.Count
		series = append(series, models.GrowthDataPoint{Date: point.Date, Count: cumulative})
	}
	return series
}
