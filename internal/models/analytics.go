package models

import "time"

const DateLayout = "2006-01-02"

type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// GrowthQuery is a validated request for the user growth series.
// StartDate and EndDate are UTC midnights and StartDate is never after EndDate.
type GrowthQuery struct {
	Interval  Interval
	StartDate time.Time
	EndDate   time.Time
}

// GrowthDataPoint is a single bucket of the growth series. Date is formatted
// according to the interval: 2006-01-02, 2006-W01 (ISO week) or 2006-01.
type GrowthDataPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type UserGrowthResponse struct {
	Series               []GrowthDataPoint `json:"series"`
	TotalUsers           int64             `json:"totalUsers"`
	TotalActiveUsers     int64             `json:"totalActiveUsers"`
	AggregatedByInterval Interval          `json:"aggregatedByInterval"`
}
