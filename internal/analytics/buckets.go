package analytics

import "analytics-api/internal/models"

// Bucket label expressions per SQL dialect. Labels match across dialects:
// 2024-03-01 (day), 2024-W09 (ISO year and week), 2024-03 (month).
var postgresBuckets = map[models.Interval]string{
	models.IntervalDaily:   `to_char(date_trunc('day', created_at), 'YYYY-MM-DD')`,
	models.IntervalWeekly:  `to_char(date_trunc('week', created_at), 'IYYY-"W"IW')`,
	models.IntervalMonthly: `to_char(date_trunc('month', created_at), 'YYYY-MM')`,
}

// SQLite has no ISO week format before 3.46, so the week is derived from the
// Thursday of the row's ISO week, which always falls in the ISO year.
var sqliteBuckets = map[models.Interval]string{
	models.IntervalDaily: `strftime('%Y-%m-%d', created_at)`,
	models.IntervalWeekly: `printf('%s-W%02d', ` +
		`strftime('%Y', date(created_at, '-3 days', 'weekday 4')), ` +
		`(CAST(strftime('%j', date(created_at, '-3 days', 'weekday 4')) AS INTEGER) - 1) / 7 + 1)`,
	models.IntervalMonthly: `strftime('%Y-%m', created_at)`,
}

func bucketExpression(dialect string, interval models.Interval) string {
	buckets := postgresBuckets
	if dialect == "sqlite" {
		buckets = sqliteBuckets
	}

	if expr, ok := buckets[interval]; ok {
		return expr
	}
	return buckets[models.IntervalDaily]
}
