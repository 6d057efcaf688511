package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"analytics-api/internal/configuration"
	apierrors "analytics-api/internal/errors"
	"analytics-api/internal/models"

	"github.com/go-playground/validator/v10"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// minDate is the earliest date that still formats as YYYY-MM-DD.
var minDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// growthQueryParams holds the raw query after defaulting, before it is
// converted into a models.GrowthQuery.
type growthQueryParams struct {
	Interval  string `validate:"oneof=daily weekly monthly"`
	StartDate string `validate:"omitempty,isodate"`
	EndDate   string `validate:"isodate"`
}

var growthQueryValidator = newGrowthQueryValidator()

func newGrowthQueryValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := parseISODate(fl.Field().String())
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register isodate validation: %v", err))
	}
	v.RegisterStructValidation(validateGrowthRange, growthQueryParams{})
	return v
}

// validateGrowthRange reports the range rules only when both dates parse;
// malformed dates are already reported by the isodate tag.
func validateGrowthRange(sl validator.StructLevel) {
	params := sl.Current().Interface().(growthQueryParams)

	start, startOK := parseISODate(params.StartDate)
	end, endOK := parseISODate(params.EndDate)
	if !startOK || !endOK {
		return
	}

	if start.After(end) {
		sl.ReportError(params.EndDate, "EndDate", "EndDate", "daterange", "")
		return
	}

	maxEnd := start.AddDate(0, 0, configuration.GrowthMaxDailyRangeDays)
	if params.Interval == string(models.IntervalDaily) && end.After(maxEnd) {
		sl.ReportError(params.EndDate, "EndDate", "EndDate", "maxdailyrange", "")
	}
}

func parseISODate(value string) (time.Time, bool) {
	if !isoDatePattern.MatchString(value) {
		return time.Time{}, false
	}
	date, err := time.Parse(models.DateLayout, value)
	if err != nil || date.Before(minDate) {
		return time.Time{}, false
	}
	return date, true
}

func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// applyGrowthDefaults fills in absent dates. A missing start date stays empty
// when the end date it derives from is malformed, and is clamped to minDate.
func applyGrowthDefaults(params *growthQueryParams, now time.Time) {
	if params.Interval == "" {
		params.Interval = string(models.IntervalDaily)
	}

	current := today(now)
	switch {
	case params.StartDate == "" && params.EndDate == "":
		params.EndDate = current.Format(models.DateLayout)
		params.StartDate = current.AddDate(0, 0, -configuration.GrowthDefaultRangeDays).Format(models.DateLayout)
	case params.StartDate == "":
		if end, ok := parseISODate(params.EndDate); ok {
			start := end.AddDate(0, 0, -configuration.GrowthDefaultRangeDays)
			if start.Before(minDate) {
				start = minDate
			}
			params.StartDate = start.Format(models.DateLayout)
		}
	case params.EndDate == "":
		params.EndDate = current.Format(models.DateLayout)
	}
}

// growthQueryMessages turns validator errors into client messages, always in
// the order interval, startDate, endDate, range, daily range length.
func growthQueryMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failed[fieldErr.Field()+"."+fieldErr.Tag()] = true
	}

	rules := []struct {
		key     string
		message string
	}{
		{"Interval.oneof", apierrors.ErrInvalidInterval},
		{"StartDate.isodate", apierrors.ErrInvalidStartDate},
		{"EndDate.isodate", apierrors.ErrInvalidEndDate},
		{"EndDate.daterange", apierrors.ErrInvalidDateRange},
		{"EndDate.maxdailyrange", apierrors.ErrDailyRangeTooLong},
	}

	messages := make([]string, 0, len(rules))
	for _, rule := range rules {
		if failed[rule.key] {
			messages = append(messages, rule.message)
		}
	}
	return messages
}

// NormalizeGrowthQuery validates the growth endpoint query string and applies
// its defaults. Values are used verbatim. On failure it returns a 400 APIError
// listing every violated rule.
func NormalizeGrowthQuery(query url.Values, now time.Time) (models.GrowthQuery, error) {
	params := growthQueryParams{
		Interval:  query.Get("interval"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}
	applyGrowthDefaults(&params, now)

	if err := growthQueryValidator.Struct(params); err != nil {
		return models.GrowthQuery{}, apierrors.NewAPIError(http.StatusBadRequest, growthQueryMessages(err)...)
	}

	start, _ := parseISODate(params.StartDate)
	end, _ := parseISODate(params.EndDate)

	return models.GrowthQuery{
		Interval:  models.Interval(params.Interval),
		StartDate: start,
		EndDate:   end,
	}, nil
}
