package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/liora-app/liora/internal/models"
)

// paramError marks a malformed or out-of-range query parameter. These are
// rejected with 422 before the calculator is invoked.
type paramError struct {
	message string
}

func (err *paramError) Error() string {
	return err.message
}

func newParamError(format string, args ...any) *paramError {
	return &paramError{message: fmt.Sprintf(format, args...)}
}

type dayInfoQuery struct {
	target         time.Time
	anchor         time.Time
	anchorSupplied bool
	cycleLength    int
	periodLength   int
	includeDetails bool
}

// parseDayInfoQuery resolves the day-info query parameters against their
// defaults: target defaults to today, the anchor to today minus one default
// cycle. Both dates are normalized to midnight UTC.
func parseDayInfoQuery(c *fiber.Ctx, today time.Time) (dayInfoQuery, error) {
	query := dayInfoQuery{
		target:       today,
		anchor:       today.AddDate(0, 0, -models.DefaultCycleLength),
		cycleLength:  models.DefaultCycleLength,
		periodLength: models.DefaultPeriodLength,
	}

	if raw := strings.TrimSpace(c.Query("query_date")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return dayInfoQuery{}, newParamError("query_date must be a valid date in YYYY-MM-DD format")
		}
		query.target = parsed
	}

	if raw := strings.TrimSpace(c.Query("last_period_start_date")); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			return dayInfoQuery{}, newParamError("last_period_start_date must be a valid date in YYYY-MM-DD format")
		}
		query.anchor = parsed
		query.anchorSupplied = true
	}

	if raw := strings.TrimSpace(c.Query("cycle_length")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return dayInfoQuery{}, newParamError("cycle_length must be an integer")
		}
		if parsed < models.MinCycleLength || parsed > models.MaxCycleLength {
			return dayInfoQuery{}, newParamError("cycle_length must be between %d and %d", models.MinCycleLength, models.MaxCycleLength)
		}
		query.cycleLength = parsed
	}

	if raw := strings.TrimSpace(c.Query("period_length")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return dayInfoQuery{}, newParamError("period_length must be an integer")
		}
		if parsed < 1 {
			return dayInfoQuery{}, newParamError("period_length must be at least 1")
		}
		query.periodLength = parsed
	}

	if raw := strings.TrimSpace(c.Query("include_details")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return dayInfoQuery{}, newParamError("include_details must be a boolean")
		}
		query.includeDetails = parsed
	}

	return query, nil
}

func parseDateParam(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, time.UTC)
}

func dateAtUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
