package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/liora-app/liora/internal/services"
)

// GetCycleDayInfo serves GET /cycle/day-info: the cycle day and phase for a
// date, counted from the last period start.
func (handler *Handler) GetCycleDayInfo(c *fiber.Ctx) error {
	today := dateAtUTC(handler.now())

	query, err := parseDayInfoQuery(c, today)
	if err != nil {
		var invalid *paramError
		if errors.As(err, &invalid) {
			return detailError(c, fiber.StatusUnprocessableEntity, invalid.message)
		}
		return detailError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	handler.log.WithFields(logrus.Fields{
		"query_date":             query.target.Format("2006-01-02"),
		"last_period_start_date": query.anchor.Format("2006-01-02"),
		"cycle_length":           query.cycleLength,
		"period_length":          query.periodLength,
		"include_details":        query.includeDetails,
	}).Info("day info request")

	if query.anchorSupplied && query.anchor.After(query.target) {
		handler.log.Warn("last period start date in the future")
		return detailError(c, fiber.StatusBadRequest, "The last period start date cannot be in the future.")
	}

	info, err := services.DayInfoFor(query.target, query.anchor, query.cycleLength, query.periodLength, query.includeDetails)
	if err != nil {
		if services.IsInvalidArgument(err) {
			handler.log.WithError(err).Warn("day info rejected")
			return detailError(c, fiber.StatusBadRequest, err.Error())
		}
		handler.log.WithError(err).Error("day info computation failed")
		return detailError(c, fiber.StatusInternalServerError, internalErrorDetail)
	}

	return c.JSON(info)
}
