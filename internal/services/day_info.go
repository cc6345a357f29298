package services

import (
	"fmt"
	"time"

	"github.com/liora-app/liora/internal/logging"
	"github.com/liora-app/liora/internal/models"
)

// DayInfoFor computes the cycle day and phase for target, anchored at the
// last period start. The luteal window is fixed at
// models.DefaultLutealPhaseLength days. Precondition violations come back as
// invalid-argument errors prefixed with the calculation context; anything
// unexpected is converted to ErrInternal and never propagated raw.
func DayInfoFor(target time.Time, anchor time.Time, cycleLength int, periodLength int, includeDetails bool) (info models.DayInfo, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logging.Log.WithField("panic", recovered).Error("day info computation panicked")
			info = models.DayInfo{}
			err = fmt.Errorf("%w: day info computation failed", ErrInternal)
		}
	}()

	if cycleLength <= 0 {
		return models.DayInfo{}, dayInfoError(ErrCycleLengthNotPositive)
	}
	if periodLength <= 0 {
		return models.DayInfo{}, dayInfoError(ErrPeriodLengthNotPositive)
	}
	if dateOnly(target).Before(dateOnly(anchor)) {
		return models.DayInfo{}, dayInfoError(ErrTargetBeforeAnchor)
	}

	cycleDay, err := CycleDay(target, anchor, cycleLength)
	if err != nil {
		return models.DayInfo{}, dayInfoError(err)
	}

	phase, err := CyclePhase(cycleDay, cycleLength, periodLength, models.DefaultLutealPhaseLength)
	if err != nil {
		return models.DayInfo{}, dayInfoError(err)
	}

	info = models.DayInfo{
		Date:     models.NewCalendarDate(target),
		CycleDay: cycleDay,
		Phase:    phase,
	}
	if includeDetails {
		details := PhaseDetailsFor(phase)
		info.Details = &details
	}
	return info, nil
}

func dayInfoError(err error) error {
	return fmt.Errorf("error calculating day info: %w", err)
}
