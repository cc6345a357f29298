package services

import (
	"time"

	"github.com/liora-app/liora/internal/models"
)

// ClampCycleLength narrows a cycle length into the supported range. Out of
// range values are clamped rather than rejected; the transport layer already
// restricts the public range, this keeps direct callers lenient.
func ClampCycleLength(value int) int {
	if value < models.MinCycleLength {
		return models.MinCycleLength
	}
	if value > models.MaxCycleLength {
		return models.MaxCycleLength
	}
	return value
}

// CycleDay calculates the 1-based cycle day for target, counting from the
// anchor (last period start) and wrapping modulo the clamped cycle length.
// The result is always in [1, clamped cycle length].
func CycleDay(target time.Time, anchor time.Time, cycleLength int) (int, error) {
	if cycleLength <= 0 {
		return 0, ErrCycleLengthNotPositive
	}

	targetDay := dateOnly(target)
	anchorDay := dateOnly(anchor)
	if targetDay.Before(anchorDay) {
		return 0, ErrTargetBeforeAnchor
	}

	clamped := ClampCycleLength(cycleLength)
	diff := wholeDaysBetween(anchorDay, targetDay)
	return diff%clamped + 1, nil
}

// CyclePhase estimates the cycle phase for a cycle day. The luteal window is
// counted back from the end of the (clamped) cycle; ovulation sits in a
// three-day window just before it. This is a simplified heuristic, not a
// medical calculation.
func CyclePhase(cycleDay int, cycleLength int, periodLength int, lutealPhaseLength int) (models.Phase, error) {
	if cycleDay <= 0 || cycleLength <= 0 || periodLength <= 0 || lutealPhaseLength <= 0 {
		return "", ErrPhaseInputNotPositive
	}
	if periodLength > cycleLength {
		return "", ErrPeriodExceedsCycle
	}

	clamped := ClampCycleLength(cycleLength)

	if cycleDay <= periodLength {
		return models.PhaseMenstrual, nil
	}

	lutealStart := clamped - lutealPhaseLength
	if cycleDay >= lutealStart {
		return models.PhaseLuteal, nil
	}

	ovulationDay := clamped - lutealPhaseLength - 1
	if cycleDay >= ovulationDay && cycleDay <= ovulationDay+2 {
		return models.PhaseOvulatory, nil
	}

	return models.PhaseFollicular, nil
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func wholeDaysBetween(from time.Time, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
