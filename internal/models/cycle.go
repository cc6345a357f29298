package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultCycleLength       = 28
	DefaultPeriodLength      = 5
	DefaultLutealPhaseLength = 14

	MinCycleLength = 21
	MaxCycleLength = 35
)

// Phase is one of the four named stages of a menstrual cycle.
type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

func (phase Phase) Valid() bool {
	switch phase {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal:
		return true
	}
	return false
}

// PhaseDetails carries the static guidance texts for one phase.
type PhaseDetails struct {
	Energy    string `json:"energy"`
	Emotional string `json:"emotional"`
	Nutrition string `json:"nutrition"`
	Exercise  string `json:"exercise"`
}

// CalendarDate is a calendar day with no time-of-day component.
// It serializes as YYYY-MM-DD.
type CalendarDate struct {
	time.Time
}

func NewCalendarDate(value time.Time) CalendarDate {
	year, month, day := value.Date()
	return CalendarDate{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (date CalendarDate) String() string {
	return date.Format("2006-01-02")
}

func (date CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", date.String())), nil
}

func (date *CalendarDate) UnmarshalJSON(raw []byte) error {
	trimmed := strings.Trim(string(raw), `"`)
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, time.UTC)
	if err != nil {
		return err
	}
	date.Time = parsed
	return nil
}

// DayInfo is the result of a single day-info computation. Details is nil
// unless the caller asked for the guidance texts.
type DayInfo struct {
	Date     CalendarDate  `json:"date"`
	CycleDay int           `json:"cycleDay"`
	Phase    Phase         `json:"phase"`
	Details  *PhaseDetails `json:"details"`
}
