package services

import "errors"

// Invalid-argument sentinels: caller-supplied values violating a documented
// precondition. Messages are user-safe and may be surfaced verbatim.
var (
	ErrCycleLengthNotPositive  = errors.New("cycle length must be a positive integer")
	ErrPeriodLengthNotPositive = errors.New("period length must be a positive integer")
	ErrTargetBeforeAnchor      = errors.New("target date cannot be before the last period start date")
	ErrPhaseInputNotPositive   = errors.New("cycle day, cycle length, period length, and luteal phase length must be positive integers")
	ErrPeriodExceedsCycle      = errors.New("period length cannot be longer than cycle length")
)

// ErrInternal marks unexpected failures inside the calculator. It carries no
// caller-facing detail; the full cause goes to the server log only.
var ErrInternal = errors.New("internal cycle calculation failure")

var invalidArgumentErrors = []error{
	ErrCycleLengthNotPositive,
	ErrPeriodLengthNotPositive,
	ErrTargetBeforeAnchor,
	ErrPhaseInputNotPositive,
	ErrPeriodExceedsCycle,
}

// IsInvalidArgument reports whether err was caused by caller input, possibly
// through any number of wrapping layers.
func IsInvalidArgument(err error) bool {
	for _, sentinel := range invalidArgumentErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
