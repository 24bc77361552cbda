package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// DenyReason is a closed enumeration of the reasons an availability
// evaluation can refuse a request. Callers map reasons to localized
// messages; the engine never produces free-form strings.
type DenyReason string

const (
	DenyDayUnavailable       DenyReason = "day-unavailable"
	DenyDateUnavailable      DenyReason = "date-unavailable"
	DenyTimeUnavailable      DenyReason = "time-unavailable"
	DenyPartySizeUnavailable DenyReason = "party-size-unavailable"
	DenyTimeFull             DenyReason = "time-full"
)

// Decision is the outcome of an availability evaluation.
type Decision struct {
	Allowed bool
	Reason  DenyReason // set only when Allowed is false
}

// Allow returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision carrying the reason.
func Deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// EvaluateAvailability decides whether a reservation request is legal under
// the business rules. Checks run in a fixed order and the first failing one
// wins. A nil cfg means the business has not stored rules, in which case the
// documented defaults apply; the substitution itself never denies.
//
// The function is pure given its inputs: activeCount is the number of
// pending or confirmed reservations at the same (business, date, time) slot
// as of evaluation time, supplied by the caller.
func EvaluateAvailability(cfg *AvailabilityConfig, date time.Time, startTime types.TimeString, partySize int, activeCount int) Decision {
	if cfg == nil {
		cfg = DefaultAvailabilityConfig()
	}

	if !cfg.IsDayAvailable(WeekdayFromTime(date.Weekday())) {
		return Deny(DenyDayUnavailable)
	}

	if cfg.IsDateUnavailable(date) {
		return Deny(DenyDateUnavailable)
	}

	if !cfg.HasTimeSlot(date, startTime) {
		return Deny(DenyTimeUnavailable)
	}

	if !cfg.CanAccommodate(partySize) {
		return Deny(DenyPartySizeUnavailable)
	}

	if activeCount >= cfg.SlotCapacity {
		return Deny(DenyTimeFull)
	}

	return Allow()
}
