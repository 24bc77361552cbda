package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailabilityConfig represents the reservation rules configured by a
// business owner: which weekdays and time slots accept reservations, which
// party sizes fit, which dates are closed and which dates run an override
// schedule. One config per business.
type AvailabilityConfig struct {
	BusinessID int64

	AvailableDays []Weekday
	TimeSlots     []types.TimeString
	MaxPartySizes []int

	UnavailableDates []string // ISO dates (YYYY-MM-DD), closed regardless of weekday

	// SpecialSchedules maps an ISO date to override time slots for that
	// date. A non-empty override replaces TimeSlots entirely.
	SpecialSchedules map[string][]types.TimeString

	// SlotCapacity is the number of active reservations accepted per
	// (date, time) slot.
	SlotCapacity int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultAvailabilityConfig returns the rules applied to businesses that
// have not stored a config.
func DefaultAvailabilityConfig() *AvailabilityConfig {
	return &AvailabilityConfig{
		AvailableDays:    append([]Weekday(nil), DefaultAvailableDays...),
		TimeSlots:        append([]types.TimeString(nil), DefaultTimeSlots...),
		MaxPartySizes:    append([]int(nil), DefaultMaxPartySizes...),
		UnavailableDates: []string{},
		SpecialSchedules: map[string][]types.TimeString{},
		SlotCapacity:     DefaultSlotCapacity,
	}
}

// IsDayAvailable reports whether the weekday accepts reservations.
func (c *AvailabilityConfig) IsDayAvailable(day Weekday) bool {
	for _, d := range c.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// IsDateUnavailable reports whether the date is explicitly excluded.
func (c *AvailabilityConfig) IsDateUnavailable(date time.Time) bool {
	iso := date.Format(DateFormat)
	for _, d := range c.UnavailableDates {
		if d == iso {
			return true
		}
	}
	return false
}

// EffectiveTimeSlots returns the slot set in force for the date: the
// special-schedule override when present and non-empty, the default
// TimeSlots otherwise.
func (c *AvailabilityConfig) EffectiveTimeSlots(date time.Time) []types.TimeString {
	if override, ok := c.SpecialSchedules[date.Format(DateFormat)]; ok && len(override) > 0 {
		return override
	}
	return c.TimeSlots
}

// HasTimeSlot reports whether t is a member of the effective slot set
// for the date.
func (c *AvailabilityConfig) HasTimeSlot(date time.Time, t types.TimeString) bool {
	for _, slot := range c.EffectiveTimeSlots(date) {
		if slot == t {
			return true
		}
	}
	return false
}

// CanAccommodate reports whether at least one configured party size is
// large enough for the requested one.
func (c *AvailabilityConfig) CanAccommodate(partySize int) bool {
	for _, max := range c.MaxPartySizes {
		if max >= partySize {
			return true
		}
	}
	return false
}
