package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// Default availability used when a business has not stored a config.
// A business without a config accepts reservations under these rules
// rather than rejecting every request.
var (
	DefaultAvailableDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

	DefaultTimeSlots = []types.TimeString{
		"12:00", "12:30", "13:00", "13:30", "14:00",
		"19:00", "19:30", "20:00", "20:30", "21:00",
	}

	DefaultMaxPartySizes = []int{1, 2, 4, 6, 8}
)

// DefaultSlotCapacity is the number of active reservations a single
// (date, time) slot accepts when the business has not configured one.
const DefaultSlotCapacity = 3

// Business validation constants
const (
	MinSlotCapacity   = 1
	MaxSlotCapacity   = 100
	MaxPartySizeLimit = 100
	MaxNotesLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses that count against slot capacity.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses lists the statuses that permit no further transitions.
var TerminalStatuses = []ReservationStatus{
	StatusCanceled,
	StatusCompleted,
}
