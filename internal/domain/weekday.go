package domain

import (
	"errors"
	"time"
)

// ErrInvalidWeekday is returned when a string is not a known weekday token.
var ErrInvalidWeekday = errors.New("domain: invalid weekday")

// Weekday is a closed enumeration of the weekday tokens used in
// availability rules.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists every weekday token in calendar order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday converts a string token into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	for _, valid := range AllWeekdays {
		if w == valid {
			return w, nil
		}
	}
	return "", ErrInvalidWeekday
}

// WeekdayFromTime converts a time.Weekday into the domain token.
func WeekdayFromTime(d time.Weekday) Weekday {
	switch d {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
