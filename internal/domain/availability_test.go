package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// 2025-10-15 is a Wednesday, 2025-10-19 is a Sunday.
var (
	testWednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testSunday    = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func testConfig() *AvailabilityConfig {
	return &AvailabilityConfig{
		BusinessID:    1,
		AvailableDays: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		TimeSlots:     []types.TimeString{"12:00", "19:00", "20:00"},
		MaxPartySizes: []int{2, 4, 6},
		SlotCapacity:  3,
	}
}

func TestEvaluateAvailability_Allowed(t *testing.T) {
	decision := EvaluateAvailability(testConfig(), testWednesday, "19:00", 4, 0)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}

func TestEvaluateAvailability_NilConfigUsesDefaults(t *testing.T) {
	// Without a stored config the default rules apply: Wednesday at 19:00
	// for a party of 4 is within the defaults.
	decision := EvaluateAvailability(nil, testWednesday, "19:00", 4, 0)
	assert.True(t, decision.Allowed)

	// Sunday is not a default available day.
	decision = EvaluateAvailability(nil, testSunday, "19:00", 4, 0)
	require.False(t, decision.Allowed)
	assert.Equal(t, DenyDayUnavailable, decision.Reason)
}

func TestEvaluateAvailability_DayUnavailable(t *testing.T) {
	cfg := testConfig() // no Sunday

	decision := EvaluateAvailability(cfg, testSunday, "19:00", 4, 0)

	require.False(t, decision.Allowed)
	assert.Equal(t, DenyDayUnavailable, decision.Reason)
}

func TestEvaluateAvailability_DateUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.UnavailableDates = []string{"2025-10-15"}

	decision := EvaluateAvailability(cfg, testWednesday, "19:00", 4, 0)

	require.False(t, decision.Allowed)
	assert.Equal(t, DenyDateUnavailable, decision.Reason)
}

func TestEvaluateAvailability_TimeUnavailable(t *testing.T) {
	decision := EvaluateAvailability(testConfig(), testWednesday, "15:00", 4, 0)

	require.False(t, decision.Allowed)
	assert.Equal(t, DenyTimeUnavailable, decision.Reason)
}

func TestEvaluateAvailability_SpecialScheduleOverridesSlots(t *testing.T) {
	cfg := testConfig()
	cfg.SpecialSchedules = map[string][]types.TimeString{
		"2025-10-15": {"10:00", "11:00"},
	}

	// The regular slot is gone on the overridden date.
	decision := EvaluateAvailability(cfg, testWednesday, "19:00", 4, 0)
	require.False(t, decision.Allowed)
	assert.Equal(t, DenyTimeUnavailable, decision.Reason)

	// The special slot works instead.
	decision = EvaluateAvailability(cfg, testWednesday, "10:00", 4, 0)
	assert.True(t, decision.Allowed)

	// Other dates keep the regular slots.
	thursday := testWednesday.AddDate(0, 0, 1)
	decision = EvaluateAvailability(cfg, thursday, "19:00", 4, 0)
	assert.True(t, decision.Allowed)
}

func TestEvaluateAvailability_PartySize(t *testing.T) {
	cfg := testConfig() // max sizes 2, 4, 6

	// Any configured maximum >= requested size accommodates the party.
	decision := EvaluateAvailability(cfg, testWednesday, "19:00", 5, 0)
	assert.True(t, decision.Allowed)

	// Exactly the largest maximum still fits.
	decision = EvaluateAvailability(cfg, testWednesday, "19:00", 6, 0)
	assert.True(t, decision.Allowed)

	decision = EvaluateAvailability(cfg, testWednesday, "19:00", 7, 0)
	require.False(t, decision.Allowed)
	assert.Equal(t, DenyPartySizeUnavailable, decision.Reason)
}

func TestEvaluateAvailability_SlotCapacity(t *testing.T) {
	cfg := testConfig() // capacity 3

	decision := EvaluateAvailability(cfg, testWednesday, "19:00", 4, 2)
	assert.True(t, decision.Allowed)

	decision = EvaluateAvailability(cfg, testWednesday, "19:00", 4, 3)
	require.False(t, decision.Allowed)
	assert.Equal(t, DenyTimeFull, decision.Reason)

	decision = EvaluateAvailability(cfg, testWednesday, "19:00", 4, 4)
	require.False(t, decision.Allowed)
	assert.Equal(t, DenyTimeFull, decision.Reason)
}

func TestEvaluateAvailability_FirstFailureWins(t *testing.T) {
	// Sunday + unavailable date + unknown time: the day check fires first.
	cfg := testConfig()
	cfg.UnavailableDates = []string{"2025-10-19"}

	decision := EvaluateAvailability(cfg, testSunday, "15:00", 99, 100)

	require.False(t, decision.Allowed)
	assert.Equal(t, DenyDayUnavailable, decision.Reason)
}
