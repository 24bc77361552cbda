package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to canceled", StatusPending, StatusCanceled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to canceled", StatusConfirmed, StatusCanceled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"canceled is terminal", StatusCanceled, StatusCanceled, false},
		{"canceled to pending", StatusCanceled, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransitionAction_TargetStatus(t *testing.T) {
	assert.Equal(t, StatusConfirmed, ActionConfirm.TargetStatus())
	assert.Equal(t, StatusCanceled, ActionCancel.TargetStatus())
	assert.Equal(t, StatusCompleted, ActionComplete.TargetStatus())
}

func TestTransitionAction_AllowedFor(t *testing.T) {
	assert.True(t, ActionConfirm.AllowedFor(RoleOwner))
	assert.False(t, ActionConfirm.AllowedFor(RoleCustomer))

	assert.True(t, ActionComplete.AllowedFor(RoleOwner))
	assert.False(t, ActionComplete.AllowedFor(RoleCustomer))

	assert.True(t, ActionCancel.AllowedFor(RoleOwner))
	assert.True(t, ActionCancel.AllowedFor(RoleCustomer))
}

func TestTransitionAction_RequiresFutureDate(t *testing.T) {
	assert.True(t, ActionConfirm.RequiresFutureDate())
	assert.True(t, ActionCancel.RequiresFutureDate())
	assert.False(t, ActionComplete.RequiresFutureDate())
}

func TestParseTransitionAction(t *testing.T) {
	action, err := ParseTransitionAction("confirm")
	require.NoError(t, err)
	assert.Equal(t, ActionConfirm, action)

	_, err = ParseTransitionAction("approve")
	assert.ErrorIs(t, err, ErrInvalidTransitionAction)

	_, err = ParseTransitionAction("")
	assert.ErrorIs(t, err, ErrInvalidTransitionAction)
}

func TestParseActorRole(t *testing.T) {
	role, err := ParseActorRole("owner")
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)

	role, err = ParseActorRole("customer")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)

	_, err = ParseActorRole("admin")
	assert.ErrorIs(t, err, ErrInvalidActorRole)
}

func TestIsDatePast(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	// The reservation's own date is usable until end of day.
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDatePast(today, now))

	yesterday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDatePast(yesterday, now))

	tomorrow := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDatePast(tomorrow, now))
}

func TestReservation_IsActive(t *testing.T) {
	r := &Reservation{Status: StatusPending}
	assert.True(t, r.IsActive())
	assert.False(t, r.IsTerminal())

	r.Status = StatusConfirmed
	assert.True(t, r.IsActive())

	r.Status = StatusCanceled
	assert.False(t, r.IsActive())
	assert.True(t, r.IsTerminal())

	r.Status = StatusCompleted
	assert.False(t, r.IsActive())
	assert.True(t, r.IsTerminal())
}
