package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidActorRole is returned when a string is not a known actor role.
	ErrInvalidActorRole = errors.New("domain: invalid actor role")

	// ErrInvalidTransitionAction is returned when a string is not a known
	// lifecycle action.
	ErrInvalidTransitionAction = errors.New("domain: invalid transition action")
)

// ActorRole identifies who is performing a lifecycle transition.
type ActorRole string

const (
	RoleOwner    ActorRole = "owner"    // the business owner
	RoleCustomer ActorRole = "customer" // the customer who created the reservation
)

// ParseActorRole converts a string token into an ActorRole.
func ParseActorRole(s string) (ActorRole, error) {
	switch ActorRole(s) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleCustomer:
		return RoleCustomer, nil
	default:
		return "", ErrInvalidActorRole
	}
}

// TransitionAction is a closed enumeration of lifecycle actions.
type TransitionAction string

const (
	ActionConfirm  TransitionAction = "confirm"
	ActionCancel   TransitionAction = "cancel"
	ActionComplete TransitionAction = "complete"
)

// ParseTransitionAction converts a string token into a TransitionAction.
func ParseTransitionAction(s string) (TransitionAction, error) {
	switch TransitionAction(s) {
	case ActionConfirm:
		return ActionConfirm, nil
	case ActionCancel:
		return ActionCancel, nil
	case ActionComplete:
		return ActionComplete, nil
	default:
		return "", ErrInvalidTransitionAction
	}
}

// TargetStatus returns the status the action leads to.
func (a TransitionAction) TargetStatus() ReservationStatus {
	switch a {
	case ActionConfirm:
		return StatusConfirmed
	case ActionCancel:
		return StatusCanceled
	default:
		return StatusCompleted
	}
}

// AllowedFor reports whether the role may trigger the action.
// Confirm and complete belong to the business owner; cancel is open to the
// owner and to the requesting customer.
func (a TransitionAction) AllowedFor(role ActorRole) bool {
	switch a {
	case ActionConfirm, ActionComplete:
		return role == RoleOwner
	case ActionCancel:
		return role == RoleOwner || role == RoleCustomer
	default:
		return false
	}
}

// RequiresFutureDate reports whether the action demands that the
// reservation's date has not passed. Completing a confirmed reservation
// has no date precondition.
func (a TransitionAction) RequiresFutureDate() bool {
	return a == ActionConfirm || a == ActionCancel
}

// CanTransition reports whether the status machine permits from -> to.
// pending -> confirmed | canceled; confirmed -> canceled | completed;
// canceled and completed are terminal.
func CanTransition(from, to ReservationStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCanceled
	case StatusConfirmed:
		return to == StatusCanceled || to == StatusCompleted
	default:
		return false
	}
}

// IsDatePast reports whether the reservation date has fully passed.
// The reservation's own date counts as still future until end of day,
// so only dates strictly before today's date are past.
func IsDatePast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// StatusChange describes one accepted lifecycle transition.
type StatusChange struct {
	ReservationID int64
	OldStatus     ReservationStatus
	NewStatus     ReservationStatus
}
