package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCanceled  ReservationStatus = "canceled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a table reservation in the system.
// Reservations are never deleted, only transitioned to a terminal status.
type Reservation struct {
	ID         int64
	BusinessID int64
	UserID     int64

	Date      time.Time        // calendar date of the reservation
	StartTime types.TimeString // member of the effective slot set at creation time
	PartySize int
	Status    ReservationStatus

	// Denormalized data for history
	BusinessName string
	UserName     string
	ContactPhone *string
	ContactEmail *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts against slot capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are permitted
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCanceled || r.Status == StatusCompleted
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	BusinessID *int64             // Фильтр по заведению (опционально)
	UserID     *int64             // Фильтр по пользователю (опционально)
	Status     *ReservationStatus // Фильтр по статусу (опционально)
}
