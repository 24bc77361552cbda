package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// TransitionRequest запрос на переход статуса бронирования
type TransitionRequest struct {
	ActorID   int64  `json:"actorId"`
	ActorRole string `json:"actorRole"` // owner | customer
	Action    string `json:"action"`    // confirm | cancel | complete
}

// GetUserReservationsRequest запрос на получение бронирований пользователя
type GetUserReservationsRequest struct {
	UserID  int64   `json:"userId"`
	ActorID int64   `json:"actorId"`
	Status  *string `json:"status,omitempty"`
}

// GetBusinessReservationsRequest запрос на получение бронирований заведения
type GetBusinessReservationsRequest struct {
	BusinessID int64   `json:"businessId"`
	ActorID    int64   `json:"actorId"`
	Status     *string `json:"status,omitempty"`
}

// Response модели

// StatusChangeResponse результат принятого перехода статуса
type StatusChangeResponse struct {
	ReservationID int64  `json:"reservationId"`
	OldStatus     string `json:"oldStatus"`
	NewStatus     string `json:"newStatus"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	UserID     int64  `json:"userId"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "19:00"
	PartySize  int    `json:"partySize"`
	Status     string `json:"status"`

	// Денормализованные данные
	BusinessName string  `json:"businessName"`
	UserName     string  `json:"userName"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:           r.ID,
		BusinessID:   r.BusinessID,
		UserID:       r.UserID,
		Date:         r.Date.Format(domain.DateFormat),
		StartTime:    r.StartTime.String(),
		PartySize:    r.PartySize,
		Status:       string(r.Status),
		BusinessName: r.BusinessName,
		UserName:     r.UserName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, bool) {
	s := domain.ReservationStatus(status)
	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCanceled, domain.StatusCompleted:
		return s, true
	default:
		return "", false
	}
}
