package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	BusinessID   int64   `json:"businessId"`
	Date         string  `json:"date"`      // "2025-10-15"
	StartTime    string  `json:"startTime"` // "19:00"
	PartySize    int     `json:"partySize"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64   `json:"id"`
	BusinessID   int64   `json:"businessId"`
	UserID       int64   `json:"userId"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	PartySize    int     `json:"partySize"`
	Status       string  `json:"status"`
	BusinessName string  `json:"businessName"`
	UserName     string  `json:"userName"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		BusinessID:   r.BusinessID,
		UserID:       userID,
		Date:         date,
		StartTime:    startTime,
		PartySize:    r.PartySize,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		BusinessID:   resp.BusinessID,
		UserID:       resp.UserID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		PartySize:    resp.PartySize,
		Status:       resp.Status,
		BusinessName: resp.BusinessName,
		UserName:     resp.UserName,
		ContactPhone: resp.ContactPhone,
		ContactEmail: resp.ContactEmail,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
