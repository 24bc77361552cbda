package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model.
// Reason присутствует только при отказе.
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Allowed,
		Reason:    string(resp.Reason),
	}
}
