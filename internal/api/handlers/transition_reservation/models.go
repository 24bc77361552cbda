package transition_reservation

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Action    string `json:"action"`    // confirm | cancel | complete
	ActorRole string `json:"actorRole"` // owner | customer
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionRequest) ToServiceRequest(actorID int64) *models.TransitionRequest {
	return &models.TransitionRequest{
		ActorID:   actorID,
		ActorRole: r.ActorRole,
		Action:    r.Action,
	}
}
