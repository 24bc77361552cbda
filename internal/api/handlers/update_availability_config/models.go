package update_availability_config

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
)

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	AvailableDays    []string            `json:"availableDays"`
	TimeSlots        []string            `json:"timeSlots"`
	MaxPartySizes    []int               `json:"maxPartySizes"`
	UnavailableDates []string            `json:"unavailableDates"`
	SpecialSchedules map[string][]string `json:"specialSchedules"`
	SlotCapacity     *int                `json:"slotCapacity,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(actorID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		ActorID:          actorID,
		AvailableDays:    r.AvailableDays,
		TimeSlots:        r.TimeSlots,
		MaxPartySizes:    r.MaxPartySizes,
		UnavailableDates: r.UnavailableDates,
		SpecialSchedules: r.SpecialSchedules,
		SlotCapacity:     r.SlotCapacity,
	}
}
