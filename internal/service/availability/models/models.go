package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// UpdateConfigRequest запрос на создание/обновление конфигурации доступности
type UpdateConfigRequest struct {
	ActorID          int64               `json:"actorId"`
	AvailableDays    []string            `json:"availableDays"`
	TimeSlots        []string            `json:"timeSlots"`
	MaxPartySizes    []int               `json:"maxPartySizes"`
	UnavailableDates []string            `json:"unavailableDates"`
	SpecialSchedules map[string][]string `json:"specialSchedules"`
	SlotCapacity     *int                `json:"slotCapacity,omitempty"` // nil = оставить дефолт
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpdateConfigRequest) ToDomainConfig(businessID int64) *domain.AvailabilityConfig {
	cfg := &domain.AvailabilityConfig{
		BusinessID:       businessID,
		AvailableDays:    make([]domain.Weekday, 0, len(r.AvailableDays)),
		TimeSlots:        make([]types.TimeString, 0, len(r.TimeSlots)),
		MaxPartySizes:    append([]int(nil), r.MaxPartySizes...),
		UnavailableDates: append([]string(nil), r.UnavailableDates...),
		SpecialSchedules: make(map[string][]types.TimeString, len(r.SpecialSchedules)),
		SlotCapacity:     domain.DefaultSlotCapacity,
	}

	for _, d := range r.AvailableDays {
		cfg.AvailableDays = append(cfg.AvailableDays, domain.Weekday(d))
	}
	for _, s := range r.TimeSlots {
		cfg.TimeSlots = append(cfg.TimeSlots, types.TimeString(s))
	}
	for date, slots := range r.SpecialSchedules {
		converted := make([]types.TimeString, 0, len(slots))
		for _, s := range slots {
			converted = append(converted, types.TimeString(s))
		}
		cfg.SpecialSchedules[date] = converted
	}
	if r.SlotCapacity != nil {
		cfg.SlotCapacity = *r.SlotCapacity
	}

	return cfg
}

// Response модели

// ConfigResponse ответ с конфигурацией доступности
type ConfigResponse struct {
	BusinessID       int64               `json:"businessId"`
	AvailableDays    []string            `json:"availableDays"`
	TimeSlots        []string            `json:"timeSlots"`
	MaxPartySizes    []int               `json:"maxPartySizes"`
	UnavailableDates []string            `json:"unavailableDates"`
	SpecialSchedules map[string][]string `json:"specialSchedules"`
	SlotCapacity     int                 `json:"slotCapacity"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.AvailabilityConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	resp := &ConfigResponse{
		BusinessID:       cfg.BusinessID,
		AvailableDays:    make([]string, 0, len(cfg.AvailableDays)),
		TimeSlots:        make([]string, 0, len(cfg.TimeSlots)),
		MaxPartySizes:    append([]int(nil), cfg.MaxPartySizes...),
		UnavailableDates: append([]string(nil), cfg.UnavailableDates...),
		SpecialSchedules: make(map[string][]string, len(cfg.SpecialSchedules)),
		SlotCapacity:     cfg.SlotCapacity,
		CreatedAt:        cfg.CreatedAt,
		UpdatedAt:        cfg.UpdatedAt,
	}

	for _, d := range cfg.AvailableDays {
		resp.AvailableDays = append(resp.AvailableDays, string(d))
	}
	for _, s := range cfg.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, string(s))
	}
	for date, slots := range cfg.SpecialSchedules {
		converted := make([]string, 0, len(slots))
		for _, s := range slots {
			converted = append(converted, string(s))
		}
		resp.SpecialSchedules[date] = converted
	}

	if resp.UnavailableDates == nil {
		resp.UnavailableDates = []string{}
	}

	return resp
}
