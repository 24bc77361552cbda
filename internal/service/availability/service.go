package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	businessClient "github.com/m04kA/SMC-ReservationService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
)

// Service сервис для работы с конфигурацией доступности
type Service struct {
	configRepo     ConfigRepository
	businessClient BusinessServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	businessClient BusinessServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:     configRepo,
		businessClient: businessClient,
		logger:         logger,
	}
}

// GetConfig получает конфигурацию доступности заведения.
// Публичный метод. Отсутствие сохраненной конфигурации — ErrConfigNotFound;
// движок доступности при этом работает по дефолтным правилам.
func (s *Service) GetConfig(ctx context.Context, businessID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for business=%d", businessID)

	config, err := s.configRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("GetConfig: config for business=%d not found", businessID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetConfig: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfig: successfully fetched config for business=%d", businessID)
	return models.FromDomainConfig(config), nil
}

// UpdateConfig создает или обновляет конфигурацию доступности.
// Доступно только владельцу заведения.
func (s *Service) UpdateConfig(ctx context.Context, businessID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for business=%d by actor=%d", businessID, req.ActorID)

	// 1. Получаем заведение для проверки прав доступа
	business, err := s.businessClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			s.logger.Warn("UpdateConfig: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateConfig: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только владелец заведения)
	if !business.IsOwner(req.ActorID) {
		s.logger.Warn("UpdateConfig: actor=%d is not the owner of business=%d", req.ActorID, businessID)
		return nil, ErrAccessDenied
	}

	// 3. Конвертируем и валидируем конфигурацию
	config := req.ToDomainConfig(businessID)
	if err := s.validateConfig(config); err != nil {
		s.logger.Warn("UpdateConfig: validation failed for business=%d: %v", businessID, err)
		return nil, err
	}

	// 4. Сохраняем конфигурацию
	updated, err := s.configRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully updated config for business=%d", businessID)
	return models.FromDomainConfig(updated), nil
}

// validateConfig валидирует параметры конфигурации
func (s *Service) validateConfig(cfg *domain.AvailabilityConfig) error {
	if len(cfg.AvailableDays) == 0 {
		return fmt.Errorf("%w: availableDays must not be empty", ErrInvalidInput)
	}
	for _, d := range cfg.AvailableDays {
		if _, err := domain.ParseWeekday(string(d)); err != nil {
			return fmt.Errorf("%w: invalid weekday %q", ErrInvalidInput, d)
		}
	}

	if len(cfg.TimeSlots) == 0 {
		return fmt.Errorf("%w: timeSlots must not be empty", ErrInvalidInput)
	}
	for _, slot := range cfg.TimeSlots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time slot %q", ErrInvalidInput, slot)
		}
	}

	if len(cfg.MaxPartySizes) == 0 {
		return fmt.Errorf("%w: maxPartySizes must not be empty", ErrInvalidInput)
	}
	for _, size := range cfg.MaxPartySizes {
		if size <= 0 || size > domain.MaxPartySizeLimit {
			return fmt.Errorf("%w: party size must be between 1 and %d", ErrInvalidInput, domain.MaxPartySizeLimit)
		}
	}

	for _, date := range cfg.UnavailableDates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid unavailable date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
		}
	}

	for date, slots := range cfg.SpecialSchedules {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid special schedule date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
		}
		for _, slot := range slots {
			if err := slot.Validate(); err != nil {
				return fmt.Errorf("%w: invalid special schedule slot %q for %s", ErrInvalidInput, slot, date)
			}
		}
	}

	if cfg.SlotCapacity < domain.MinSlotCapacity || cfg.SlotCapacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: slotCapacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	return nil
}
