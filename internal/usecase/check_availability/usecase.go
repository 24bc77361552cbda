package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
)

// UseCase use case для проверки доступности слота без создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности. Только чтение: результат
// отражает состояние на момент вызова и не резервирует слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: business=%d, date=%s, time=%s, party=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию доступности (отсутствие — не ошибка)
	config, err := uc.configRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("CheckAvailability: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Подсчитываем активные бронирования на слот
	activeCount, err := uc.reservationRepo.CountActiveAtSlot(ctx, req.BusinessID, req.Date, req.StartTime)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count active reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
	}

	// 4. Оцениваем доступность
	decision := domain.EvaluateAvailability(config, req.Date, req.StartTime, req.PartySize, activeCount)

	if decision.Allowed {
		uc.logger.Info("CheckAvailability: slot available (business=%d, date=%s, time=%s)",
			req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)
	} else {
		uc.logger.Info("CheckAvailability: slot denied, reason=%s (business=%d, date=%s, time=%s)",
			decision.Reason, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)
	}

	return &Response{
		Allowed: decision.Allowed,
		Reason:  decision.Reason,
	}, nil
}
