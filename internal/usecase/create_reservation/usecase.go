package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	businessClient "github.com/m04kA/SMC-ReservationService/internal/integrations/businessservice"
	userClient "github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/notify"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	configRepo      ConfigRepository
	businessClient  BusinessServiceClient
	userClient      UserServiceClient
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigRepository,
	businessClient BusinessServiceClient,
	userClient UserServiceClient,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		businessClient:  businessClient,
		userClient:      userClient,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Подсчет занятости слота и вставка выполняются в одной сериализуемой
// транзакции: проверка и запись не должны разъезжаться при параллельных
// запросах на один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, business=%d, date=%s, time=%s, party=%d",
		req.UserID, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем заведение (денормализация названия)
	business, err := uc.businessClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservation: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateReservation: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем профиль пользователя (денормализация имени и контактов)
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем конфигурацию доступности заведения
		config, err := uc.configRepo.GetByBusinessID(txCtx, req.BusinessID)
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateReservation: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Отсутствие конфигурации — не отказ: evaluator подставит дефолтные правила
		if config == nil {
			uc.logger.Info("CreateReservation: no config for business=%d, using defaults", req.BusinessID)
		}

		// 5.2. Подсчитываем активные бронирования на слот (с блокировкой FOR UPDATE)
		activeCount, err := uc.reservationRepo.CountActiveAtSlot(txCtx, req.BusinessID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}

		// 5.3. Оцениваем доступность
		decision := domain.EvaluateAvailability(config, req.Date, req.StartTime, req.PartySize, activeCount)
		if !decision.Allowed {
			uc.logger.Warn("CreateReservation: denied, reason=%s (business=%d, date=%s, time=%s)",
				decision.Reason, req.BusinessID, req.Date.Format(domain.DateFormat), req.StartTime)
			return denyError(decision.Reason)
		}

		// 5.4. Создаем бронирование в статусе pending
		reservation := &domain.Reservation{
			BusinessID: req.BusinessID,
			UserID:     req.UserID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			PartySize:  req.PartySize,
			Status:     domain.StatusPending,
			// Денормализация данных заведения и пользователя
			BusinessName: business.Name,
			UserName:     user.DisplayName,
			ContactPhone: contactOrDefault(req.ContactPhone, user.Phone),
			ContactEmail: contactOrDefault(req.ContactEmail, user.Email),
			Notes:        req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 6. Публикуем событие для внешних наблюдателей (уведомления и т.п.)
	uc.events.Publish(notify.Event{
		Type:          notify.EventReservationCreated,
		ReservationID: result.ID,
		BusinessID:    result.BusinessID,
		UserID:        result.UserID,
		NewStatus:     result.Status,
		OccurredAt:    now,
	})

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		BusinessID:   result.BusinessID,
		UserID:       result.UserID,
		Date:         result.Date,
		StartTime:    result.StartTime,
		PartySize:    result.PartySize,
		Status:       string(result.Status),
		BusinessName: result.BusinessName,
		UserName:     result.UserName,
		ContactPhone: result.ContactPhone,
		ContactEmail: result.ContactEmail,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// contactOrDefault возвращает контакт из запроса, а при его отсутствии —
// контакт из профиля пользователя
func contactOrDefault(fromRequest, fromProfile *string) *string {
	if fromRequest != nil {
		return fromRequest
	}
	return fromProfile
}
