package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	businessClient "github.com/m04kA/SMC-ReservationService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-ReservationService/internal/notify"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Service сервис жизненного цикла и выборки бронирований
type Service struct {
	reservationRepo ReservationRepository
	businessClient  BusinessServiceClient
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	businessClient BusinessServiceClient,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		businessClient:  businessClient,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Transition выполняет переход статуса бронирования.
// Порядок проверок: существование -> корректность действия и роли ->
// машина состояний -> личность актора -> дата. Отклоненный переход —
// явная ошибка, а не тихий no-op, поэтому повторная отмена вернет
// ErrIllegalTransition.
func (s *Service) Transition(ctx context.Context, reservationID int64, req *models.TransitionRequest) (*models.StatusChangeResponse, error) {
	s.logger.Info("Transition: reservation=%d, action=%s, actor=%d (%s)",
		reservationID, req.Action, req.ActorID, req.ActorRole)

	// Валидируем действие и роль
	action, err := domain.ParseTransitionAction(req.Action)
	if err != nil {
		s.logger.Warn("Transition: invalid action=%s for reservation=%d", req.Action, reservationID)
		return nil, fmt.Errorf("%w: invalid action %q", ErrInvalidInput, req.Action)
	}

	role, err := domain.ParseActorRole(req.ActorRole)
	if err != nil {
		s.logger.Warn("Transition: invalid actor role=%s for reservation=%d", req.ActorRole, reservationID)
		return nil, fmt.Errorf("%w: invalid actor role %q", ErrInvalidInput, req.ActorRole)
	}

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Transition: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Transition: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	// Проверяем переход по машине состояний
	target := action.TargetStatus()
	if !domain.CanTransition(reservation.Status, target) {
		s.logger.Warn("Transition: illegal transition %s -> %s for reservation=%d",
			reservation.Status, target, reservationID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, reservation.Status, target)
	}

	// Проверяем, что роль вправе выполнить действие
	if !action.AllowedFor(role) {
		s.logger.Warn("Transition: role=%s may not perform action=%s on reservation=%d",
			role, action, reservationID)
		return nil, fmt.Errorf("%w: role %s may not %s", ErrAccessDenied, role, action)
	}

	// Проверяем личность актора: заголовку роли не доверяем
	if err := s.checkActorIdentity(ctx, reservation, req.ActorID, role); err != nil {
		return nil, err
	}

	// Проверяем дату: confirm и cancel недоступны для прошедших бронирований.
	// Дата самого дня бронирования действует до конца дня.
	if action.RequiresFutureDate() && domain.IsDatePast(reservation.Date, s.timeProvider.Now()) {
		s.logger.Warn("Transition: reservation=%d date=%s has passed, action=%s rejected",
			reservationID, reservation.Date.Format(domain.DateFormat), action)
		return nil, ErrDatePassed
	}

	// Применяем переход
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, target); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Transition: reservation id=%d not found during update", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Transition: repository error updating reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Transition: reservation=%d transitioned %s -> %s",
		reservationID, reservation.Status, target)

	// Публикуем результат перехода для внешних наблюдателей
	s.events.Publish(notify.Event{
		Type:          notify.EventStatusChanged,
		ReservationID: reservation.ID,
		BusinessID:    reservation.BusinessID,
		UserID:        reservation.UserID,
		OldStatus:     reservation.Status,
		NewStatus:     target,
		OccurredAt:    s.timeProvider.Now(),
	})

	return &models.StatusChangeResponse{
		ReservationID: reservationID,
		OldStatus:     string(reservation.Status),
		NewStatus:     string(target),
	}, nil
}

// GetByID получает бронирование по ID.
// Доступно создавшему его пользователю и владельцу заведения.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for actor=%d", id, actorID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if reservation.UserID != actorID {
		if err := s.checkOwnerAccess(ctx, reservation.BusinessID, actorID); err != nil {
			s.logger.Warn("GetByID: access denied for actor=%d to reservation id=%d", actorID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя.
// Пользователь видит только собственную историю.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, actor=%d", req.UserID, req.ActorID)

	if req.UserID != req.ActorID {
		s.logger.Warn("GetUserReservations: actor=%d may not view reservations of user=%d", req.ActorID, req.UserID)
		return nil, ErrAccessDenied
	}

	filter := domain.ReservationsFilter{UserID: ptr.Ptr(req.UserID)}
	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d",
		len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetBusinessReservations получает бронирования заведения.
// Доступно только владельцу заведения.
func (s *Service) GetBusinessReservations(ctx context.Context, req *models.GetBusinessReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetBusinessReservations: fetching reservations for business=%d, actor=%d",
		req.BusinessID, req.ActorID)

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.ActorID); err != nil {
		return nil, err
	}

	filter := domain.ReservationsFilter{BusinessID: ptr.Ptr(req.BusinessID)}
	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetBusinessReservations: invalid status=%s for business=%d", *req.Status, req.BusinessID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessReservations: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessReservations: successfully fetched %d reservations for business=%d",
		len(reservations), req.BusinessID)
	return models.FromDomainReservationList(reservations), nil
}

// Вспомогательные методы

// checkActorIdentity проверяет, что актор действительно тот, за кого себя выдает:
// customer должен быть автором бронирования, owner — владельцем заведения
func (s *Service) checkActorIdentity(ctx context.Context, reservation *domain.Reservation, actorID int64, role domain.ActorRole) error {
	switch role {
	case domain.RoleCustomer:
		if reservation.UserID != actorID {
			s.logger.Warn("checkActorIdentity: actor=%d is not the customer of reservation=%d",
				actorID, reservation.ID)
			return fmt.Errorf("%w: actor is not the reservation customer", ErrAccessDenied)
		}
		return nil
	case domain.RoleOwner:
		return s.checkOwnerAccess(ctx, reservation.BusinessID, actorID)
	default:
		return fmt.Errorf("%w: unknown actor role", ErrAccessDenied)
	}
}

// checkOwnerAccess проверяет, что пользователь является владельцем заведения
func (s *Service) checkOwnerAccess(ctx context.Context, businessID int64, actorID int64) error {
	business, err := s.businessClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, businessClient.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrInternal, err)
	}

	if !business.IsOwner(actorID) {
		s.logger.Warn("checkOwnerAccess: actor=%d is not the owner of business=%d", actorID, businessID)
		return fmt.Errorf("%w: actor is not the business owner", ErrAccessDenied)
	}

	return nil
}
