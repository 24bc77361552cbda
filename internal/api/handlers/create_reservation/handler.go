package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgBusinessNotFound     = "заведение не найдено"
	msgUserNotFound         = "пользователь не найден"
	msgDateInPast           = "дата бронирования уже прошла"
	msgDayUnavailable       = "заведение не принимает бронирования в этот день недели"
	msgDateUnavailable      = "заведение не принимает бронирования в эту дату"
	msgTimeUnavailable      = "выбранное время недоступно для бронирования"
	msgPartySizeUnavailable = "заведение не принимает компании такого размера"
	msgSlotFull             = "все места на выбранное время заняты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrBusinessNotFound):
			h.logger.Warn("POST /reservations - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrDayUnavailable):
			h.logger.Warn("POST /reservations - Day unavailable: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDayUnavailable)

		case errors.Is(err, createReservation.ErrDateUnavailable):
			h.logger.Warn("POST /reservations - Date unavailable: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, createReservation.ErrTimeUnavailable):
			h.logger.Warn("POST /reservations - Time unavailable: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgTimeUnavailable)

		case errors.Is(err, createReservation.ErrPartySizeUnavailable):
			h.logger.Warn("POST /reservations - Party size unavailable: user_id=%d, business_id=%d", userID, req.BusinessID)
			handlers.RespondBadRequest(w, msgPartySizeUnavailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, business_id=%d, error=%v",
				userID, req.BusinessID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, business_id=%d, error=%v",
				userID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, business_id=%d",
		result.ID, userID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
