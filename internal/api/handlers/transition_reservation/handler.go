package transition_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректное действие или роль"
	msgNotFound             = "бронирование не найдено"
	msgBusinessNotFound     = "заведение не найдено"
	msgForbidden            = "доступ запрещен"
	msgIllegalTransition    = "переход статуса недопустим"
	msgDatePassed           = "дата бронирования уже прошла"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/transition
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/transition - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/transition - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Декодируем body
	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/transition - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выполняем переход статуса
	result, err := h.service.Transition(r.Context(), reservationID, req.ToServiceRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/transition - Invalid input: reservation_id=%d, action=%s, role=%s",
				reservationID, req.Action, req.ActorRole)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/transition - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrBusinessNotFound):
			h.logger.Warn("PATCH /reservations/{id}/transition - Business not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/transition - Access denied: reservation_id=%d, actor_id=%d",
				reservationID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrIllegalTransition):
			h.logger.Warn("PATCH /reservations/{id}/transition - Illegal transition: reservation_id=%d, action=%s",
				reservationID, req.Action)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, reservations.ErrDatePassed):
			h.logger.Warn("PATCH /reservations/{id}/transition - Date passed: reservation_id=%d, action=%s",
				reservationID, req.Action)
			handlers.RespondBadRequest(w, msgDatePassed)

		default:
			h.logger.Error("PATCH /reservations/{id}/transition - Failed to transition: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/transition - Transition applied: reservation_id=%d, %s -> %s",
		reservationID, result.OldStatus, result.NewStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}
