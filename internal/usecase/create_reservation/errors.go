package create_reservation

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrBusinessNotFound возвращается, когда заведение не найдено
	ErrBusinessNotFound = errors.New("create_reservation: business not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrDayUnavailable возвращается, когда заведение не принимает бронирования в этот день недели
	ErrDayUnavailable = errors.New("create_reservation: day is unavailable")

	// ErrDateUnavailable возвращается, когда дата явно исключена (праздник, закрытие)
	ErrDateUnavailable = errors.New("create_reservation: date is unavailable")

	// ErrTimeUnavailable возвращается, когда время не входит в действующий набор слотов
	ErrTimeUnavailable = errors.New("create_reservation: time is unavailable")

	// ErrPartySizeUnavailable возвращается, когда заведение не вмещает компанию такого размера
	ErrPartySizeUnavailable = errors.New("create_reservation: party size is unavailable")

	// ErrSlotFull возвращается, когда слот уже заполнен до вместимости
	ErrSlotFull = errors.New("create_reservation: time slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// denyError конвертирует причину отказа в типизированную ошибку usecase
func denyError(reason domain.DenyReason) error {
	switch reason {
	case domain.DenyDayUnavailable:
		return ErrDayUnavailable
	case domain.DenyDateUnavailable:
		return ErrDateUnavailable
	case domain.DenyTimeUnavailable:
		return ErrTimeUnavailable
	case domain.DenyPartySizeUnavailable:
		return ErrPartySizeUnavailable
	case domain.DenyTimeFull:
		return ErrSlotFull
	default:
		return ErrInternal
	}
}
