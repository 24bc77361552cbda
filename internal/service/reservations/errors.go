package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrBusinessNotFound возвращается, когда заведение не найдено
	ErrBusinessNotFound = errors.New("reservations: business not found")

	// ErrAccessDenied возвращается, когда актор не вправе выполнить действие
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrIllegalTransition возвращается, когда запрошенный переход статуса
	// не разрешен машиной состояний
	ErrIllegalTransition = errors.New("reservations: illegal status transition")

	// ErrDatePassed возвращается, когда дата бронирования уже прошла
	ErrDatePassed = errors.New("reservations: reservation date has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
