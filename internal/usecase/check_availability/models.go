package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	BusinessID int64            // ID заведения
	Date       time.Time        // Дата бронирования
	StartTime  types.TimeString // Время слота
	PartySize  int              // Размер компании
}

// Response результат проверки доступности.
// Reason заполнен только при отказе.
type Response struct {
	Allowed bool
	Reason  domain.DenyReason
}
