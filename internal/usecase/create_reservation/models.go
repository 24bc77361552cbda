package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID   int64            // ID заведения
	UserID       int64            // ID пользователя
	Date         time.Time        // Дата бронирования (без времени)
	StartTime    types.TimeString // Время слота (например, "19:00")
	PartySize    int              // Размер компании
	ContactPhone *string          // Контактный телефон (опционально)
	ContactEmail *string          // Контактный email (опционально)
	Notes        *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64            // ID созданного бронирования
	BusinessID int64            // ID заведения
	UserID     int64            // ID пользователя
	Date       time.Time        // Дата бронирования
	StartTime  types.TimeString // Время слота
	PartySize  int              // Размер компании
	Status     string           // Статус бронирования (pending при создании)

	// Денормализованные данные
	BusinessName string  // Название заведения
	UserName     string  // Имя пользователя
	ContactPhone *string // Контактный телефон
	ContactEmail *string // Контактный email
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
