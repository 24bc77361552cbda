package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	CountActiveAtSlot(ctx context.Context, businessID int64, date time.Time, startTime types.TimeString) (int, error)
}

// ConfigRepository интерфейс репозитория конфигурации доступности
type ConfigRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
