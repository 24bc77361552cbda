package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Repository репозиторий для работы с конфигурацией доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает конфигурацию доступности заведения.
// Отсутствие конфигурации — не ошибка уровня движка: вызывающая сторона
// подставляет дефолтные правила (см. domain.DefaultAvailabilityConfig).
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_id",
		"available_days",
		"time_slots",
		"max_party_sizes",
		"unavailable_dates",
		"special_schedules",
		"slot_capacity",
		"created_at",
		"updated_at",
	).
		From("availability_configs").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg              domain.AvailabilityConfig
		days             []string
		slots            []string
		partySizes       []int64
		unavailableDates []string
		schedulesJSON    []byte
		createdAt        sql.NullTime
		updatedAt        sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.BusinessID,
		pq.Array(&days),
		pq.Array(&slots),
		pq.Array(&partySizes),
		pq.Array(&unavailableDates),
		&schedulesJSON,
		&cfg.SlotCapacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan config: %v", ErrScanRow, err)
	}

	cfg.AvailableDays = make([]domain.Weekday, len(days))
	for i, d := range days {
		cfg.AvailableDays[i] = domain.Weekday(d)
	}

	cfg.TimeSlots = make([]types.TimeString, len(slots))
	for i, s := range slots {
		cfg.TimeSlots[i] = types.TimeString(s)
	}

	cfg.MaxPartySizes = make([]int, len(partySizes))
	for i, p := range partySizes {
		cfg.MaxPartySizes[i] = int(p)
	}

	cfg.UnavailableDates = unavailableDates

	schedules, err := decodeSchedules(schedulesJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - special schedules: %v", ErrDecodeConfig, err)
	}
	cfg.SpecialSchedules = schedules

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию заведения (одна строка на business_id)
func (r *Repository) Upsert(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make([]string, len(cfg.AvailableDays))
	for i, d := range cfg.AvailableDays {
		days[i] = string(d)
	}

	slots := make([]string, len(cfg.TimeSlots))
	for i, s := range cfg.TimeSlots {
		slots[i] = string(s)
	}

	partySizes := make([]int64, len(cfg.MaxPartySizes))
	for i, p := range cfg.MaxPartySizes {
		partySizes[i] = int64(p)
	}

	schedulesJSON, err := encodeSchedules(cfg.SpecialSchedules)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - special schedules: %v", ErrEncodeConfig, err)
	}

	query, args, err := psqlbuilder.Insert("availability_configs").
		Columns(
			"business_id",
			"available_days",
			"time_slots",
			"max_party_sizes",
			"unavailable_dates",
			"special_schedules",
			"slot_capacity",
		).
		Values(
			cfg.BusinessID,
			pq.Array(days),
			pq.Array(slots),
			pq.Array(partySizes),
			pq.Array(cfg.UnavailableDates),
			schedulesJSON,
			cfg.SlotCapacity,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			available_days = EXCLUDED.available_days,
			time_slots = EXCLUDED.time_slots,
			max_party_sizes = EXCLUDED.max_party_sizes,
			unavailable_dates = EXCLUDED.unavailable_dates,
			special_schedules = EXCLUDED.special_schedules,
			slot_capacity = EXCLUDED.slot_capacity,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func encodeSchedules(schedules map[string][]types.TimeString) ([]byte, error) {
	if schedules == nil {
		schedules = map[string][]types.TimeString{}
	}
	return json.Marshal(schedules)
}

func decodeSchedules(data []byte) (map[string][]types.TimeString, error) {
	schedules := map[string][]types.TimeString{}
	if len(data) == 0 {
		return schedules, nil
	}
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
