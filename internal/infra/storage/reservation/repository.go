package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var reservationColumns = []string{
	"id",
	"business_id",
	"user_id",
	"reservation_date",
	"start_time",
	"party_size",
	"status",
	"business_name",
	"user_name",
	"contact_phone",
	"contact_email",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её — при
// создании с проверкой вместимости слота Create обязан выполняться в той
// же сериализуемой транзакции, что и CountActiveAtSlot.
func (r *Repository) Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"business_id",
			"user_id",
			"reservation_date",
			"start_time",
			"party_size",
			"status",
			"business_name",
			"user_name",
			"contact_phone",
			"contact_email",
			"notes",
		).
		Values(
			rsv.BusinessID,
			rsv.UserID,
			rsv.Date,
			rsv.StartTime,
			rsv.PartySize,
			rsv.Status,
			rsv.BusinessName,
			rsv.UserName,
			rsv.ContactPhone,
			rsv.ContactEmail,
			rsv.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rsv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rsv.CreatedAt = createdAt.Time
	rsv.UpdatedAt = updatedAt.Time

	return rsv, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rsv, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return rsv, nil
}

// CountActiveAtSlot подсчитывает активные бронирования (pending, confirmed)
// на слот (business_id, reservation_date, start_time).
//
// Внутри транзакции выбирает строки с FOR UPDATE и считает их на стороне
// приложения: COUNT(*) нельзя совместить с блокировкой строк, а блокировка
// нужна, чтобы параллельное создание бронирований на один слот не превысило
// вместимость. Вне транзакции выполняется обычный COUNT.
func (r *Repository) CountActiveAtSlot(ctx context.Context, businessID int64, date time.Time, startTime types.TimeString) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	slotCondition := squirrel.Eq{
		"business_id":      businessID,
		"reservation_date": date,
		"start_time":       startTime,
		"status":           activeStatusStrings,
	}

	if !dbmetrics.IsInTransaction(ctx) {
		query, args, err := psqlbuilder.Select("COUNT(*)").
			From("reservations").
			Where(slotCondition).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: CountActiveAtSlot - build count query: %v", ErrBuildQuery, err)
		}

		var count int
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return 0, fmt.Errorf("%w: CountActiveAtSlot - scan count: %v", ErrScanRow, err)
		}
		return count, nil
	}

	query, args, err := psqlbuilder.Select("id").
		From("reservations").
		Where(slotCondition).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveAtSlot - build locking query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveAtSlot - execute locking query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountActiveAtSlot - scan id: %v", ErrScanRow, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountActiveAtSlot - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetWithFilter получает бронирования с фильтрацией по заведению,
// пользователю и статусу. Сортировка: сначала новые (по дате и времени).
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("reservation_date DESC, start_time DESC")

	if filter.BusinessID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"business_id": *filter.BusinessID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования и updated_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var rsv domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rsv.ID,
		&rsv.BusinessID,
		&rsv.UserID,
		&rsv.Date,
		&rsv.StartTime,
		&rsv.PartySize,
		&rsv.Status,
		&rsv.BusinessName,
		&rsv.UserName,
		&rsv.ContactPhone,
		&rsv.ContactEmail,
		&rsv.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rsv.CreatedAt = createdAt.Time
	rsv.UpdatedAt = updatedAt.Time

	return &rsv, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, rsv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
