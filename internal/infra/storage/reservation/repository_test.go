package reservation

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "business_id", "user_id", "reservation_date", "start_time",
		"party_size", "status", "business_name", "user_name",
		"contact_phone", "contact_email", "notes", "created_at", "updated_at",
	})
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(
			int64(1), int64(2), testDate, "19:00", 4, "pending",
			"Ресторан «Тест»", "Иван Петров", nil, nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(101), testNow, testNow))

	created, err := repo.Create(context.Background(), &domain.Reservation{
		BusinessID:   1,
		UserID:       2,
		Date:         testDate,
		StartTime:    "19:00",
		PartySize:    4,
		Status:       domain.StatusPending,
		BusinessName: "Ресторан «Тест»",
		UserName:     "Иван Петров",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Reservation{
		BusinessID: 1, UserID: 2, Date: testDate, StartTime: "19:00",
		PartySize: 4, Status: domain.StatusPending,
		BusinessName: "x", UserName: "y",
	})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, business_id, user_id, reservation_date, start_time, party_size, status, business_name, user_name, contact_phone, contact_email, notes, created_at, updated_at FROM reservations WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(reservationRows().AddRow(
			int64(42), int64(1), int64(2), testDate, "19:00",
			4, "pending", "Ресторан «Тест»", "Иван Петров",
			nil, nil, nil, testNow, testNow,
		))

	rsv, err := repo.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rsv.ID)
	assert.Equal(t, domain.StatusPending, rsv.Status)
	assert.Equal(t, "19:00", rsv.StartTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM reservations").
		WithArgs(int64(42)).
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCountActiveAtSlot(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Вне транзакции — обычный COUNT по активным статусам
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations")).
		WithArgs(int64(1), testDate, "19:00", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveAtSlot(context.Background(), 1, testDate, "19:00")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	status := domain.StatusConfirmed
	userID := int64(2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE user_id = $1 AND status = $2 ORDER BY reservation_date DESC, start_time DESC")).
		WithArgs(userID, "confirmed").
		WillReturnRows(reservationRows().
			AddRow(int64(43), int64(1), userID, testDate, "20:00",
				2, "confirmed", "Ресторан «Тест»", "Иван Петров",
				nil, nil, nil, testNow, testNow).
			AddRow(int64(42), int64(1), userID, testDate, "19:00",
				4, "confirmed", "Ресторан «Тест»", "Иван Петров",
				nil, nil, nil, testNow, testNow))

	reservations, err := repo.GetWithFilter(context.Background(), domain.ReservationsFilter{
		UserID: &userID,
		Status: &status,
	})

	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, int64(43), reservations[0].ID)
	assert.Equal(t, int64(42), reservations[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	businessID := int64(1)

	mock.ExpectQuery("FROM reservations").
		WithArgs(businessID).
		WillReturnRows(reservationRows())

	reservations, err := repo.GetWithFilter(context.Background(), domain.ReservationsFilter{
		BusinessID: &businessID,
	})

	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("confirmed", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE reservations").
		WithArgs("canceled", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusCanceled)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
