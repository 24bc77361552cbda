package availability

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var testNow = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGetByBusinessID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM availability_configs WHERE business_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"business_id", "available_days", "time_slots", "max_party_sizes",
			"unavailable_dates", "special_schedules", "slot_capacity",
			"created_at", "updated_at",
		}).AddRow(
			int64(1),
			[]byte(`{monday,tuesday,friday}`),
			[]byte(`{12:00,19:00}`),
			[]byte(`{2,4,6}`),
			[]byte(`{2025-12-31}`),
			[]byte(`{"2025-10-15":["10:00","11:00"]}`),
			5,
			testNow, testNow,
		))

	cfg, err := repo.GetByBusinessID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.BusinessID)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Tuesday, domain.Friday}, cfg.AvailableDays)
	assert.Equal(t, []types.TimeString{"12:00", "19:00"}, cfg.TimeSlots)
	assert.Equal(t, []int{2, 4, 6}, cfg.MaxPartySizes)
	assert.Equal(t, []string{"2025-12-31"}, cfg.UnavailableDates)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, cfg.SpecialSchedules["2025-10-15"])
	assert.Equal(t, 5, cfg.SlotCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBusinessID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM availability_configs").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"business_id", "available_days", "time_slots", "max_party_sizes",
			"unavailable_dates", "special_schedules", "slot_capacity",
			"created_at", "updated_at",
		}))

	_, err := repo.GetByBusinessID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO availability_configs")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(testNow, testNow))

	cfg := &domain.AvailabilityConfig{
		BusinessID:    1,
		AvailableDays: []domain.Weekday{domain.Monday, domain.Friday},
		TimeSlots:     []types.TimeString{"12:00", "19:00"},
		MaxPartySizes: []int{2, 4},
		SlotCapacity:  3,
	}

	updated, err := repo.Upsert(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, testNow, updated.CreatedAt)
	assert.Equal(t, testNow, updated.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
