package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// 2025-10-15 is a Wednesday.
var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

type fakeReservationRepo struct {
	activeCount int
	countErr    error
}

func (f *fakeReservationRepo) CountActiveAtSlot(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (int, error) {
	return f.activeCount, f.countErr
}

type fakeConfigRepo struct {
	cfg *domain.AvailabilityConfig
	err error
}

func (f *fakeConfigRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.AvailabilityConfig, error) {
	return f.cfg, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		BusinessID: 1,
		Date:       testDate,
		StartTime:  "19:00",
		PartySize:  4,
	}
}

func TestExecute_Available(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.Reason)
}

func TestExecute_DeniedWithReason(t *testing.T) {
	// Слот заполнен до вместимости — отказ с причиной, а не ошибка
	uc := NewUseCase(
		&fakeReservationRepo{activeCount: domain.DefaultSlotCapacity},
		&fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, domain.DenyTimeFull, resp.Reason)
}

func TestExecute_UsesStoredConfig(t *testing.T) {
	cfg := domain.DefaultAvailabilityConfig()
	cfg.TimeSlots = []types.TimeString{"10:00"}
	uc := NewUseCase(&fakeReservationRepo{}, &fakeConfigRepo{cfg: cfg}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, domain.DenyTimeUnavailable, resp.Reason)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeConfigRepo{err: configRepo.ErrConfigNotFound}, nopLogger{})

	req := validRequest()
	req.PartySize = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "7pm"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorsSurface(t *testing.T) {
	uc := NewUseCase(
		&fakeReservationRepo{countErr: errors.New("connection reset")},
		&fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewUseCase(
		&fakeReservationRepo{},
		&fakeConfigRepo{err: errors.New("connection reset")},
		nopLogger{},
	)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
