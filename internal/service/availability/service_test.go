package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

const ownerID int64 = 7

type fakeConfigRepo struct {
	cfg       *domain.AvailabilityConfig
	getErr    error
	upsertErr error
	upserted  *domain.AvailabilityConfig
}

func (f *fakeConfigRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.AvailabilityConfig, error) {
	return f.cfg, f.getErr
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = cfg
	return cfg, nil
}

type fakeBusinessClient struct {
	business *businessservice.Business
	err      error
}

func (f *fakeBusinessClient) GetBusiness(_ context.Context, _ int64) (*businessservice.Business, error) {
	return f.business, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeConfigRepo, *fakeBusinessClient) {
	repo := &fakeConfigRepo{}
	business := &fakeBusinessClient{
		business: &businessservice.Business{ID: 1, Name: "Ресторан «Тест»", OwnerID: ownerID},
	}
	return NewService(repo, business, nopLogger{}), repo, business
}

func validUpdateRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		ActorID:       ownerID,
		AvailableDays: []string{"monday", "friday"},
		TimeSlots:     []string{"12:00", "19:00"},
		MaxPartySizes: []int{2, 4},
	}
}

func TestGetConfig(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.cfg = domain.DefaultAvailabilityConfig()
	repo.cfg.BusinessID = 1

	resp, err := svc.GetConfig(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BusinessID)
	assert.Equal(t, domain.DefaultSlotCapacity, resp.SlotCapacity)
}

func TestGetConfig_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.getErr = configRepo.ErrConfigNotFound

	_, err := svc.GetConfig(context.Background(), 1)

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpdateConfig_Success(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.UpdateConfig(context.Background(), 1, validUpdateRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "friday"}, resp.AvailableDays)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(1), repo.upserted.BusinessID)
	// Не заданная в запросе вместимость остается дефолтной
	assert.Equal(t, domain.DefaultSlotCapacity, repo.upserted.SlotCapacity)
}

func TestUpdateConfig_OnlyOwner(t *testing.T) {
	svc, repo, _ := newTestService()
	req := validUpdateRequest()
	req.ActorID = 99

	_, err := svc.UpdateConfig(context.Background(), 1, req)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.upserted)
}

func TestUpdateConfig_BusinessNotFound(t *testing.T) {
	svc, _, business := newTestService()
	business.business = nil
	business.err = businessservice.ErrBusinessNotFound

	_, err := svc.UpdateConfig(context.Background(), 1, validUpdateRequest())

	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestUpdateConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateConfigRequest)
	}{
		{"empty days", func(r *models.UpdateConfigRequest) { r.AvailableDays = nil }},
		{"unknown weekday", func(r *models.UpdateConfigRequest) { r.AvailableDays = []string{"someday"} }},
		{"empty slots", func(r *models.UpdateConfigRequest) { r.TimeSlots = nil }},
		{"malformed slot", func(r *models.UpdateConfigRequest) { r.TimeSlots = []string{"25:00"} }},
		{"empty party sizes", func(r *models.UpdateConfigRequest) { r.MaxPartySizes = nil }},
		{"zero party size", func(r *models.UpdateConfigRequest) { r.MaxPartySizes = []int{0} }},
		{"bad unavailable date", func(r *models.UpdateConfigRequest) { r.UnavailableDates = []string{"15.10.2025"} }},
		{"bad schedule date", func(r *models.UpdateConfigRequest) {
			r.SpecialSchedules = map[string][]string{"next friday": {"12:00"}}
		}},
		{"bad schedule slot", func(r *models.UpdateConfigRequest) {
			r.SpecialSchedules = map[string][]string{"2025-10-15": {"noon"}}
		}},
		{"zero capacity", func(r *models.UpdateConfigRequest) { r.SlotCapacity = ptr.Ptr(0) }},
		{"capacity too large", func(r *models.UpdateConfigRequest) { r.SlotCapacity = ptr.Ptr(101) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.UpdateConfig(context.Background(), 1, req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateConfig_RepositoryErrorSurfaces(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.upsertErr = errors.New("connection reset")

	_, err := svc.UpdateConfig(context.Background(), 1, validUpdateRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
