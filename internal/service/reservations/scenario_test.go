package reservations

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	configRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/availability"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ReservationService/internal/notify"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// memReservationRepo хранит бронирования в памяти и обслуживает одновременно
// usecase создания и сервис жизненного цикла.
type memReservationRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{items: make(map[int64]*domain.Reservation)}
}

func (m *memReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	stored := *rsv
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.items[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (m *memReservationRepo) CountActiveAtSlot(_ context.Context, businessID int64, date time.Time, startTime types.TimeString) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, r := range m.items {
		if r.BusinessID == businessID && r.Date.Equal(date) && r.StartTime == startTime && r.IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *memReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	out := *r
	return &out, nil
}

func (m *memReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Reservation, 0)
	for _, r := range m.items {
		if filter.BusinessID != nil && r.BusinessID != *filter.BusinessID {
			continue
		}
		if filter.UserID != nil && r.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out := *r
		result = append(result, &out)
	}
	return result, nil
}

func (m *memReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

type notFoundConfigRepo struct{}

func (notFoundConfigRepo) GetByBusinessID(context.Context, int64) (*domain.AvailabilityConfig, error) {
	return nil, configRepo.ErrConfigNotFound
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type scenarioUserClient struct{}

func (scenarioUserClient) GetUser(_ context.Context, id int64) (*userservice.User, error) {
	return &userservice.User{ID: id, DisplayName: "Иван Петров"}, nil
}

// nextWeekday возвращает ближайшую будущую дату с указанным днем недели.
func nextWeekday(day time.Weekday) time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

type scenarioEnv struct {
	repo    *memReservationRepo
	creator *createReservation.UseCase
	svc     *Service
	events  *fakeEvents
}

func newScenarioEnv() *scenarioEnv {
	repo := newMemReservationRepo()
	business := &fakeBusinessClient{
		business: &businessservice.Business{ID: 1, Name: "Ресторан «Тест»", OwnerID: ownerID},
	}
	events := &fakeEvents{}

	creator := createReservation.NewUseCase(
		repo, notFoundConfigRepo{}, business, scenarioUserClient{},
		passthroughTxManager{}, events, nopLogger{},
	)
	svc := NewService(repo, business, events, nopLogger{})

	return &scenarioEnv{repo: repo, creator: creator, svc: svc, events: events}
}

func (e *scenarioEnv) create(t *testing.T, userID int64, date time.Time, slot types.TimeString) (*createReservation.Response, error) {
	t.Helper()
	return e.creator.Execute(context.Background(), &createReservation.Request{
		BusinessID: 1,
		UserID:     userID,
		Date:       date,
		StartTime:  slot,
		PartySize:  4,
	})
}

func TestScenario_CancelFreesCapacity(t *testing.T) {
	env := newScenarioEnv()
	wednesday := nextWeekday(time.Wednesday)

	// Заполняем слот до дефолтной вместимости
	var last *createReservation.Response
	for i := 0; i < domain.DefaultSlotCapacity; i++ {
		resp, err := env.create(t, int64(10+i), wednesday, "19:00")
		require.NoError(t, err)
		last = resp
	}

	// Слот заполнен
	_, err := env.create(t, 50, wednesday, "19:00")
	require.ErrorIs(t, err, createReservation.ErrSlotFull)

	// Отмена освобождает место
	_, err = env.svc.Transition(context.Background(), last.ID,
		transitionReq(last.UserID, "customer", "cancel"))
	require.NoError(t, err)

	resp, err := env.create(t, 50, wednesday, "19:00")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestScenario_FullLifecycle(t *testing.T) {
	env := newScenarioEnv()
	friday := nextWeekday(time.Friday)

	created, err := env.create(t, customerID, friday, "19:00")
	require.NoError(t, err)

	// Владелец подтверждает
	change, err := env.svc.Transition(context.Background(), created.ID,
		transitionReq(ownerID, "owner", "confirm"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), change.NewStatus)

	// Владелец завершает визит
	change, err = env.svc.Transition(context.Background(), created.ID,
		transitionReq(ownerID, "owner", "complete"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), change.NewStatus)

	// Завершенное бронирование нельзя отменить
	_, err = env.svc.Transition(context.Background(), created.ID,
		transitionReq(customerID, "customer", "cancel"))
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// Событий три: создание и два перехода
	assert.Len(t, env.events.events, 3)
	assert.Equal(t, notify.EventReservationCreated, env.events.events[0].Type)
	assert.Equal(t, notify.EventStatusChanged, env.events.events[1].Type)
}

func TestScenario_DefaultWeekSchedule(t *testing.T) {
	env := newScenarioEnv()

	// Понедельник-суббота открыты по дефолтным правилам
	for _, day := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	} {
		_, err := env.create(t, customerID, nextWeekday(day), "12:00")
		assert.NoError(t, err, "weekday %s", day)
	}

	// Воскресенье закрыто
	_, err := env.create(t, customerID, nextWeekday(time.Sunday), "12:00")
	assert.ErrorIs(t, err, createReservation.ErrDayUnavailable)

	// История пользователя содержит все шесть созданных бронирований
	history, err := env.svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:  customerID,
		ActorID: customerID,
	})
	require.NoError(t, err)
	assert.Len(t, history.Reservations, 6)
}
