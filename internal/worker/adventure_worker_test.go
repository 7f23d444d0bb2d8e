package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/event"
	"github.com/osse101/Adventure_Go/internal/session"
	"github.com/osse101/Adventure_Go/internal/testing/leaktest"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context, groupID, starterID, monsterName string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, starterID, monsterName)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *MockSessionService) Join(ctx context.Context, groupID, userID string, action domain.Action) (*domain.Session, error) {
	args := m.Called(ctx, groupID, userID, action)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *MockSessionService) Leave(ctx context.Context, groupID, userID string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, userID)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *MockSessionService) React(ctx context.Context, groupID, marker string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, marker)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, groupID string) (*domain.Session, error) {
	args := m.Called(ctx, groupID)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *MockSessionService) Active(ctx context.Context) []*domain.Session {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*domain.Session)
	return s
}

func (m *MockSessionService) Resolve(ctx context.Context, groupID string, sessionID uuid.UUID) (*session.Result, error) {
	args := m.Called(ctx, groupID, sessionID)
	r, _ := args.Get(0).(*session.Result)
	return r, args.Error(1)
}

func (m *MockSessionService) Sweep(ctx context.Context, now time.Time) int {
	args := m.Called(ctx, now)
	return args.Int(0)
}

func TestAdventureWorker_ResolvesAtDeadline(t *testing.T) {
	svc := new(MockSessionService)
	id := uuid.New()
	done := make(chan struct{})
	svc.On("Resolve", mock.Anything, "g1", id).
		Run(func(mock.Arguments) { close(done) }).
		Return(&session.Result{}, nil).Once()

	w := NewAdventureWorker(svc)
	w.Schedule("g1", id, time.Now().Add(20*time.Millisecond))
	assert.Equal(t, 1, w.Pending())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("resolution never ran")
	}
	require.NoError(t, w.Shutdown(context.Background()))
	assert.Zero(t, w.Pending())
	svc.AssertExpectations(t)
}

func TestAdventureWorker_PastDeadlineRunsNow(t *testing.T) {
	svc := new(MockSessionService)
	id := uuid.New()
	svc.On("Resolve", mock.Anything, "g1", id).Return(nil, domain.ErrSessionNotFound).Once()

	w := NewAdventureWorker(svc)
	w.Schedule("g1", id, time.Now().Add(-time.Second))

	require.NoError(t, w.Shutdown(context.Background()))
	svc.AssertExpectations(t)
}

func TestAdventureWorker_RescheduleReplacesTimer(t *testing.T) {
	svc := new(MockSessionService)
	w := NewAdventureWorker(svc)
	id := uuid.New()

	w.Schedule("g1", id, time.Now().Add(time.Hour))
	w.Schedule("g1", id, time.Now().Add(2*time.Hour))
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	svc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdventureWorker_Events(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	svc := new(MockSessionService)
	w := NewAdventureWorker(svc)
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	m := domain.ScaledMonster{Template: domain.Monster{Name: "Goblin"}}
	s := domain.NewSession("g1", "alice", m, time.Hour, time.Now())

	require.NoError(t, bus.Publish(context.Background(), event.NewAdventureStartedEvent(s)))
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, bus.Publish(context.Background(), event.NewAdventureExpiredEvent(s.ID, "g1", session.ReasonStale)))
	assert.Zero(t, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	checker.Check(2)
}

func TestAdventureWorker_StartReschedulesOpenSessions(t *testing.T) {
	svc := new(MockSessionService)
	open := domain.NewSession("g1", "alice", domain.ScaledMonster{}, time.Hour, time.Now())
	resolving := domain.NewSession("g2", "bob", domain.ScaledMonster{}, time.Hour, time.Now())
	resolving.State = domain.SessionResolving
	svc.On("Active", mock.Anything).Return([]*domain.Session{open, resolving})

	w := NewAdventureWorker(svc)
	w.Start()
	assert.Equal(t, 1, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	require.NoError(t, w.Shutdown(context.Background()), "shutdown is idempotent")
}

func TestSweepJob(t *testing.T) {
	svc := new(MockSessionService)
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	svc.On("Sweep", mock.Anything, now).Return(2).Once()

	job := NewSweepJob(svc)
	job.now = func() time.Time { return now }

	require.NoError(t, job.Process(context.Background()))
	svc.AssertExpectations(t)
}
