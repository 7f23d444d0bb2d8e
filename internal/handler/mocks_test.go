package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/session"
)

// MockSessionService mocks session.Service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context, groupID, starterID, monsterName string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, starterID, monsterName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Join(ctx context.Context, groupID, userID string, action domain.Action) (*domain.Session, error) {
	args := m.Called(ctx, groupID, userID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Leave(ctx context.Context, groupID, userID string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) React(ctx context.Context, groupID, marker string) (*domain.Session, error) {
	args := m.Called(ctx, groupID, marker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, groupID string) (*domain.Session, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Active(ctx context.Context) []*domain.Session {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Session)
}

func (m *MockSessionService) Resolve(ctx context.Context, groupID string, sessionID uuid.UUID) (*session.Result, error) {
	args := m.Called(ctx, groupID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Result), args.Error(1)
}

func (m *MockSessionService) Sweep(ctx context.Context, now time.Time) int {
	args := m.Called(ctx, now)
	return args.Int(0)
}

// MockCharacterService mocks character.Service
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) profile(args mock.Arguments) (*character.Profile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.Profile), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, userID string) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockCharacterService) Backpack(ctx context.Context, userID string, filter character.BackpackFilter) ([]*domain.Item, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockCharacterService) Equip(ctx context.Context, userID, itemName string) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID, itemName))
}

func (m *MockCharacterService) Unequip(ctx context.Context, userID string, slot domain.Slot) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID, slot))
}

func (m *MockCharacterService) SaveLoadout(ctx context.Context, userID, name string) (domain.Loadout, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Loadout), args.Error(1)
}

func (m *MockCharacterService) EquipLoadout(ctx context.Context, userID, name string) ([]string, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCharacterService) DeleteLoadout(ctx context.Context, userID, name string) error {
	return m.Called(ctx, userID, name).Error(0)
}

func (m *MockCharacterService) AllocateSkill(ctx context.Context, userID string, kind domain.SkillKind, n int) (domain.Skills, error) {
	args := m.Called(ctx, userID, kind, n)
	return args.Get(0).(domain.Skills), args.Error(1)
}

func (m *MockCharacterService) ResetSkills(ctx context.Context, userID string) (domain.Skills, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Skills), args.Error(1)
}

func (m *MockCharacterService) SetClass(ctx context.Context, userID string, class domain.ClassName) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID, class))
}

func (m *MockCharacterService) UseAbility(ctx context.Context, userID string) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockCharacterService) AdoptPet(ctx context.Context, userID, petName string) (*character.Profile, error) {
	return m.profile(m.Called(ctx, userID, petName))
}

func (m *MockCharacterService) Rebirth(ctx context.Context, userID string) (*character.RebirthResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.RebirthResult), args.Error(1)
}

func (m *MockCharacterService) OpenChests(ctx context.Context, userID string, chest domain.ChestType, n int) ([]*domain.Item, error) {
	args := m.Called(ctx, userID, chest, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockCharacterService) Sell(ctx context.Context, userID, itemName string, n int) (int64, error) {
	args := m.Called(ctx, userID, itemName, n)
	return args.Get(0).(int64), args.Error(1)
}

// MockTradeService mocks trade.Service
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) SendCurrency(ctx context.Context, from, to string, amount int64) error {
	return m.Called(ctx, from, to, amount).Error(0)
}

func (m *MockTradeService) GiveItem(ctx context.Context, from, to, itemName string, qty int) (*domain.Item, error) {
	args := m.Called(ctx, from, to, itemName, qty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// newRequest builds a request with a JSON body and chi URL params
func newRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
