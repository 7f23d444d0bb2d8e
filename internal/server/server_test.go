package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Adventure_Go/internal/domain"
	"github.com/osse101/Adventure_Go/internal/session"
)

// stubSessions implements the calls the routing tests make; anything else panics
type stubSessions struct {
	session.Service
	joinedGroup  string
	joinedAction domain.Action
}

func (s *stubSessions) Active(ctx context.Context) []*domain.Session {
	return []*domain.Session{}
}

func (s *stubSessions) Join(ctx context.Context, groupID, userID string, action domain.Action) (*domain.Session, error) {
	s.joinedGroup = groupID
	s.joinedAction = action
	return domain.NewSession(groupID, userID, domain.ScaledMonster{StatMultiplier: 1}, time.Minute, time.Now()), nil
}

func (s *stubSessions) Get(ctx context.Context, groupID string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func TestRouter(t *testing.T) {
	sessions := &stubSessions{}
	router := NewRouter("", nil, Dependencies{Sessions: sessions})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("list adventures", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adventures", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("join passes group param", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := strings.NewReader(`{"user_id":"alice","action":"magic"}`)
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/adventures/g42/join", body))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "g42", sessions.joinedGroup)
		assert.Equal(t, domain.ActionMagic, sessions.joinedAction)
	})

	t.Run("missing adventure", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adventures/nowhere", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no stream without hub", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	router := NewRouter("secret", nil, Dependencies{Sessions: &stubSessions{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adventures", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/adventures", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
