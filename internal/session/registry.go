package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Adventure_Go/internal/domain"
)

// Registry holds the live session of every group. Callers only ever see
// snapshots; mutation goes through Update.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*domain.Session)}
}

// Create registers a session, rejecting a group that already has one
func (r *Registry) Create(s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[s.GroupID]; ok {
		return &domain.SessionActiveError{GroupID: s.GroupID, SessionID: existing.ID}
	}
	r.sessions[s.GroupID] = s
	return nil
}

// Get returns a snapshot of the group's session
func (r *Registry) Get(groupID string) (*domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[groupID]
	if !ok {
		return nil, false
	}
	return s.Snapshot(), true
}

// Update mutates an open session under the registry lock
func (r *Registry) Update(groupID string, fn func(s *domain.Session) error) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[groupID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.State != domain.SessionOpen {
		return nil, domain.ErrSessionNotOpen
	}
	if err := fn(s); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// Claim moves a session from Open to Resolving. Only the first caller wins.
func (r *Registry) Claim(groupID string, id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[groupID]
	if !ok || s.ID != id {
		return nil, domain.ErrSessionNotFound
	}
	if s.State != domain.SessionOpen {
		return nil, domain.ErrSessionNotOpen
	}
	s.State = domain.SessionResolving
	return s.Snapshot(), nil
}

// Remove closes and drops a session if it is still the registered one
func (r *Registry) Remove(groupID string, id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[groupID]
	if !ok || s.ID != id {
		return false
	}
	s.State = domain.SessionClosed
	delete(r.sessions, groupID)
	return true
}

// InOtherSession reports whether a participant holds a roster slot in a
// live session of a different group
func (r *Registry) InOtherSession(groupID, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for g, s := range r.sessions {
		if g == groupID || s.State == domain.SessionClosed {
			continue
		}
		if _, ok := s.RosterOf(userID); ok {
			return true
		}
	}
	return false
}

// Expired lists open sessions created more than ttl before now. Sessions
// already claimed for resolution stay until their resolver removes them.
func (r *Registry) Expired(now time.Time, ttl time.Duration) []*domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Session
	for _, s := range r.sessions {
		if s.State != domain.SessionOpen {
			continue
		}
		if now.Sub(s.CreatedAt) > ttl {
			out = append(out, s.Snapshot())
		}
	}
	return out
}

// List returns snapshots of every live session
func (r *Registry) List() []*domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Snapshot())
	}
	return out
}

// Len is the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
