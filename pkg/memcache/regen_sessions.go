// pkg/memcache/regen_sessions.go
package mem

import (
	"sync"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
)

type SessionState string

const (
	StateClean        SessionState = "clean"
	StateDirty        SessionState = "dirty"
	StateRegenerating SessionState = "regenerating"
)

// ItinerarySession is the single source of truth for one itinerary-editing
// session: the displayed itinerary, the profile it was generated from, the
// pending (edited) profile, and the regeneration state machine.
type ItinerarySession struct {
	ID             string
	State          SessionState
	Profile        *request_models.SoulProfile
	PendingProfile *request_models.SoulProfile
	Itinerary      *response_models.Itinerary
	CompletedItems []string
}

type SessionStore interface {
	Put(session *ItinerarySession)

	// Update runs fn on the stored session under the store lock, so state
	// transitions are atomic. Returns false if the session does not exist.
	Update(id string, fn func(*ItinerarySession) error) (bool, error)

	Get(id string) (*ItinerarySession, bool)
	Delete(id string)
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]*ItinerarySession
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]*ItinerarySession),
	}
}

func (s *Sessions) Put(session *ItinerarySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = session
}

func (s *Sessions) Update(id string, fn func(*ItinerarySession) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.data[id]
	if !ok {
		return false, nil
	}
	return true, fn(session)
}

func (s *Sessions) Get(id string) (*ItinerarySession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.data[id]
	if !ok {
		return nil, false
	}
	snapshot := *session
	snapshot.CompletedItems = append([]string(nil), session.CompletedItems...)
	return &snapshot, true
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
