package common

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemorySessionStore keeps sessions in process memory with a sliding TTL.
// Single-instance deployments only; state is lost on restart.
//
// Records are stored by value and Get hands out a copy, so concurrent
// requests for the same token never share a session record.
type MemorySessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// Ensure MemorySessionStore implements SessionStore
var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(SessionData)
	if !ok {
		return nil, ErrSessionNotFound
	}

	// go-cache evicts lazily; enforce the deadline ourselves too
	if time.Now().After(session.ExpiresAt) {
		s.cache.Delete(sessionID)
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, session *SessionData) error {
	session.ExpiresAt = time.Now().Add(s.ttl)
	s.cache.Set(session.SessionID, *session, s.ttl)
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	_, found := s.cache.Get(sessionID)
	s.cache.Delete(sessionID)
	return found, nil
}

// Close is a no-op for the in-memory store
func (s *MemorySessionStore) Close() error {
	return nil
}
