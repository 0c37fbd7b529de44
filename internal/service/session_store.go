package service

import (
	"context"
	"encoding/json"
	"time"

	"quizflow/internal/cache"
	"quizflow/internal/domain"
)

// SessionStore persists adaptive session state in the cache for the
// configured TTL. A session that expires simply disappears, taking its
// asked-set with it.
type SessionStore interface {
	Load(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}

type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore creates a cache-backed SessionStore.
func NewSessionStore(cacheClient domain.Cache, ttl time.Duration) SessionStore {
	return &cacheSessionStore{cache: cacheClient, ttl: ttl}
}

func sessionCacheKey(id string) string {
	return cache.GenerateCacheKey("quiz", "session", id)
}

// Load implements SessionStore.
func (s *cacheSessionStore) Load(ctx context.Context, id string) (domain.Session, error) {
	raw, err := s.cache.Get(ctx, sessionCacheKey(id))
	if err != nil {
		if err == domain.ErrCacheMiss {
			return domain.Session{}, domain.NewSessionNotFoundError(id)
		}
		return domain.Session{}, domain.NewInternalError("Failed to load session", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, domain.NewInternalError("Failed to decode session", err)
	}
	return session, nil
}

// Save implements SessionStore.
func (s *cacheSessionStore) Save(ctx context.Context, session domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("Failed to encode session", err)
	}
	if err := s.cache.Set(ctx, sessionCacheKey(session.ID), string(data), s.ttl); err != nil {
		return domain.NewInternalError("Failed to save session", err)
	}
	return nil
}
