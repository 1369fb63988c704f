package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps opaque session tokens to user ids. The token is the
// only thing the client holds; the store is the single authority on who
// is signed in.
type SessionStore interface {
	Create(ctx context.Context, userID string) (token string, err error)
	// Get resolves a token to a user id. A missing or expired token
	// returns ErrSessionNotFound, not a storage error.
	Get(ctx context.Context, token string) (userID string, err error)
	Destroy(ctx context.Context, token string) error
}

// redisSessionStore keeps sessions in Redis under session:<token> with a
// sliding TTL.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *redisSessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}
	userID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	// refresh the TTL so active sessions do not expire mid-use
	s.client.Expire(ctx, sessionKey(token), s.ttl)
	return userID, nil
}

func (s *redisSessionStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// MemorySessionStore is a map-backed SessionStore for tests and local
// runs without Redis. No TTL handling.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]string)}
}

func (s *MemorySessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}

func (s *MemorySessionStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
