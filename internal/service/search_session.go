package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/fittrack/backend/internal/types"
)

// SearchSessionTTL bounds how long a user can pick from a search result.
const SearchSessionTTL = 15 * time.Minute

// ErrSearchSessionNotFound is returned for unknown or expired sessions.
var ErrSearchSessionNotFound = errors.New("food search session not found or expired")

// RedisSearchSessionStore keeps search sessions in Redis as JSON.
type RedisSearchSessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// Ensure RedisSearchSessionStore implements SearchSessionStore
var _ SearchSessionStore = (*RedisSearchSessionStore)(nil)

// NewRedisSearchSessionStore creates a new store with SearchSessionTTL.
func NewRedisSearchSessionStore(client *redis.Client) *RedisSearchSessionStore {
	return &RedisSearchSessionStore{redis: client, ttl: SearchSessionTTL}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("food:search:%s", id)
}

// Save stores a new session for userID.
func (s *RedisSearchSessionStore) Save(ctx context.Context, userID int64, query string, items []types.FoodItem) (*types.FoodSearchSession, error) {
	session := &types.FoodSearchSession{
		ID:        uuid.New(),
		UserID:    userID,
		Query:     query,
		Items:     items,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to save search session to Redis: %w", err)
	}
	return session, nil
}

// Get loads a session by id.
func (s *RedisSearchSessionStore) Get(ctx context.Context, id uuid.UUID) (*types.FoodSearchSession, error) {
	data, err := s.redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSearchSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search session from Redis: %w", err)
	}

	var session types.FoodSearchSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search session: %w", err)
	}
	return &session, nil
}

// MemorySearchSessionStore keeps sessions in process memory. It serves
// single-instance deployments without Redis.
type MemorySearchSessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*types.FoodSearchSession
}

// Ensure MemorySearchSessionStore implements SearchSessionStore
var _ SearchSessionStore = (*MemorySearchSessionStore)(nil)

func NewMemorySearchSessionStore() *MemorySearchSessionStore {
	return &MemorySearchSessionStore{
		ttl:      SearchSessionTTL,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*types.FoodSearchSession),
	}
}

func (s *MemorySearchSessionStore) Save(ctx context.Context, userID int64, query string, items []types.FoodItem) (*types.FoodSearchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, session := range s.sessions {
		if now.Sub(session.CreatedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}

	session := &types.FoodSearchSession{
		ID:        uuid.New(),
		UserID:    userID,
		Query:     query,
		Items:     items,
		CreatedAt: now,
	}
	s.sessions[session.ID] = session
	return session, nil
}

func (s *MemorySearchSessionStore) Get(ctx context.Context, id uuid.UUID) (*types.FoodSearchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || s.now().Sub(session.CreatedAt) > s.ttl {
		return nil, ErrSearchSessionNotFound
	}
	return session, nil
}
