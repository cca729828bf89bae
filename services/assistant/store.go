package assistant

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"vipqueens/models"
)

const flowKeyPrefix = "assistant:"

// flowTTL matches the chat receptionist's idle window.
const flowTTL = 30 * time.Minute

// FlowStore persists the widget's per-session flow state between turns.
// Get returns (nil, nil) for an unknown or expired session.
type FlowStore interface {
	Get(ctx context.Context, sessionID string) (*models.FlowState, error)
	Set(ctx context.Context, sessionID string, state *models.FlowState) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisFlowStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlowStore(client *redis.Client) *RedisFlowStore {
	return &RedisFlowStore{client: client, ttl: flowTTL}
}

func (s *RedisFlowStore) Get(ctx context.Context, sessionID string) (*models.FlowState, error) {
	data, err := s.client.Get(ctx, flowKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.FlowState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisFlowStore) Set(ctx context.Context, sessionID string, state *models.FlowState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, flowKeyPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisFlowStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, flowKeyPrefix+sessionID).Err()
}

// MemoryFlowStore backs tests and single-node development.
type MemoryFlowStore struct {
	mu     sync.RWMutex
	states map[string]*models.FlowState
}

func NewMemoryFlowStore() *MemoryFlowStore {
	return &MemoryFlowStore{states: make(map[string]*models.FlowState)}
}

func (s *MemoryFlowStore) Get(_ context.Context, sessionID string) (*models.FlowState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}
	out := *state
	return &out, nil
}

func (s *MemoryFlowStore) Set(_ context.Context, sessionID string, state *models.FlowState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *state
	s.states[sessionID] = &copied
	return nil
}

func (s *MemoryFlowStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
