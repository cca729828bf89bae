package intelligence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"vipqueens/models"
)

const conversationKeyPrefix = "conversation:"

// ConversationTimeout is how long an idle session survives before its
// context is discarded. Bookings already written are unaffected.
const ConversationTimeout = 30 * time.Minute

// ContextStore persists per-session conversation state between turns.
// Get returns (nil, nil) when no live context exists for the session.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationContext, error)
	Set(ctx context.Context, convCtx *models.ConversationContext) error
	Clear(ctx context.Context, sessionID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ConversationTimeout}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	data, err := s.client.Get(ctx, conversationKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var convCtx models.ConversationContext
	if err := json.Unmarshal([]byte(data), &convCtx); err != nil {
		return nil, err
	}
	return &convCtx, nil
}

// Set writes the context back and refreshes the idle TTL.
func (s *RedisContextStore) Set(ctx context.Context, convCtx *models.ConversationContext) error {
	b, err := json.Marshal(convCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, conversationKeyPrefix+convCtx.SessionID, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, conversationKeyPrefix+sessionID).Err()
}

// MemoryContextStore keeps contexts in process memory. Used by tests and
// single-node development setups.
type MemoryContextStore struct {
	mu       sync.RWMutex
	contexts map[string]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	ctx       models.ConversationContext
	expiresAt time.Time
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{
		contexts: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *MemoryContextStore) Get(_ context.Context, sessionID string) (*models.ConversationContext, error) {
	s.mu.RLock()
	entry, ok := s.contexts[sessionID]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expiresAt) {
		return nil, nil
	}
	out := entry.ctx
	return &out, nil
}

func (s *MemoryContextStore) Set(_ context.Context, convCtx *models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[convCtx.SessionID] = memoryEntry{
		ctx:       *convCtx,
		expiresAt: s.now().Add(ConversationTimeout),
	}
	return nil
}

func (s *MemoryContextStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, sessionID)
	return nil
}
