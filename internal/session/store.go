package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CookieName is the opaque session id cookie issued to every client.
const CookieName = "session_id"

// Store is a per-client opaque key-value bag. Values are JSON-encoded; the
// staged-registration slot and the login identity both live here.
type Store interface {
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	// Get decodes the value into dest and reports whether the key was present.
	Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, sessionID string, keys ...string) error
	Destroy(ctx context.Context, sessionID string) error
}

// RedisStore keeps each session as a redis hash with a sliding TTL: any write
// refreshes the session lifetime.
type RedisStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisStore(client *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "sess:" + sessionID
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", key, err)
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(sessionID), key, data)
	pipe.Expire(ctx, sessionKey(sessionID), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	data, err := s.client.HGet(ctx, sessionKey(sessionID), key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("session: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.HDel(ctx, sessionKey(sessionID), keys...).Err()
}

func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// MemoryStore is the in-process fallback used when redis is unavailable and
// in tests. Same contract, no TTL enforcement.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bag, ok := s.sessions[sessionID]
	if !ok {
		bag = make(map[string][]byte)
		s.sessions[sessionID] = bag
	}
	bag[key] = data
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID][key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("session: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bag, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(bag, key)
	}
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
