package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a session has no cached analysis
var ErrMiss = errors.New("session cache miss")

// SessionCache remembers the latest analysis ID per browser session
type SessionCache interface {
	SetLatest(ctx context.Context, session, analysisID string) error
	Latest(ctx context.Context, session string) (string, error)
}

func sessionKey(session string) string {
	return "session:" + session + ":latest"
}

// RedisSessionCache stores entries with SET ... EX ttl
type RedisSessionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSessionCache connects to redisURL and pings it
func NewRedisSessionCache(ctx context.Context, redisURL string, ttl time.Duration) (*RedisSessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Println("✅ Redis connected, session cache enabled")
	return &RedisSessionCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisSessionCache) SetLatest(ctx context.Context, session, analysisID string) error {
	return c.rdb.Set(ctx, sessionKey(session), analysisID, c.ttl).Err()
}

func (c *RedisSessionCache) Latest(ctx context.Context, session string) (string, error) {
	id, err := c.rdb.Get(ctx, sessionKey(session)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return id, err
}

func (c *RedisSessionCache) Close() error {
	return c.rdb.Close()
}

type memoryEntry struct {
	analysisID string
	expiresAt  time.Time
}

// MemorySessionCache is the in-process fallback with the same TTL semantics
type MemorySessionCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionCache(ttl time.Duration) *MemorySessionCache {
	return &MemorySessionCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemorySessionCache) SetLatest(ctx context.Context, session, analysisID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	c.entries[session] = memoryEntry{analysisID: analysisID, expiresAt: now.Add(c.ttl)}
	return nil
}

func (c *MemorySessionCache) Latest(ctx context.Context, session string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[session]
	if !ok {
		return "", ErrMiss
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, session)
		return "", ErrMiss
	}
	return entry.analysisID, nil
}
