package searchtask

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SequenceStore hands out monotonic sequence numbers per key.
type SequenceStore interface {
	Next(ctx context.Context, key string) (int64, error)
	Latest(ctx context.Context, key string) (int64, error)
}

// MemoryStore keeps sequences in process memory. It is enough for a single
// instance. Keys idle for longer than ttl are swept on Next; a ttl of zero
// keeps them forever.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	seq       map[string]memoryEntry
}

type memoryEntry struct {
	seq     int64
	touched time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl: ttl,
		now: time.Now,
		seq: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Next(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	entry, ok := s.seq[key]
	if !ok || s.expired(entry, now) {
		entry = memoryEntry{}
	}
	entry.seq++
	entry.touched = now
	s.seq[key] = entry

	return entry.seq, nil
}

func (s *MemoryStore) Latest(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.seq[key]
	if !ok || s.expired(entry, s.now()) {
		return 0, nil
	}

	return entry.seq, nil
}

// Len is the number of keys currently held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.seq)
}

func (s *MemoryStore) expired(entry memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(entry.touched) > s.ttl
}

// sweep drops expired keys, at most once per ttl.
func (s *MemoryStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = now

	for key, entry := range s.seq {
		if s.expired(entry, now) {
			delete(s.seq, key)
		}
	}
}

type RedisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisStore shares sequences between instances. Keys expire after ttl of
// inactivity so abandoned sessions do not accumulate.
type RedisStore struct {
	redis RedisClient
	ttl   time.Duration
}

func NewRedisStore(redis RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redis: redis,
		ttl:   ttl,
	}
}

func (s *RedisStore) GetSequenceKey(key string) string {
	return fmt.Sprintf("search:seq:%s", key)
}

func (s *RedisStore) Next(ctx context.Context, key string) (int64, error) {
	redisKey := s.GetSequenceKey(key)

	n, err := s.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	if s.ttl > 0 {
		if err := s.redis.Expire(ctx, redisKey, s.ttl).Err(); err != nil {
			return 0, fmt.Errorf("failed to set sequence expiry: %w", err)
		}
	}

	return n, nil
}

func (s *RedisStore) Latest(ctx context.Context, key string) (int64, error) {
	n, err := s.redis.Get(ctx, s.GetSequenceKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	}

	return n, nil
}
