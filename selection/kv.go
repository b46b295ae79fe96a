package selection

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is the injected session storage: the real deployment sits on
// Redis, tests and embedded use sit on the in-memory map. Losing its
// contents loses in-progress UI state only, never an order.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type RedisKV struct {
	Client *redis.Client
}

func (kv RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := kv.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (kv RedisKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return kv.Client.Set(ctx, key, value, ttl).Err()
}

type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (kv *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	val, ok := kv.data[key]
	return val, ok, nil
}

func (kv *MemoryKV) Set(_ context.Context, key string, value string, _ time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	return nil
}
