package aggregate

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the article snapshot in redis so multiple API
// instances share one aggregation window. The key expires server-side
// at the cache TTL; the age check in Cache still applies on top.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection. A nil
// store is returned when redis is unreachable; callers fall back to
// the in-memory store.
func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Falling back to in-memory cache.", err)
		return nil
	}

	return &RedisStore{client: client, key: config.CacheKey, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context) (Snapshot, bool) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Warning: discarding unreadable cache snapshot: %v", err)
		return Snapshot{}, false
	}
	return snap, true
}

func (r *RedisStore) Save(ctx context.Context, snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Warning: failed to encode cache snapshot: %v", err)
		return
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		log.Printf("Warning: failed to store cache snapshot: %v", err)
	}
}

// Close releases the redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
