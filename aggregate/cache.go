package aggregate

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/arthuhr-heslault/ai-newsletter/types"
)

// Snapshot is one cached aggregation result.
type Snapshot struct {
	Articles  []types.Article `json:"articles"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// SnapshotStore persists the latest snapshot between interactions.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, bool)
	Save(ctx context.Context, snap Snapshot)
}

// Cache serves aggregation results for a bounded time window so the
// interactive view never refetches sources on a filter or page change.
// Invalidation is purely by age.
type Cache struct {
	mu     sync.Mutex
	loader func(ctx context.Context) []types.Article
	store  SnapshotStore
	ttl    time.Duration
	now    func() time.Time
}

// NewCache builds a cache over the given loader. A nil store defaults
// to in-process memory; now is injectable for tests and defaults to
// time.Now.
func NewCache(loader func(ctx context.Context) []types.Article, store SnapshotStore, ttl time.Duration) *Cache {
	if store == nil {
		store = &memoryStore{}
	}
	return &Cache{loader: loader, store: store, ttl: ttl, now: time.Now}
}

// GetOrRefresh returns the cached collection, reloading it when the
// snapshot is older than the TTL.
func (c *Cache) GetOrRefresh(ctx context.Context) []types.Article {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap, ok := c.store.Load(ctx); ok && c.now().Sub(snap.FetchedAt) < c.ttl {
		return snap.Articles
	}
	return c.refreshLocked(ctx)
}

// Refresh reloads unconditionally and returns the fresh collection.
func (c *Cache) Refresh(ctx context.Context) []types.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *Cache) refreshLocked(ctx context.Context) []types.Article {
	articles := c.loader(ctx)
	c.store.Save(ctx, Snapshot{Articles: articles, FetchedAt: c.now()})
	log.Printf("Cache refreshed: %d article(s)", len(articles))
	return articles
}

// memoryStore keeps the snapshot in process memory.
type memoryStore struct {
	snap Snapshot
	set  bool
}

func (m *memoryStore) Load(ctx context.Context) (Snapshot, bool) {
	return m.snap, m.set
}

func (m *memoryStore) Save(ctx context.Context, snap Snapshot) {
	m.snap = snap
	m.set = true
}
