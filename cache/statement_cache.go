// Package cache holds the prepared-statement cache used by the engine to
// avoid re-preparing statements whose collapsed text it has already seen.
// Keys are statement-shape fingerprints; parameter values never enter a key.
package cache

import (
	"context"
	"database/sql"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Preparer is the subset of *sql.DB (and *sql.Tx) the cache needs.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type StatementCache struct {
	cache *lru.Cache[uint64, *sql.Stmt]
	mu    sync.Mutex
}

func NewStatementCache(size int) *StatementCache {
	c, _ := lru.NewWithEvict(size, func(_ uint64, s *sql.Stmt) {
		s.Close()
	})
	return &StatementCache{cache: c}
}

// GetOrPrepare returns the cached statement for key, preparing and caching
// it on a miss. Concurrent misses for the same key prepare once.
func (c *StatementCache) GetOrPrepare(ctx context.Context, key uint64, db Preparer, query string) (*sql.Stmt, error) {
	if s, ok := c.cache.Get(key); ok {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.cache.Get(key); ok {
		return s, nil
	}

	s, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, s)
	return s, nil
}

// Close purges the cache, closing every cached statement through the evict
// callback.
func (c *StatementCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
	return nil
}
