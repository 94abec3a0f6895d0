package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pixel-phantoms/phantomboard/internal/app"
)

//go:generate mockgen -destination=mock/loader.go -package=mock github.com/pixel-phantoms/phantomboard/internal/cache Loader

// Loader loads fresh leaderboard for repository.
type Loader interface {
	Load(ctx context.Context, repo app.Repo) (*app.Leaderboard, error)
}

// LeaderboardCache wraps Loader with caching layer.
//
// Only successfully loaded leaderboards are stored. Entries older than ttl are loaded again.
type LeaderboardCache struct {
	loader Loader
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
}

// NewLeaderboardCache creates new LeaderboardCache instance.
func NewLeaderboardCache(loader Loader, size int, ttl time.Duration) (*LeaderboardCache, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for leaderboards: %w", err)
	}

	return &LeaderboardCache{
		loader: loader,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Load returns cached leaderboard for repo, or loads it if there's no valid entry.
func (c *LeaderboardCache) Load(ctx context.Context, repo app.Repo) (*app.Leaderboard, error) {
	val, ok := c.cache.Get(c.cacheKey(repo))
	if ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(c.now()) {
			return entry.data, nil
		}
	}

	return c.Refresh(ctx, repo)
}

// Refresh loads leaderboard for repo ignoring cached entry.
// On failure the cached entry is left untouched.
func (c *LeaderboardCache) Refresh(ctx context.Context, repo app.Repo) (*app.Leaderboard, error) {
	lb, err := c.loader.Load(ctx, repo)
	if err != nil {
		return nil, err
	}

	c.cache.Add(c.cacheKey(repo), cacheEntry{
		created: c.now(),
		data:    lb,
	})

	return lb, nil
}

// Len returns number of cached leaderboards, including expired ones.
func (c *LeaderboardCache) Len() int {
	return c.cache.Len()
}

func (c *LeaderboardCache) cacheKey(repo app.Repo) string {
	return strings.ToLower(repo.String())
}

type cacheEntry struct {
	created time.Time
	data    *app.Leaderboard
}
