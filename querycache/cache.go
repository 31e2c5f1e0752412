// Copyright 2023 The kdbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package querycache memoizes search results of a finished kdbush
// index.
//
// A finished index never changes, so cached results never go stale and
// there is no invalidation. Entries are evicted only to stay within the
// configured cost budget, where the cost of an entry is the size in
// bytes of its result ids.
package querycache

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/dustin/go-humanize"
	"github.com/gogama/kdbush"
)

const packageName = "querycache: "

const (
	// DefaultMaxCost is the default cost budget: 64 MiB of result ids.
	DefaultMaxCost = 64 << 20
	// DefaultNumCounters is the default number of admission counters.
	DefaultNumCounters = 1e6
	// DefaultBufferItems is the default Get buffer size recommended by
	// ristretto.
	DefaultBufferItems = 64
)

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

// Config configures a Cache. Zero fields take their defaults.
type Config struct {
	// MaxCost is the total size in bytes of result ids the cache may
	// hold.
	MaxCost int64
	// NumCounters is the number of keys tracked for admission and
	// eviction. Ristretto recommends about ten times the number of
	// entries expected in a full cache.
	NumCounters int64
	// BufferItems is the size of ristretto's Get buffers.
	BufferItems int64
	// Logger receives cache lifecycle events. If nil, output is
	// discarded.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxCost <= 0 {
		c.MaxCost = DefaultMaxCost
	}
	if c.NumCounters <= 0 {
		c.NumCounters = DefaultNumCounters
	}
	if c.BufferItems <= 0 {
		c.BufferItems = DefaultBufferItems
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Cache answers Range and Within queries from memory when the same
// query has been answered before, and from the underlying index
// otherwise. A Cache is safe for concurrent use.
type Cache struct {
	index  *kdbush.Index
	cache  *ristretto.Cache[string, kdbush.Results]
	logger *slog.Logger
}

// New creates a Cache in front of a finished index. It returns an error
// wrapping kdbush.ErrNotReady if the index is not finished.
func New(index *kdbush.Index, config Config) (*Cache, error) {
	if index == nil {
		panic(packageName + "nil index")
	}
	if !index.Finished() {
		return nil, wrapErr("cannot cache unfinished index", kdbush.ErrNotReady)
	}

	config = config.withDefaults()
	cache, err := ristretto.NewCache(&ristretto.Config[string, kdbush.Results]{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		Metrics:     true,
	})
	if err != nil {
		return nil, wrapErr("failed to create cache", err)
	}

	config.Logger.Debug("querycache: cache created",
		"num_items", index.NumItems(),
		"max_cost", humanize.IBytes(uint64(config.MaxCost)),
	)

	return &Cache{
		index:  index,
		cache:  cache,
		logger: config.Logger,
	}, nil
}

// Range returns the same results as the index's Range method.
func (c *Cache) Range(minX, minY, maxX, maxY float64) (kdbush.Results, error) {
	key := queryKey('r', minX, minY, maxX, maxY)
	return c.get(key, func() (kdbush.Results, error) {
		return c.index.Range(minX, minY, maxX, maxY)
	})
}

// Within returns the same results as the index's Within method.
func (c *Cache) Within(qx, qy, r float64) (kdbush.Results, error) {
	key := queryKey('w', qx, qy, r)
	return c.get(key, func() (kdbush.Results, error) {
		return c.index.Within(qx, qy, r)
	})
}

// get returns a copy of the cached results for key, computing and
// caching them on a miss. Errors are not cached.
func (c *Cache) get(key string, compute func() (kdbush.Results, error)) (kdbush.Results, error) {
	if rs, ok := c.cache.Get(key); ok {
		return clone(rs), nil
	}

	rs, err := compute()
	if err != nil {
		return nil, err
	}

	stored := clone(rs)
	if !c.cache.Set(key, stored, cost(stored)) {
		c.logger.Debug("querycache: result dropped", "key", key, "results", len(stored))
	}
	return rs, nil
}

// Wait blocks until all pending writes to the cache have been applied.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Hits returns the number of queries answered from the cache.
func (c *Cache) Hits() uint64 {
	return c.cache.Metrics.Hits()
}

// Misses returns the number of queries answered by the index.
func (c *Cache) Misses() uint64 {
	return c.cache.Metrics.Misses()
}

// Close releases the cache's resources. The Cache must not be used
// after Close.
func (c *Cache) Close() {
	c.logger.Debug("querycache: cache closed",
		"hits", c.Hits(),
		"misses", c.Misses(),
	)
	c.cache.Close()
}

// queryKey builds a cache key from the query kind and its exact
// parameters.
func queryKey(kind byte, params ...float64) string {
	b := make([]byte, 0, 1+len(params)*24)
	b = append(b, kind)
	for _, p := range params {
		b = append(b, ':')
		b = strconv.AppendFloat(b, p, 'g', -1, 64)
	}
	return string(b)
}

func clone(rs kdbush.Results) kdbush.Results {
	out := make(kdbush.Results, len(rs))
	copy(out, rs)
	return out
}

func cost(rs kdbush.Results) int64 {
	return int64(len(rs)) * 4
}
