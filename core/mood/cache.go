package mood

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 1e5
	defaultMaxCost     = 1e4
	defaultBufferItems = 64
	defaultTTL         = 5 * time.Minute
)

// Cache memoizes classification results per request text. Classification is
// pure, so entries never need invalidation beyond TTL-based eviction.
type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

// CacheConfig configures the classification cache.
type CacheConfig struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

// NewCache creates a classification cache. A nil config selects defaults.
func NewCache(config *CacheConfig) (*Cache, error) {
	cfg := CacheConfig{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
		TTL:         defaultTTL,
	}
	if config != nil {
		if config.NumCounters > 0 {
			cfg.NumCounters = config.NumCounters
		}
		if config.MaxCost > 0 {
			cfg.MaxCost = config.MaxCost
		}
		if config.BufferItems > 0 {
			cfg.BufferItems = config.BufferItems
		}
		if config.TTL > 0 {
			cfg.TTL = config.TTL
		}
	}

	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{cache: inner, ttl: cfg.TTL}, nil
}

// Wait blocks until buffered writes are applied. Intended for tests.
func (c *Cache) Wait() {
	c.cache.Wait()
}

// Close releases the cache's resources.
func (c *Cache) Close() {
	c.cache.Close()
}

func (c *Cache) getEmotions(text string) (EmotionScores, bool) {
	v, ok := c.cache.Get("emotion:" + text)
	if !ok {
		return nil, false
	}
	scores, ok := v.(EmotionScores)
	return scores, ok
}

func (c *Cache) setEmotions(text string, scores EmotionScores) {
	c.cache.SetWithTTL("emotion:"+text, scores, 1, c.ttl)
}

func (c *Cache) getSyntax(text string) (SyntaxFlags, bool) {
	v, ok := c.cache.Get("syntax:" + text)
	if !ok {
		return nil, false
	}
	flags, ok := v.(SyntaxFlags)
	return flags, ok
}

func (c *Cache) setSyntax(text string, flags SyntaxFlags) {
	c.cache.SetWithTTL("syntax:"+text, flags, 1, c.ttl)
}
