package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"wordlens/internal/domain"
)

type ReportCache struct {
	mu         sync.RWMutex
	entries    map[string]*cacheEntry
	order      []string
	maxSize    int
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

type cacheEntry struct {
	report     domain.Report
	timestamp  time.Time
	generation uint64
}

func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ReportCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key hashes text so identical documents share a cache entry.
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:16])
}

func (c *ReportCache) Get(text string) (domain.Report, bool) {
	key := Key(text)

	c.mu.RLock()
	entry, exists := c.entries[key]
	currentGen := c.generation
	c.mu.RUnlock()

	if !exists {
		return domain.Report{}, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl || entry.generation != currentGen {
		c.mu.Lock()
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.mu.Unlock()
		return domain.Report{}, false
	}

	c.mu.Lock()
	c.moveToEnd(key)
	c.mu.Unlock()

	return cloneReport(entry.report), true
}

func (c *ReportCache) Put(text string, report domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(text)
	entry := &cacheEntry{
		report:     cloneReport(report),
		timestamp:  c.now(),
		generation: c.generation,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate drops every entry, e.g. after the stop-word list changed.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.generation++
}

// cloneReport copies the result's map and slices so callers never share
// them with the cache.
func cloneReport(r domain.Report) domain.Report {
	res := &r.Result
	if res.Stats != nil {
		stats := make(map[string]domain.WordStat, len(res.Stats))
		for k, v := range res.Stats {
			stats[k] = v
		}
		res.Stats = stats
	}
	res.Order = append([]string(nil), res.Order...)
	res.Tokens = append([]domain.Token(nil), res.Tokens...)
	return r
}

func (c *ReportCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ReportCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ReportCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *ReportCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

type CachedAnalyzer struct {
	analyzer Analyzer
	cache    *ReportCache
}

type Analyzer interface {
	Analyze(raw string) domain.Report
}

func NewCachedAnalyzer(analyzer Analyzer, cache *ReportCache) *CachedAnalyzer {
	return &CachedAnalyzer{
		analyzer: analyzer,
		cache:    cache,
	}
}

// Analyze returns a cached report for raw or runs a fresh pass. The bool
// reports a cache hit.
func (a *CachedAnalyzer) Analyze(raw string) (domain.Report, bool) {
	if report, hit := a.cache.Get(raw); hit {
		return report, true
	}

	report := a.analyzer.Analyze(raw)
	a.cache.Put(raw, report)

	return report, false
}
