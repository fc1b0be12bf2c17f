package textproc

import (
	"regexp"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// cacheShards must be a power of two.
const cacheShards = 16

// PatternCache is a Compiler that keeps compiled patterns keyed by their exact
// source text. Lookups are read-mostly, so each shard sits behind an RWMutex.
// xxhash only picks the shard; the full pattern string is the map key, so a
// changed pattern is always compiled fresh. Failed compilations are not stored.
type PatternCache struct {
	shards [cacheShards]cacheShard
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[string]*regexp.Regexp
}

// NewPatternCache creates an empty cache.
func NewPatternCache() *PatternCache {
	c := &PatternCache{}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]*regexp.Regexp)
	}
	return c
}

func (c *PatternCache) shard(pattern string) *cacheShard {
	return &c.shards[xxhash.Sum64String(pattern)&(cacheShards-1)]
}

// Compile returns the cached matcher for pattern, compiling it on first use.
// *regexp.Regexp is safe for concurrent use, so one instance serves all callers.
func (c *PatternCache) Compile(pattern string) (*regexp.Regexp, error) {
	s := c.shard(pattern)

	s.mu.RLock()
	re, ok := s.entries[pattern]
	s.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Another goroutine may have won the race; keep the first entry.
	if existing, ok := s.entries[pattern]; ok {
		re = existing
	} else {
		s.entries[pattern] = re
	}
	s.mu.Unlock()
	return re, nil
}

// Len returns the number of cached patterns.
func (c *PatternCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// Reset drops every cached pattern.
func (c *PatternCache) Reset() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[string]*regexp.Regexp)
		s.mu.Unlock()
	}
}
