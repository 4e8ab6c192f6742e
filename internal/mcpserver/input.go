package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/erraggy/optgen/schema"
)

// contentSourceName names inline schemas in results and generated banners.
const contentSourceName = "<content>"

// schemaInput represents the two ways an option schema can be provided to a tool.
// Exactly one of File or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an option schema file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline option schema content (XML, YAML, JSON, or TOML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Schema format: xml, yaml, json, or toml (default: detected)"`
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *schema.ParseResult
	usedAt    time.Time
	expiresAt time.Time
}

// schemaCacheStore provides a session-scoped cache for parsed schemas.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. The format is part of every key.
type schemaCacheStore struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	maxSize int
}

var schemaCache = &schemaCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *schemaCacheStore) get(key string) *schema.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.usedAt = time.Now()
	return e.result
}

// put stores a result, evicting the least recently used entry if at capacity.
func (c *schemaCacheStore) put(key string, result *schema.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, usedAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt.Before(oldest) {
				oldestKey, oldest = k, e.usedAt
			}
		}
		delete(c.entries, oldestKey)
	}

	c.entries[key] = entry
}

// reset clears all cached entries. Used in tests.
func (c *schemaCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *schemaCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey creates a cache key for the input, or "" when it cannot be cached.
func (s schemaInput) cacheKey() string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%s:%d", s.Format, absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s:%s", s.Format, hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// resolve parses the schema from whichever input was provided, using the cache
// when it is enabled.
func (s schemaInput) resolve() (*schema.ParseResult, error) {
	if (s.File == "") == (s.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if int64(len(s.Content)) > cfg.MaxContentSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OPTGEN_MAX_CONTENT_SIZE to increase",
			len(s.Content), cfg.MaxContentSize)
	}

	var opts []schema.ParseOption
	if s.File != "" {
		opts = append(opts, schema.WithFilePath(s.File))
	} else {
		opts = append(opts, schema.WithBytes([]byte(s.Content)), schema.WithSourceName(contentSourceName))
	}
	if s.Format != "" {
		format, err := schema.ParseSourceFormat(s.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, schema.WithFormat(format))
	}

	var key string
	if cfg.CacheEnabled {
		key = s.cacheKey()
	}
	if key != "" {
		if cached := schemaCache.get(key); cached != nil {
			return cached, nil
		}
	}

	result, err := schema.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		schemaCache.put(key, result, cfg.CacheTTL)
	}
	return result, nil
}
