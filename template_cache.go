package textgrid

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ryanlewis/textgrid/internal/parser"
)

// TemplateCache keeps parsed templates for programs that build many grids
// from the same layouts. Every lookup returns a new Grid, so callers can
// write to what they get without affecting the cache or each other.
//
// Entries are keyed by file path or by a SHA-256 of the template bytes,
// together with the kind and marker. When the cache is full the least
// recently used entry is evicted. Concurrent misses on the same key are
// parsed once.
type TemplateCache struct {
	mu      sync.RWMutex
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
	maxSize int
	cells   int

	loads singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type templateEntry struct {
	key  string
	tmpl *parser.Template
}

var defaultCache = NewTemplateCache(64)

// NewTemplateCache creates a cache holding at most maxSize templates.
// A maxSize of 0 or less means no limit.
func NewTemplateCache(maxSize int) *TemplateCache {
	return &TemplateCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
		maxSize: maxSize,
	}
}

// LoadTemplateCached loads a template file through the default cache.
func LoadTemplateCached(filePath string, kind TemplateKind, marker rune) (*Grid, error) {
	return defaultCache.LoadTemplate(filePath, kind, marker)
}

// ParseTemplateCached parses template bytes through the default cache.
func ParseTemplateCached(data []byte, kind TemplateKind, marker rune) (*Grid, error) {
	return defaultCache.ParseTemplate(data, kind, marker)
}

// LoadTemplate loads a template file, reusing an earlier parse of the same
// path. A file that changes on disk is not reread until its entry is evicted
// or the cache is cleared.
func (c *TemplateCache) LoadTemplate(filePath string, kind TemplateKind, marker rune) (*Grid, error) {
	key := cacheKey("path:"+filePath, kind, marker)
	return c.lookup(key, func() (*parser.Template, error) {
		return loadTemplate(filePath, kind, marker)
	})
}

// ParseTemplate parses template bytes, reusing an earlier parse of identical
// bytes.
func (c *TemplateCache) ParseTemplate(data []byte, kind TemplateKind, marker rune) (*Grid, error) {
	hash := sha256.Sum256(data)
	key := cacheKey("sha256:"+hex.EncodeToString(hash[:]), kind, marker)
	return c.lookup(key, func() (*parser.Template, error) {
		return parser.ParseString(string(data), parser.Kind(kind), marker)
	})
}

func cacheKey(source string, kind TemplateKind, marker rune) string {
	return fmt.Sprintf("%s|%d|%U", source, int(kind), marker)
}

func (c *TemplateCache) lookup(key string, load func() (*parser.Template, error)) (*Grid, error) {
	if tmpl := c.get(key); tmpl != nil {
		return gridFromTemplate(tmpl)
	}

	v, err, _ := c.loads.Do(key, func() (interface{}, error) {
		tmpl, err := load()
		if err != nil {
			return nil, err
		}
		c.put(key, tmpl)
		return tmpl, nil
	})
	if err != nil {
		return nil, err
	}
	return gridFromTemplate(v.(*parser.Template))
}

// get looks key up under the read lock and only takes the write lock to
// refresh the entry's LRU position.
func (c *TemplateCache) get(key string) *parser.Template {
	c.mu.RLock()
	elem, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil
	}

	c.mu.Lock()
	// The entry may have been evicted between the two locks.
	if cur, ok := c.entries[key]; ok && cur == elem {
		c.lru.MoveToFront(elem)
	}
	c.mu.Unlock()

	c.hits.Add(1)
	return elem.Value.(*templateEntry).tmpl
}

func (c *TemplateCache) put(key string, tmpl *parser.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.lru.PushFront(&templateEntry{key: key, tmpl: tmpl})
	c.cells += cellCount(tmpl)
}

func (c *TemplateCache) evictOldest() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	entry := c.lru.Remove(elem).(*templateEntry)
	delete(c.entries, entry.key)
	c.cells -= cellCount(entry.tmpl)
	c.evictions.Add(1)
}

// Clear removes every entry. Statistics counters are kept.
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.lru = list.New()
	c.cells = 0
}

// Stats returns a snapshot of the cache counters.
func (c *TemplateCache) Stats() CacheStats {
	c.mu.RLock()
	size, cells := len(c.entries), c.cells
	c.mu.RUnlock()

	return CacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Cells:     cells,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// CacheStats contains cache performance statistics
type CacheStats struct {
	Size      int    // Current number of cached templates
	MaxSize   int    // Maximum cache size, 0 for unlimited
	Cells     int    // Total cells across cached templates
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evictions
}

// HitRate returns the cache hit rate as a percentage (0-100)
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// SetDefaultCacheSize replaces the default cache with an empty one holding
// at most maxSize templates. Call it once at startup.
func SetDefaultCacheSize(maxSize int) {
	defaultCache = NewTemplateCache(maxSize)
}

// ClearDefaultCache clears the default cache.
func ClearDefaultCache() {
	defaultCache.Clear()
}

// DefaultCacheStats returns statistics for the default cache.
func DefaultCacheStats() CacheStats {
	return defaultCache.Stats()
}
