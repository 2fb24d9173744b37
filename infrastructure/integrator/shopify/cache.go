package shopify

import (
	"sync"
	"time"

	"github.com/vfg2006/shopify-discount-api/internal/domain"
)

// CatalogCache guarda o catálogo elegível por loja com TTL. É um colaborador
// injetável (não um singleton) para que testes controlem o relógio e isolem
// lojas.
type CatalogCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]catalogCacheEntry
}

type catalogCacheEntry struct {
	products []*domain.Product
	stats    *domain.ScanStats
	storedAt time.Time
}

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]catalogCacheEntry),
	}
}

// WithClock troca a fonte de tempo. Apenas para testes.
func (c *CatalogCache) WithClock(now func() time.Time) *CatalogCache {
	c.now = now
	return c
}

func (c *CatalogCache) Get(shop string) ([]*domain.Product, *domain.ScanStats, bool) {
	c.mu.RLock()
	entry, ok := c.entries[shop]
	c.mu.RUnlock()

	if !ok {
		return nil, nil, false
	}

	if c.now().Sub(entry.storedAt) > c.ttl {
		c.Invalidate(shop)
		return nil, nil, false
	}

	return entry.products, entry.stats, true
}

func (c *CatalogCache) Store(shop string, products []*domain.Product, stats *domain.ScanStats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[shop] = catalogCacheEntry{
		products: products,
		stats:    stats,
		storedAt: c.now(),
	}
}

func (c *CatalogCache) Invalidate(shop string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, shop)
}
