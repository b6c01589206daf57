package skills

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/misternay/Poe2-SkillEye/core/logger"
)

// cacheEntry is the per-owner scan result, valid only for the exact
// boundary pair it was built against.
type cacheEntry struct {
	start uint64
	end   uint64
	rows  map[string]*Record
}

// Cache memoizes the best-row mapping per owner identity. A lookup is a
// hit only when the owner's current vector boundary pair matches the
// stored one exactly; anything else triggers a full rebuild that replaces
// the entry wholesale. Entries are never patched in place.
type Cache struct {
	scanner *Scanner
	store   *gocache.Cache
	log     *zap.Logger
}

// NewCache creates a best-row cache over the scanner.
func NewCache(scanner *Scanner, log *zap.Logger) *Cache {
	return &Cache{
		scanner: scanner,
		store:   gocache.New(gocache.NoExpiration, 0),
		log:     logger.WithComponent(log, "skills-cache"),
	}
}

// Lookup returns the best-row mapping for the owner. With forceFull set,
// or when the owner's boundary pair has moved since the cached scan, the
// mapping is rebuilt from the source; otherwise the cached mapping is
// returned with no reads beyond the boundary pair itself. A non-empty interest list narrows the
// returned view to those names without touching the cache.
//
// An owner whose base address cannot be resolved yields an empty mapping,
// never an error.
func (c *Cache) Lookup(owner Owner, forceFull bool, interest []string) map[string]*Record {
	base, ok := owner.BaseAddress()
	if !ok || base == 0 {
		return map[string]*Record{}
	}

	start, end, ok := c.scanner.Boundaries(base)
	if !ok {
		return map[string]*Record{}
	}

	key := ownerKey(base)
	if !forceFull {
		if v, hit := c.store.Get(key); hit {
			entry := v.(*cacheEntry)
			if entry.start == start && entry.end == end {
				return filtered(entry.rows, interest)
			}
		}
	}

	rows := c.scanner.Scan(start, end)
	c.store.Set(key, &cacheEntry{start: start, end: end, rows: rows}, gocache.NoExpiration)
	c.log.Debug("rescanned owner",
		zap.String("owner", key),
		zap.Int("rows", len(rows)))
	return filtered(rows, interest)
}

// Invalidate drops the cached entry for an owner so the next Lookup
// rescans regardless of boundary equality.
func (c *Cache) Invalidate(owner Owner) {
	if base, ok := owner.BaseAddress(); ok && base != 0 {
		c.store.Delete(ownerKey(base))
	}
}

func ownerKey(base uint64) string {
	return fmt.Sprintf("%#x", base)
}

// filtered narrows rows to the interest list. Both paths return a fresh
// map; the cache's own mapping is never handed to callers, so it can
// only ever be replaced wholesale by a rescan.
func filtered(rows map[string]*Record, interest []string) map[string]*Record {
	if len(interest) == 0 {
		out := make(map[string]*Record, len(rows))
		for key, rec := range rows {
			out[key] = rec
		}
		return out
	}
	out := make(map[string]*Record, len(interest))
	for _, name := range interest {
		key := normalize(name)
		if rec, ok := rows[key]; ok {
			out[key] = rec
		}
	}
	return out
}
