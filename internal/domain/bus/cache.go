package bus

import "sync"

// Cache is the per-node latched payload buffer described in §4.2/§5. It is
// the sole piece of mutable state shared between a publisher (writer) and
// pullers or newly attached latched subscribers (readers); mu is the
// sole arbiter of access to bytes.
type Cache struct {
	mu       sync.RWMutex
	bytes    []byte
	size     int
	populated bool
}

// newCache allocates a cache of exactly size bytes. A cache with size<=0
// is never constructed by NewNode (FlagCached requires PayloadSize>0).
func newCache(size int) Cache {
	return Cache{bytes: make([]byte, size), size: size}
}

// Size returns the fixed capacity of the cache.
func (c *Cache) Size() int {
	return c.size
}

// Write copies buf into the cache under the writer lock. buf must be
// exactly Size() bytes; callers are expected to have already checked
// this (Publish rejects size mismatches before calling Write).
func (c *Cache) Write(buf []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(c.bytes, buf)
	c.populated = true
}

// Read copies the cache contents into out under the reader lock and
// reports whether the cache has ever been written. out must be exactly
// Size() bytes.
func (c *Cache) Read(out []byte) (ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated {
		return false
	}
	copy(out, c.bytes)
	return true
}

// Snapshot returns a fresh copy of the current cache contents and
// whether the cache has been written at least once, for use by the
// synthetic LATCHED delivery on Subscribe (§4.3).
func (c *Cache) Snapshot() (payload []byte, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.populated {
		return nil, false
	}
	out := make([]byte, c.size)
	copy(out, c.bytes)
	return out, true
}
