package driver

import "sync"

// cached is one in-memory ModuleCache entry: the emitted IR text keyed by
// the digest of the source that produced it.
type cached struct {
	digest Digest
	irText string
	broken bool
}

// ModuleCache is an in-process cache of built packages, keyed by package
// name plus a content digest, avoiding rebuilding a package whose source
// has not changed since the last build in this process (mirrors the
// teacher driver's per-run module cache, scoped down from module-graph
// metadata to the one thing codegen actually caches: emitted IR text).
type ModuleCache struct {
	mu     sync.RWMutex
	byName map[string]cached
}

// NewModuleCache creates a ModuleCache with the given capacity hint.
func NewModuleCache(capHint int) *ModuleCache {
	return &ModuleCache{byName: make(map[string]cached, capHint)}
}

// Get returns the cached IR text for name if its digest still matches.
func (c *ModuleCache) Get(name string, digest Digest) (string, bool, bool) {
	c.mu.RLock()
	rec, ok := c.byName[name]
	c.mu.RUnlock()
	if !ok || rec.digest != digest {
		return "", false, false
	}
	return rec.irText, rec.broken, true
}

// Put inserts or replaces the cache entry for name.
func (c *ModuleCache) Put(name string, digest Digest, irText string, broken bool) {
	c.mu.Lock()
	c.byName[name] = cached{digest: digest, irText: irText, broken: broken}
	c.mu.Unlock()
}
