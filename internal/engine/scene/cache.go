package scene

import "github.com/Faultbox/molmesh/internal/mol"

// meshCache keeps generated entity geometry across rebuilds so edits to one
// entity never regenerate the others. Entries are keyed by entity ID and
// validated by version. The cache is owned by the worker goroutine; no
// locking.
type meshCache struct {
	entries map[uint64]*cacheEntry

	// onRegenerate, when set, observes every cache miss.
	onRegenerate func(id uint64)
}

type cacheEntry struct {
	version uint64
	mesh    *entityMesh
}

func newMeshCache() *meshCache {
	return &meshCache{entries: make(map[uint64]*cacheEntry)}
}

// fetch returns the entity's geometry, regenerating only on a version
// mismatch or a cold entry.
func (c *meshCache) fetch(e *mol.Entity, opts Options) *entityMesh {
	if ent, ok := c.entries[e.ID]; ok && ent.version == e.Version {
		return ent.mesh
	}
	if c.onRegenerate != nil {
		c.onRegenerate(e.ID)
	}
	m := buildEntity(e, opts, false)
	c.entries[e.ID] = &cacheEntry{version: e.Version, mesh: m}
	return m
}

// evictAbsent drops entries whose entity no longer appears in the request.
func (c *meshCache) evictAbsent(present map[uint64]struct{}) {
	for id := range c.entries {
		if _, ok := present[id]; !ok {
			delete(c.entries, id)
		}
	}
}

// flush drops everything. Called when generation options change, since
// cached buffers bake the old options in.
func (c *meshCache) flush() {
	clear(c.entries)
}

func (c *meshCache) len() int {
	return len(c.entries)
}
