package layout

import "github.com/ickshonpe/taffy/pkg/geometry"

// cacheSize is the number of constraint combinations remembered per
// node. A node is queried under only a handful of distinct constraint
// shapes during a single compute pass, so a small fixed set suffices.
const cacheSize = 7

// cacheEntry memoizes one sizing query against a node.
type cacheEntry struct {
	known     geometry.OptionSize
	available AvailableSize
	mode      runMode
	size      geometry.Size
	valid     bool
}

// cacheSet is the per-node memo of recent sizing queries. Entries are
// replaced oldest-first once the set is full.
type cacheSet struct {
	entries [cacheSize]cacheEntry
	next    int
}

// find returns the memoized size for the given query, if present.
// Available space matches tolerantly (definite by value, content
// requests by mode). A perform-layout entry may serve a measure-only
// query, since both record the same size; the reverse never holds
// because a measure-only pass positions no descendants.
func (c *cacheSet) find(known geometry.OptionSize, available AvailableSize, mode runMode) (geometry.Size, bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if !e.valid {
			continue
		}
		if mode == performLayout && e.mode != performLayout {
			continue
		}
		if e.known != known || !e.available.equal(available) {
			continue
		}
		return e.size, true
	}
	return geometry.Size{}, false
}

// store records a query result, evicting the oldest entry when full.
func (c *cacheSet) store(known geometry.OptionSize, available AvailableSize, mode runMode, size geometry.Size) {
	c.entries[c.next] = cacheEntry{
		known:     known,
		available: available,
		mode:      mode,
		size:      size,
		valid:     true,
	}
	c.next = (c.next + 1) % cacheSize
}

// clear invalidates every entry.
func (c *cacheSet) clear() {
	*c = cacheSet{}
}

// empty reports whether no entry is valid.
func (c *cacheSet) empty() bool {
	for i := range c.entries {
		if c.entries[i].valid {
			return false
		}
	}
	return true
}
