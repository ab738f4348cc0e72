// Package freeslot implements the bounded free-slot cache that tracks
// node indices vacated by child relocation during trie construction.
//
// Refilling these holes keeps the node store dense; without it, every
// relocation would permanently waste a slot. The cache is a FIFO with a
// per-entry miss counter: entries that are offered against offsets they
// can never satisfy (because the requested offset has already passed
// them) are evicted after enough misses rather than sitting forever at
// the head of the queue.
package freeslot

// DefaultCapacity is the default maximum number of tracked entries.
const DefaultCapacity = 128

// DefaultMissTolerance is the default number of consecutive failed
// popFor offers before an entry is evicted as stale.
const DefaultMissTolerance = 10

// ParentLookup reports whether the node at index i is occupied, i.e.
// whether parent[i] != Reserved. The cache uses this to detect entries
// that were already reused by the automaton writer directly (bypassing
// the cache) and should be dropped rather than handed out again.
type ParentLookup func(i int32) (occupied bool)

type entry struct {
	index int32
	miss  int
	next  *entry
	prev  *entry
}

// Cache is a bounded, doubly-linked FIFO of free node indices.
type Cache struct {
	occupied ParentLookup
	maxCap   int
	tol      int
	head     *entry
	tail     *entry
	count    int
}

// New creates a Cache bounded to maxCap entries, evicting an entry after
// tol consecutive unsatisfied popFor calls. maxCap <= 0 selects
// [DefaultCapacity]; tol <= 0 selects [DefaultMissTolerance].
//
// occupied is consulted on every PopFor scan to detect slots that were
// reused without going through the cache.
func New(occupied ParentLookup, maxCap, tol int) *Cache {
	if maxCap <= 0 {
		maxCap = DefaultCapacity
	}

	if tol <= 0 {
		tol = DefaultMissTolerance
	}

	return &Cache{occupied: occupied, maxCap: maxCap, tol: tol}
}

// Add appends a vacated index to the tail of the FIFO. No-op if the
// cache is already at capacity.
func (c *Cache) Add(i int32) {
	if c.count >= c.maxCap {
		return
	}

	e := &entry{index: i}

	if c.tail == nil {
		c.head = e
		c.tail = e
	} else {
		c.tail.next = e
		e.prev = c.tail
		c.tail = e
	}

	c.count++
}

// PopFor scans from the head for the first entry usable as the slot of
// a child reached via offset (an index >= offset, so the implied base
// is non-negative), removing entries it determines
// are no longer valid along the way. Returns 0 (never a legal non-root
// index) if no entry satisfies the request.
func (c *Cache) PopFor(offset int32) int32 {
	e := c.head

	for e != nil {
		next := e.next

		switch {
		case c.occupied(e.index):
			// Reused directly by the writer without going through us.
			c.remove(e)

		case e.index >= offset:
			c.remove(e)
			return e.index

		default:
			e.miss++
			if e.miss >= c.tol {
				c.remove(e)
			}
		}

		e = next
	}

	return 0
}

func (c *Cache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}

	e.next = nil
	e.prev = nil
	c.count--
}

// Len returns the number of entries currently tracked.
func (c *Cache) Len() int {
	return c.count
}
