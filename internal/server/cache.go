package server

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// cache is a bounded map of solved expressions keyed by the hash of their
// text. When full, the oldest entry is evicted.
type cache struct {
	mu    sync.Mutex
	max   int
	m     map[uint64]entry
	order []uint64
}

// entry is one solved expression. The text is kept so that hash collisions
// are misses rather than wrong answers.
type entry struct {
	expr   string
	result float64
	err    error
}

func newCache(n int) *cache {
	if n <= 0 {
		return nil
	}
	return &cache{max: n, m: make(map[uint64]entry, n)}
}

// get returns the cached entry for expr. A nil cache never hits.
func (c *cache) get(expr string) (entry, bool) {
	if c == nil {
		return entry{}, false
	}
	h := xxhash.Sum64String(expr)
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[h]
	if !ok || e.expr != expr {
		return entry{}, false
	}
	return e, true
}

// put records the result of solving expr. A nil cache does nothing.
func (c *cache) put(expr string, result float64, err error) {
	if c == nil {
		return
	}
	h := xxhash.Sum64String(expr)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[h]; !ok {
		if len(c.order) >= c.max {
			delete(c.m, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, h)
	}
	c.m[h] = entry{expr: expr, result: result, err: err}
}

func (c *cache) len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
