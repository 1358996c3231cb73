package filter

import (
	"container/list"
	"sync"
)

// programCache keeps the most recently compiled programs, keyed by their
// trimmed expression. A nil cache stores nothing.
type programCache struct {
	mu       sync.Mutex
	capacity int
	recent   *list.List // *Program, most recent first
	byExpr   map[string]*list.Element
}

func newProgramCache(capacity int) *programCache {
	return &programCache{
		capacity: capacity,
		recent:   list.New(),
		byExpr:   make(map[string]*list.Element, capacity),
	}
}

func (c *programCache) lookup(expression string) (*Program, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.byExpr[expression]
	if !ok {
		return nil, false
	}
	c.recent.MoveToFront(el)
	return el.Value.(*Program), true
}

func (c *programCache) store(p *Program) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byExpr[p.expression]; ok {
		el.Value = p
		c.recent.MoveToFront(el)
		return
	}

	c.byExpr[p.expression] = c.recent.PushFront(p)
	for c.recent.Len() > c.capacity {
		oldest := c.recent.Remove(c.recent.Back()).(*Program)
		delete(c.byExpr, oldest.expression)
	}
}

func (c *programCache) reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recent.Init()
	clear(c.byExpr)
}

func (c *programCache) size() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recent.Len()
}
