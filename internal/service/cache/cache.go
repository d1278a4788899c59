package cache

import "sync"

const DefaultMaxEntries = 100

// Responses maps normalized questions to answers. Once full it admits nothing
// new; existing entries are never evicted or replaced.
type Responses struct {
	mu      sync.RWMutex
	max     int
	answers map[string]string
}

func New(maxEntries int) *Responses {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Responses{
		max:     maxEntries,
		answers: make(map[string]string, maxEntries),
	}
}

func (c *Responses) Lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	answer, ok := c.answers[key]
	return answer, ok
}

// Insert stores answer under key and reports whether it was admitted.
func (c *Responses) Insert(key, answer string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.answers[key]; ok {
		return false
	}
	if len(c.answers) >= c.max {
		return false
	}

	c.answers[key] = answer
	return true
}

func (c *Responses) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.answers)
}
