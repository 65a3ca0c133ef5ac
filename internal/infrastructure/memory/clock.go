package memory

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing microsecond timestamps
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewClock creates a clock reading from now; nil means time.Now
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Next returns a UTC timestamp later than every previous one
func (c *Clock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UTC().Truncate(time.Microsecond)
	if !ts.After(c.last) {
		ts = c.last.Add(time.Microsecond)
	}
	c.last = ts
	return ts
}

// tables created with NewTable share this clock, so created_at also
// increases across tables
var defaultClock = NewClock(nil)
