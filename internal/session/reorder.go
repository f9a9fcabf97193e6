package session

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/domain"
)

// Move relocates the item at position from to position to, with array
// splice semantics and no wraparound. The ordering is purely local; the
// store has no ordering concept beyond capture time. Out-of-range indices
// are a caller bug and a no-op.
func (c *Coordinator) Move(from, to int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	moved := c.items[from]
	c.items = append(c.items[:from], c.items[from+1:]...)
	c.items = append(c.items[:to], append([]*domain.Item{moved}, c.items[to:]...)...)
}

// RemoveByID drops an item from the local view without a store call. Used
// when a drag lands on the discard target: the discard mutation itself goes
// through Discard, which stages its own snapshot.
func (c *Coordinator) RemoveByID(itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if it.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.trackCleared()
}
