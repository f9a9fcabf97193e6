// Package session holds the locally-ordered view of a user's active items
// and coordinates optimistic mutations against the remote store: the view is
// updated first, the store call follows, and a failed call restores the
// snapshot taken when the mutation started.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/domain"
)

// Store is the remote surface the coordinator wraps.
type Store interface {
	ActiveItems(ctx context.Context) ([]*domain.Item, error)
	Resolve(ctx context.Context, itemID uuid.UUID) error
	Discard(ctx context.Context, itemID uuid.UUID) error
}

// Coordinator owns the session's local item view. Mutation entry points are
// invoked sequentially from one session, but their store calls overlap, so
// all view state is guarded by one mutex.
type Coordinator struct {
	store Store
	log   *slog.Logger

	mu       sync.Mutex
	items    []*domain.Item
	pending  map[uuid.UUID][]*domain.Item // pre-mutation snapshot per in-flight removal
	fetchSeq uint64                       // latest issued refresh
	hadItems bool
	cleared  bool
}

// New creates a Coordinator over the given store with an empty view.
func New(log *slog.Logger, store Store) *Coordinator {
	return &Coordinator{
		store:   store,
		log:     log.With("component", "session"),
		pending: make(map[uuid.UUID][]*domain.Item),
	}
}

// Items returns a copy of the current local view, in display order.
func (c *Coordinator) Items() []*domain.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*domain.Item(nil), c.items...)
}

// Refresh fetches the authoritative active list and reconciles the local
// view. A refresh that was superseded by a newer one is abandoned, so stale
// authoritative state never clobbers newer optimistic state. Items with a
// pending optimistic removal are not resurrected.
func (c *Coordinator) Refresh(ctx context.Context) ([]*domain.Item, error) {
	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	items, err := c.store.ActiveItems(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if seq != c.fetchSeq {
		c.log.DebugContext(ctx, "stale refresh abandoned", slog.Uint64("seq", seq))
		return append([]*domain.Item(nil), c.items...), nil
	}

	reconciled := items[:0:0]
	for _, it := range items {
		if _, inFlight := c.pending[it.ID]; inFlight {
			continue
		}
		reconciled = append(reconciled, it)
	}

	c.items = reconciled
	c.trackCleared()

	return append([]*domain.Item(nil), c.items...), nil
}

// Resolve optimistically removes the item and issues the remote transition.
// On failure the pre-mutation view is restored and the error surfaces to
// the caller; there are no automatic retries.
func (c *Coordinator) Resolve(ctx context.Context, itemID uuid.UUID) error {
	return c.mutate(ctx, itemID, c.store.Resolve)
}

// Discard is Resolve's no-reward counterpart.
func (c *Coordinator) Discard(ctx context.Context, itemID uuid.UUID) error {
	return c.mutate(ctx, itemID, c.store.Discard)
}

func (c *Coordinator) mutate(ctx context.Context, itemID uuid.UUID, call func(context.Context, uuid.UUID) error) error {
	c.stageRemoval(itemID)

	if err := call(ctx, itemID); err != nil {
		c.rollbackRemoval(ctx, itemID)
		return err
	}

	c.commitRemoval(itemID)
	return nil
}

// stageRemoval snapshots the current view and removes the item locally.
// One snapshot per item: staging the same item twice keeps the first.
func (c *Coordinator) stageRemoval(itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pending[itemID]; !exists {
		c.pending[itemID] = append([]*domain.Item(nil), c.items...)
	}

	for i, it := range c.items {
		if it.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.trackCleared()
}

// commitRemoval drops the rollback snapshot after a confirmed mutation.
func (c *Coordinator) commitRemoval(itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, itemID)
}

// rollbackRemoval restores the pre-mutation snapshot. Mutations on disjoint
// items compose; last snapshot wins on rollback order.
func (c *Coordinator) rollbackRemoval(ctx context.Context, itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot, ok := c.pending[itemID]
	if !ok {
		return
	}
	delete(c.pending, itemID)
	c.items = snapshot
	c.trackCleared()

	c.log.WarnContext(ctx, "optimistic removal rolled back",
		slog.String("item_id", itemID.String()),
	)
}

// trackCleared records the inbox-zero transition. Callers hold c.mu.
func (c *Coordinator) trackCleared() {
	if len(c.items) > 0 {
		c.hadItems = true
		return
	}
	if c.hadItems {
		c.cleared = true
		c.hadItems = false
	}
}

// ClearedInbox reports whether the view transitioned to empty since the
// last call, then resets the flag. Drives one-shot completion feedback.
func (c *Coordinator) ClearedInbox() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	cleared := c.cleared
	c.cleared = false
	return cleared
}
