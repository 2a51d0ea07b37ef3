package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"sitedesk/internal/application/crud"
	"sitedesk/internal/ports/output"
)

// Collection is the in-memory copy of one entity collection, written through
// to the key-value store on every Replace.
type Collection[T crud.Record] struct {
	writer sync.Mutex // held by the single writer for a whole operation

	mu    sync.RWMutex
	items []T

	key   string
	store output.KVStore
}

func NewCollection[T crud.Record](store output.KVStore, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key is the storage key the collection is persisted under.
func (c *Collection[T]) Key() string { return c.key }

// Load replaces the in-memory copy with the persisted one. Corrupt data loads
// as an empty collection.
func (c *Collection[T]) Load(ctx context.Context) error {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	var items []T
	if ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Printf("⚠️ %s: données corrompues ignorées: %v", c.key, err)
			items = nil
		}
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Items returns a copy of the current snapshot.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Replace commits items in memory, then persists them. The in-memory copy
// stays committed when persisting fails.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	if err := c.store.Set(ctx, c.key, raw); err != nil {
		log.Printf("❌ %s: échec de la sauvegarde: %v", c.key, err)
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) Lock()   { c.writer.Lock() }
func (c *Collection[T]) Unlock() { c.writer.Unlock() }
