// Package inventory owns the authoritative list of stock items and the
// low-stock filter flag. Every mutation persists the full list to durable
// storage before it returns.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SirviTusharChoudhary/InventoryPro/internal/models"
	"github.com/SirviTusharChoudhary/InventoryPro/internal/storage"
)

// DefaultKey is the storage key holding the serialized inventory.
const DefaultKey = "inventory"

// Change describes the outcome of SetQty or StepQty.
type Change struct {
	// Item is the item after the change. When Removed is true it carries Qty 0.
	Item models.Item

	// PreviousQty is the quantity before the change.
	PreviousQty int

	// Found is false when the id did not match any item.
	Found bool

	// Removed is true when the quantity reached zero and the item was erased.
	Removed bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock overrides the time source used for id allocation.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the Inventory Store. It is safe for concurrent use; callers see the
// operations as if they ran one at a time.
type Store struct {
	mu           sync.Mutex
	kv           storage.Store
	key          string
	now          func() time.Time
	items        []models.Item
	lowStockOnly bool
	lastID       int64
}

// Open loads the inventory from kv. A missing or undecodable value yields an
// empty inventory; only a storage failure is returned as an error.
func Open(ctx context.Context, kv storage.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.items = items
	for _, item := range items {
		if item.ID > s.lastID {
			s.lastID = item.ID
		}
	}

	slog.Info("Inventory loaded", "key", s.key, "items", len(items))
	return s, nil
}

func (s *Store) load(ctx context.Context) ([]models.Item, error) {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Stored inventory is corrupt, starting empty", "key", s.key, "error", err)
		return nil, nil
	}

	// Drop duplicate ids so lookups stay unambiguous.
	seen := make(map[int64]bool, len(items))
	kept := items[:0]
	for _, item := range items {
		if seen[item.ID] {
			slog.Warn("Dropping duplicate item id from stored inventory", "id", item.ID, "name", item.Name)
			continue
		}
		seen[item.ID] = true
		kept = append(kept, item)
	}
	return kept, nil
}

// persistLocked writes the full sequence. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []models.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}
	slog.Debug("Inventory persisted", "key", s.key, "items", len(items), "bytes", len(data))
	return nil
}

// nextIDLocked returns a time-derived id strictly greater than any id handed out before.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) indexLocked(id int64) int {
	return slices.IndexFunc(s.items, func(item models.Item) bool { return item.ID == id })
}

// Validate checks the rules for a manually added item and reports all violations together.
func Validate(name string, price float64, qty, min int) error {
	var violations []error
	if strings.TrimSpace(name) == "" {
		violations = append(violations, ErrNameEmpty)
	}
	if qty <= 0 {
		violations = append(violations, ErrQtyNotPositive)
	}
	// Written as !(price > 0) so NaN is rejected too.
	if !(price > 0) {
		violations = append(violations, ErrPriceNotPositive)
	}
	if min >= qty {
		violations = append(violations, ErrMinNotBelowQty)
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// AddItem validates and appends a new item. On validation failure the
// inventory is unchanged and the error is a *ValidationError. A persistence
// error leaves the item in memory, which stays authoritative, and the item is
// returned with the error.
func (s *Store) AddItem(ctx context.Context, name string, price float64, qty, min int) (models.Item, error) {
	if err := Validate(name, price, qty, min); err != nil {
		return models.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.Item{
		ID:    s.nextIDLocked(),
		Name:  strings.TrimSpace(name),
		Price: price,
		Qty:   qty,
		Min:   min,
	}
	s.items = append(s.items, item)

	if err := s.persistLocked(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// Append adds already-parsed items in order, assigning each a fresh id.
// The batch is persisted once. As with AddItem, a persistence error still
// returns the items that were added in memory.
func (s *Store) Append(ctx context.Context, items []models.Item) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]models.Item, len(items))
	for i, item := range items {
		item.ID = s.nextIDLocked()
		s.items = append(s.items, item)
		added[i] = item
	}

	if err := s.persistLocked(ctx); err != nil {
		return added, err
	}
	return added, nil
}

// SetQty sets the quantity of an item. Negative values clamp to zero, and zero
// removes the item. An unknown id is a no-op that still persists.
func (s *Store) SetQty(ctx context.Context, id int64, newQty int) (Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	change := s.setQtyLocked(id, newQty)
	return change, s.persistLocked(ctx)
}

// StepQty adds delta to an item's quantity, never going below zero. The sum
// saturates at math.MaxInt instead of wrapping.
func (s *Store) StepQty(ctx context.Context, id int64, delta int) (Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var change Change
	if idx := s.indexLocked(id); idx >= 0 {
		change = s.setQtyLocked(id, stepped(s.items[idx].Qty, delta))
	}
	return change, s.persistLocked(ctx)
}

// stepped returns max(0, qty+delta) without overflowing.
func stepped(qty, delta int) int {
	switch {
	case delta > 0 && qty > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && qty < math.MinInt-delta:
		return 0
	}
	return max(0, qty+delta)
}

func (s *Store) setQtyLocked(id int64, newQty int) Change {
	idx := s.indexLocked(id)
	if idx < 0 {
		return Change{}
	}

	item := s.items[idx]
	change := Change{Found: true, PreviousQty: item.Qty}

	item.Qty = max(0, newQty)
	if item.Qty == 0 {
		s.items = slices.Delete(s.items, idx, idx+1)
		change.Removed = true
	} else {
		s.items[idx] = item
	}
	change.Item = item
	return change
}

// RemoveItem deletes an item regardless of its quantity. It reports whether the id existed.
func (s *Store) RemoveItem(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	if idx := s.indexLocked(id); idx >= 0 {
		s.items = slices.Delete(s.items, idx, idx+1)
		found = true
	}
	return found, s.persistLocked(ctx)
}

// ResetAll clears the inventory and erases the persisted value.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to erase inventory: %w", err)
	}
	return nil
}

// ToggleLowStockFilter flips the filter flag and returns the new value.
func (s *Store) ToggleLowStockFilter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lowStockOnly = !s.lowStockOnly
	return s.lowStockOnly
}

// LowStockFilterActive reports the filter flag.
func (s *Store) LowStockFilterActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lowStockOnly
}

// Get returns the item with the given id.
func (s *Store) Get(id int64) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexLocked(id); idx >= 0 {
		return s.items[idx], true
	}
	return models.Item{}, false
}

// Items returns a copy of the inventory in insertion order.
func (s *Store) Items() []models.Item {
	items, _ := s.Snapshot()
	return items
}

// Snapshot returns a copy of the inventory together with the filter flag,
// read under one lock so the two are consistent.
func (s *Store) Snapshot() ([]models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, len(s.items))
	copy(items, s.items)
	return items, s.lowStockOnly
}
