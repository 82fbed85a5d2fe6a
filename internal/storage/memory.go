package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// MemoryStorage keeps values in process memory. Updates lock per key.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string][]byte

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string][]byte),
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *MemoryStorage) keyLock(key string) *sync.Mutex {
	m.lockMu.Lock()
	defer m.lockMu.Unlock()

	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	return l
}

func (m *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = clone(value)
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryStorage) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return m.UpdateMany(ctx, []string{key}, single(fn))
}

// UpdateMany takes the key locks in sorted order so overlapping calls cannot
// deadlock.
func (m *MemoryStorage) UpdateMany(ctx context.Context, keys []string, fn UpdateManyFunc) error {
	if err := checkKeys(keys); err != nil {
		return err
	}

	ordered := append([]string(nil), keys...)
	sort.Strings(ordered)
	for _, k := range ordered {
		l := m.keyLock(k)
		l.Lock()
		defer l.Unlock()
	}

	current := make([][]byte, len(keys))
	for i, k := range keys {
		v, err := m.Get(ctx, k)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		current[i] = v
	}

	next, err := fn(current)
	if err != nil {
		return err
	}
	if err := checkResult(keys, next); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, k := range keys {
		if next[i] == nil {
			delete(m.items, k)
			continue
		}
		m.items[k] = clone(next[i])
	}
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryStorage) Close() error { return nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
