// Package storage is the key-value layer every store persists through.
// Values are opaque blobs (JSON in practice) rewritten wholesale on each
// mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("storage: key not found")

// Fixed keys of the persisted state. Each one is namespaced per device.
const (
	KeyUser         = "black-app-user"
	KeyAppointments = "black-app-appointments"
	KeyPoints       = "black-app-points"
	KeyVisits       = "black-app-visits"
	KeyRedeemed     = "black-app-redeemed"
	KeyBooking      = "black-app-booking"
	KeyDraft        = "black-app-draft"
)

// UpdateFunc receives the current value of a key and returns the value to
// store. Returning a nil slice deletes the key; returning an error aborts the
// update without writing anything.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// UpdateManyFunc receives the current values of the keys in the order they
// were given, nil for absent ones, and returns the values to store in the
// same order. A nil value deletes its key.
type UpdateManyFunc func(current [][]byte) ([][]byte, error)

var ErrBadKeys = errors.New("storage: keys must be non-empty and distinct")

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Update runs a read-modify-write on key while holding the backend's
	// lock for that key. fn must not call back into the storage: keys that
	// change together go through UpdateMany.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	// UpdateMany is Update over several keys at once: all of them are
	// locked, read and written in a single transaction.
	UpdateMany(ctx context.Context, keys []string, fn UpdateManyFunc) error
	Close() error
}

func checkKeys(keys []string) error {
	if len(keys) == 0 {
		return ErrBadKeys
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return ErrBadKeys
		}
		seen[k] = struct{}{}
	}
	return nil
}

func checkResult(keys []string, next [][]byte) error {
	if len(next) != len(keys) {
		return fmt.Errorf("storage: update returned %d values for %d keys", len(next), len(keys))
	}
	return nil
}

// single adapts an UpdateFunc to the one-key form of UpdateMany.
func single(fn UpdateFunc) UpdateManyFunc {
	return func(current [][]byte) ([][]byte, error) {
		next, err := fn(current[0], current[0] != nil)
		if err != nil {
			return nil, err
		}
		return [][]byte{next}, nil
	}
}

// GetJSON decodes the value stored under key, returning def when the key is
// absent.
func GetJSON[T any](ctx context.Context, s Storage, key string, def T) (T, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, fmt.Errorf("storage: decode %s: %w", key, err)
	}
	return out, nil
}

func SetJSON(ctx context.Context, s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON decodes the value under key (or def), lets fn mutate it and
// writes the result back. The final value is returned.
func UpdateJSON[T any](ctx context.Context, s Storage, key string, def T, fn func(*T) error) (T, error) {
	var result T
	err := s.Update(ctx, key, func(current []byte, found bool) ([]byte, error) {
		v := def
		if found {
			var decoded T
			if err := json.Unmarshal(current, &decoded); err != nil {
				return nil, fmt.Errorf("storage: decode %s: %w", key, err)
			}
			v = decoded
		}

		if err := fn(&v); err != nil {
			return nil, err
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("storage: encode %s: %w", key, err)
		}
		result = v
		return raw, nil
	})
	return result, err
}

// UpdatePairJSON is UpdateJSON over two keys that change together, such as a
// balance and the log of what it paid for.
func UpdatePairJSON[A, B any](
	ctx context.Context,
	s Storage,
	keyA string, defA A,
	keyB string, defB B,
	fn func(*A, *B) error,
) (A, B, error) {

	var resA A
	var resB B

	err := s.UpdateMany(ctx, []string{keyA, keyB}, func(current [][]byte) ([][]byte, error) {
		a, err := decodeOr(current[0], keyA, defA)
		if err != nil {
			return nil, err
		}
		b, err := decodeOr(current[1], keyB, defB)
		if err != nil {
			return nil, err
		}

		if err := fn(&a, &b); err != nil {
			return nil, err
		}

		rawA, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("storage: encode %s: %w", keyA, err)
		}
		rawB, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("storage: encode %s: %w", keyB, err)
		}

		resA, resB = a, b
		return [][]byte{rawA, rawB}, nil
	})
	return resA, resB, err
}

func decodeOr[T any](raw []byte, key string, def T) (T, error) {
	if raw == nil {
		return def, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return def, fmt.Errorf("storage: decode %s: %w", key, err)
	}
	return out, nil
}
